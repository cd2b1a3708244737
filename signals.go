package dupe

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for clone events.
var (
	SignalDuplicatorCreated = capitan.NewSignal("dupe.duplicator.created", "Duplicator instantiated")
	SignalCloneStart        = capitan.NewSignal("dupe.clone.start", "Clone operation beginning")
	SignalCloneComplete     = capitan.NewSignal("dupe.clone.complete", "Clone operation finished")
	SignalCycleOmitted      = capitan.NewSignal("dupe.cycle.omitted", "Back-reference dropped from the clone")
)

// Keys for typed event data.
var (
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyCyclePolicy  = capitan.NewStringKey("cycle_policy")
	KeyPath         = capitan.NewStringKey("path")
	KeySize         = capitan.NewIntKey("size")
	KeyOmittedCount = capitan.NewIntKey("omitted_count")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
)

// emitDuplicatorCreated emits an event when a duplicator is created.
func emitDuplicatorCreated(ctx context.Context, contentType, typeName string, policy CyclePolicy) {
	capitan.Emit(ctx, SignalDuplicatorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyCyclePolicy.Field(string(policy)),
	)
}

// emitCloneStart emits an event when a clone begins.
func emitCloneStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalCloneStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitCloneComplete emits an event when a clone finishes.
func emitCloneComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, omitted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyOmittedCount.Field(omitted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}

// emitCycleOmitted emits an event for each back-reference dropped under CycleIgnore.
func emitCycleOmitted(ctx context.Context, typeName, path string) {
	capitan.Emit(ctx, SignalCycleOmitted,
		KeyTypeName.Field(typeName),
		KeyPath.Field(path),
	)
}
