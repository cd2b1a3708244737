package dupe

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitDuplicatorCreated(_ *testing.T) {
	// Should not panic
	emitDuplicatorCreated(context.Background(), "application/json", "TestType", CycleIgnore)
}

func TestEmitCloneStart(_ *testing.T) {
	emitCloneStart(context.Background(), "application/json", "TestType")
}

func TestEmitCloneComplete_Success(_ *testing.T) {
	emitCloneComplete(context.Background(), "application/json", "TestType", 128, 100*time.Millisecond, 0, nil)
}

func TestEmitCloneComplete_Error(_ *testing.T) {
	emitCloneComplete(context.Background(), "application/json", "TestType", 0, 100*time.Millisecond, 1, errors.New("test error"))
}

func TestEmitCycleOmitted(_ *testing.T) {
	emitCycleOmitted(context.Background(), "TestType", "Child.Parent")
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalDuplicatorCreated", SignalDuplicatorCreated},
		{"SignalCloneStart", SignalCloneStart},
		{"SignalCloneComplete", SignalCloneComplete},
		{"SignalCycleOmitted", SignalCycleOmitted},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyContentType", KeyContentType},
		{"KeyTypeName", KeyTypeName},
		{"KeyCyclePolicy", KeyCyclePolicy},
		{"KeyPath", KeyPath},
		{"KeySize", KeySize},
		{"KeyOmittedCount", KeyOmittedCount},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
