package dupe

import (
	"context"
	"reflect"
	"time"
)

// Duplicator deep-copies values of type T by encoding them with a codec and
// decoding the result into a fresh instance.
//
// Duplicators are immutable after construction and safe for concurrent use.
// A clone takes no snapshot of the source: mutating the source from another
// goroutine while Clone runs yields an unspecified mix of old and new values.
type Duplicator[T any] struct {
	cfg       Config
	inspector Inspector
	plan      *reconstructPlan
}

// NewDuplicator creates a Duplicator for type T.
//
// The Config is validated here. A nil Codec selects JSON and an empty
// OnReferenceCycle selects CycleFail.
func NewDuplicator[T any](cfg Config) (*Duplicator[T], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	inspector := inspectorFor(cfg.Codec)
	d := &Duplicator[T]{
		cfg:       cfg,
		inspector: inspector,
		plan:      getOrBuildPlan(reflect.TypeFor[T](), inspector.TagKey()),
	}

	emitDuplicatorCreated(context.Background(), cfg.Codec.ContentType(), d.plan.typeName, cfg.OnReferenceCycle)
	return d, nil
}

// Config returns the effective configuration.
func (d *Duplicator[T]) Config() Config {
	return d.cfg
}

// Clone returns a deep copy of source.
//
// A nil source yields the zero T without touching the codec. A source that
// implements Cloner[T] is copied by its own Clone method. Everything else is
// walked for cycles and unsupported shapes, marshaled, and unmarshaled into a
// fresh T prepared by Defaulter and Config.ReplaceCollections.
func (d *Duplicator[T]) Clone(ctx context.Context, source T) (T, error) {
	var zero T
	if isNil(source) {
		return zero, nil
	}
	if c, ok := any(source).(Cloner[T]); ok {
		return c.Clone(), nil
	}

	contentType := d.cfg.Codec.ContentType()
	start := time.Now()
	emitCloneStart(ctx, contentType, d.plan.typeName)

	var (
		retErr  error
		size    int
		omitted []string
	)
	defer func() {
		emitCloneComplete(ctx, contentType, d.plan.typeName,
			size, time.Since(start), len(omitted), retErr)
	}()

	data, omitted, err := d.encode(source)
	for _, path := range omitted {
		emitCycleOmitted(ctx, d.plan.typeName, path)
	}
	if err != nil {
		retErr = err
		return zero, retErr
	}
	size = len(data)

	out, err := d.decode(data)
	if err != nil {
		retErr = err
		return zero, retErr
	}
	return out, nil
}

// encode walks source and marshals it, returning the paths of any omitted
// back-references.
func (d *Duplicator[T]) encode(source T) ([]byte, []string, error) {
	w := newWalker(d.cfg.OnReferenceCycle, d.inspector)

	v, err := w.prepare(reflect.ValueOf(&source).Elem())
	if err != nil {
		return nil, w.omitted, err
	}

	data, err := d.cfg.Codec.Marshal(encodable(v))
	if err != nil {
		return nil, w.omitted, newCodecError(ErrMarshal, err)
	}
	return data, w.omitted, nil
}

// decode unmarshals data into a freshly constructed T.
func (d *Duplicator[T]) decode(data []byte) (T, error) {
	out := new(T)
	d.plan.construct(reflect.ValueOf(out).Elem(), d.cfg.ReplaceCollections)

	if err := d.cfg.Codec.Unmarshal(data, out); err != nil {
		var zero T
		return zero, newCodecError(ErrUnmarshal, err)
	}
	return *out, nil
}

// encodable hands addressable structs and arrays to the codec by pointer so
// pointer-receiver marshalers are honoured.
func encodable(v reflect.Value) any {
	if (v.Kind() == reflect.Struct || v.Kind() == reflect.Array) && v.CanAddr() {
		return v.Addr().Interface()
	}
	return v.Interface()
}

// isNil reports whether v is the absent value for its type.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
