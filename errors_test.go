package dupe

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrInvalidConfig, "OnReferenceCycle", "loop")

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should unwrap to ErrInvalidConfig")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("ConfigError should not match ErrMarshal")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with field",
			err:  newConfigError(ErrInvalidConfig, "OnReferenceCycle", "loop"),
			want: `invalid config: OnReferenceCycle "loop"`,
		},
		{
			name: "sentinel only",
			err:  &ConfigError{Err: ErrInvalidConfig},
			want: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnsupportedShapeError_Message(t *testing.T) {
	chanType := reflect.TypeFor[chan int]()

	tests := []struct {
		name string
		err  *UnsupportedShapeError
		want string
	}{
		{
			name: "type and path",
			err:  &UnsupportedShapeError{Type: chanType, Path: "Worker.Done"},
			want: "unsupported shape: chan int at Worker.Done",
		},
		{
			name: "type only",
			err:  &UnsupportedShapeError{Type: chanType},
			want: "unsupported shape: chan int",
		},
		{
			name: "codec cause",
			err:  &UnsupportedShapeError{Cause: errors.New("json: unsupported type: func()")},
			want: "unsupported shape: json: unsupported type: func()",
		},
		{
			name: "empty",
			err:  &UnsupportedShapeError{},
			want: "unsupported shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrUnsupportedShape) {
				t.Error("UnsupportedShapeError should unwrap to ErrUnsupportedShape")
			}
		})
	}
}

func TestCyclicReferenceError_Message(t *testing.T) {
	typ := reflect.TypeFor[*walkTree]()

	err := &CyclicReferenceError{Type: typ, Path: "Left.Right"}
	if got, want := err.Error(), "cyclic reference: *dupe.walkTree at Left.Right"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	root := &CyclicReferenceError{Type: typ}
	if got, want := root.Error(), "cyclic reference: *dupe.walkTree"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrCyclicReference) {
		t.Error("CyclicReferenceError should unwrap to ErrCyclicReference")
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := newCodecError(ErrUnmarshal, cause)

	want := "unmarshal failed: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &CodecError{Err: ErrMarshal}
	if got := bare.Error(); got != "marshal failed" {
		t.Errorf("Error() = %q, want %q", got, "marshal failed")
	}
}

func TestNewCodecError_MapsUnsupported(t *testing.T) {
	_, cause := json.Marshal(func() {})
	if cause == nil {
		t.Fatal("json.Marshal(func) should fail")
	}

	err := newCodecError(ErrMarshal, cause)
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("newCodecError() = %v, want ErrUnsupportedShape", err)
	}

	var shapeErr *UnsupportedShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Cause != cause {
		t.Error("UnsupportedShapeError should carry the codec error")
	}
}

// loopMarshaler builds a cyclic value inside its own marshaler.
type loopMarshaler struct{}

func (loopMarshaler) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	m["self"] = m
	return json.Marshal(m)
}

func TestClone_CycleInsideMarshalerIsUnsupportedShape(t *testing.T) {
	_, err := Clone(loopMarshaler{})

	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("Clone() error = %v, want ErrUnsupportedShape", err)
	}
	if errors.Is(err, ErrCyclicReference) {
		t.Error("cycles the walker cannot see are not CyclicReferenceError")
	}
}
