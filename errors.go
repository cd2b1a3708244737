package dupe

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedShape indicates a value the codec cannot represent.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrCyclicReference indicates a reference cycle under CycleFail.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrInvalidConfig indicates a Config field has an invalid value.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrMarshal indicates the codec failed to marshal the source.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal into the fresh instance.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// ConfigError represents an invalid Config.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidConfig)
	Field string // Config field that is invalid
	Value string // Offending value
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %q", e.Err.Error(), e.Field, e.Value)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnsupportedShapeError reports a value, reachable from the source, that the
// codec cannot encode or decode.
type UnsupportedShapeError struct {
	Path  string       // Field path from the root, empty for the root itself
	Type  reflect.Type // Offending type, nil when reported by the codec
	Cause error        // Codec error, if the codec detected it
}

func (e *UnsupportedShapeError) Error() string {
	switch {
	case e.Type != nil && e.Path != "":
		return fmt.Sprintf("%s: %s at %s", ErrUnsupportedShape.Error(), e.Type, e.Path)
	case e.Type != nil:
		return fmt.Sprintf("%s: %s", ErrUnsupportedShape.Error(), e.Type)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", ErrUnsupportedShape.Error(), e.Cause)
	}
	return ErrUnsupportedShape.Error()
}

func (e *UnsupportedShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

// CyclicReferenceError reports a back-reference found under CycleFail.
type CyclicReferenceError struct {
	Path string       // Field path of the back-reference
	Type reflect.Type // Type of the value referred back to
}

func (e *CyclicReferenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s at %s", ErrCyclicReference.Error(), e.Type, e.Path)
	}
	return fmt.Sprintf("%s: %s", ErrCyclicReference.Error(), e.Type)
}

func (e *CyclicReferenceError) Unwrap() error {
	return ErrCyclicReference
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for an invalid Config field.
func newConfigError(sentinel error, field, value string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Value: value,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
// Codec errors that describe an unrepresentable type or value become an
// UnsupportedShapeError instead.
func newCodecError(sentinel error, cause error) error {
	var (
		jsonType  *json.UnsupportedTypeError
		jsonValue *json.UnsupportedValueError
		xmlType   *xml.UnsupportedTypeError
	)
	if errors.As(cause, &jsonType) || errors.As(cause, &jsonValue) || errors.As(cause, &xmlType) {
		return &UnsupportedShapeError{Cause: cause}
	}
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
