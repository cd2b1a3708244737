package dupe

import "reflect"

// Codec provides content-type aware marshaling.
// A Codec is the serialization engine behind every clone.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Inspector is implemented by codecs that describe how they see Go types.
// The graph walker uses it to honour skip tags, to stop at types that encode
// themselves, and to reject shapes the codec cannot represent before any
// bytes are produced. Codecs without an Inspector are walked with the json
// tag key and the base set of unsupported kinds.
type Inspector interface {
	// TagKey returns the struct tag consulted for field names and "-" skips.
	TagKey() string

	// SelfEncoding reports whether values of t are encoded by their own
	// marshaler and must not be walked.
	SelfEncoding(t reflect.Type) bool

	// Unsupported reports whether the codec cannot represent values of t.
	Unsupported(t reflect.Type) bool
}

// baseInspector applies to codecs that do not implement Inspector.
type baseInspector struct{}

func (baseInspector) TagKey() string { return "json" }

func (baseInspector) SelfEncoding(reflect.Type) bool { return false }

func (baseInspector) Unsupported(reflect.Type) bool { return false }

// inspectorFor returns the codec's Inspector or the base one.
func inspectorFor(c Codec) Inspector {
	if in, ok := c.(Inspector); ok {
		return in
	}
	return baseInspector{}
}
