// Package xml provides an XML codec implementation.
package xml

import (
	"encoding"
	"encoding/xml"
	"reflect"

	"github.com/zoobzio/dupe"
)

var (
	marshalerType     = reflect.TypeFor[xml.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// xmlCodec implements dupe.Codec and dupe.Inspector for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() dupe.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// TagKey returns the struct tag encoding/xml reads.
func (c *xmlCodec) TagKey() string {
	return "xml"
}

// SelfEncoding reports types encoding/xml hands to their own marshaler.
func (c *xmlCodec) SelfEncoding(t reflect.Type) bool {
	return t.Implements(marshalerType) || t.Implements(textMarshalerType)
}

// Unsupported rejects maps, which encoding/xml cannot represent.
func (c *xmlCodec) Unsupported(t reflect.Type) bool {
	return t.Kind() == reflect.Map
}
