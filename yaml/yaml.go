// Package yaml provides a YAML codec implementation.
package yaml

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/zoobzio/dupe"
	"gopkg.in/yaml.v3"
)

var (
	marshalerType     = reflect.TypeFor[yaml.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// yamlCodec implements dupe.Codec and dupe.Inspector for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() dupe.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
// yaml.v3 panics on some unsupported kinds; the panic is returned as an error.
func (c *yamlCodec) Marshal(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	return yaml.Unmarshal(data, v)
}

// TagKey returns the struct tag yaml.v3 reads.
func (c *yamlCodec) TagKey() string {
	return "yaml"
}

// SelfEncoding reports types yaml.v3 hands to their own marshaler.
func (c *yamlCodec) SelfEncoding(t reflect.Type) bool {
	return t.Implements(marshalerType) || t.Implements(textMarshalerType)
}

// Unsupported adds nothing to the base set; yaml.v3 accepts any map key.
func (c *yamlCodec) Unsupported(reflect.Type) bool {
	return false
}
