// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"
	"encoding"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/dupe"
)

var (
	customEncoderType   = reflect.TypeFor[msgpack.CustomEncoder]()
	marshalerType       = reflect.TypeFor[msgpack.Marshaler]()
	binaryMarshalerType = reflect.TypeFor[encoding.BinaryMarshaler]()
)

// msgpackCodec implements dupe.Codec and dupe.Inspector for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() dupe.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack with map keys sorted, so equal values
// produce equal bytes.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// TagKey returns the struct tag msgpack reads.
func (c *msgpackCodec) TagKey() string {
	return "msgpack"
}

// SelfEncoding reports types msgpack hands to their own encoder.
func (c *msgpackCodec) SelfEncoding(t reflect.Type) bool {
	return t.Implements(customEncoderType) ||
		t.Implements(marshalerType) ||
		t.Implements(binaryMarshalerType)
}

// Unsupported adds nothing to the base set.
func (c *msgpackCodec) Unsupported(reflect.Type) bool {
	return false
}
