// Package bson provides a BSON codec implementation.
package bson

import (
	"reflect"

	"github.com/zoobzio/dupe"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	marshalerType      = reflect.TypeFor[bson.Marshaler]()
	valueMarshalerType = reflect.TypeFor[bson.ValueMarshaler]()
)

// bsonCodec implements dupe.Codec and dupe.Inspector for BSON.
// BSON documents are the top-level unit, so cloned values must be structs or
// string-keyed maps.
type bsonCodec struct{}

// New returns a BSON codec.
func New() dupe.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// TagKey returns the struct tag the bson codec reads.
func (c *bsonCodec) TagKey() string {
	return "bson"
}

// SelfEncoding reports types the bson registry hands to their own marshaler.
func (c *bsonCodec) SelfEncoding(t reflect.Type) bool {
	return t.Implements(marshalerType) || t.Implements(valueMarshalerType)
}

// Unsupported adds nothing to the base set.
func (c *bsonCodec) Unsupported(reflect.Type) bool {
	return false
}
