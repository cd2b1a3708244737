// Package dupe provides deep copies of arbitrary Go values by round-tripping
// them through a serialization codec.
//
// A clone encodes the source into an intermediate representation and decodes
// that representation into a fresh instance of the same static type, so the
// result shares no pointer, slice, map or interface value with the source at
// any depth.
//
// # Basic Usage
//
//	type Order struct {
//	    ID    string            `json:"id"`
//	    Items []Item            `json:"items"`
//	    Meta  map[string]string `json:"meta"`
//	    Owner *Customer         `json:"owner"`
//	}
//
//	copy, err := dupe.Clone(order)
//
// Clone uses DefaultConfig. CloneWith takes a Config:
//
//	copy, err := dupe.CloneWith(order, dupe.Config{
//	    ReplaceCollections: true,
//	    OnReferenceCycle:   dupe.CycleFail,
//	    Codec:              yaml.New(),
//	})
//
// For hot paths, build a Duplicator once and reuse it:
//
//	d, _ := dupe.NewDuplicator[Order](dupe.DefaultConfig())
//	copy, err := d.Clone(ctx, order)
//
// # What Gets Copied
//
// Only what the codec sees survives: exported fields that are not skipped
// with a "-" tag, including fields promoted from embedded structs,
// recursively. Unexported fields come back as zero values.
// Interface-typed fields are decoded the way the codec decodes into an
// interface (JSON yields map[string]any, []any, float64 and so on).
//
// A nil source (nil pointer, map, slice, interface, chan or func) returns
// the zero value without encoding anything.
//
// # Reference Cycles
//
// The source graph is walked before encoding with a set of ancestors keyed
// by reference identity. A value that refers back to one of its ancestors is
// a cycle:
//
//   - CycleIgnore: the back-reference is omitted. Struct fields become zero,
//     map entries and slice elements are dropped, array elements become zero.
//   - CycleFail: Clone returns a *CyclicReferenceError.
//
// Shared references that do not loop are not cycles; each occurrence is
// copied independently.
//
// # Constructors and Collection Replacement
//
// Types can implement Defaulter to populate fresh instances the way a
// constructor would. With Config.ReplaceCollections set, every exported map,
// slice, pointer and interface field the codec decodes is reset before
// decoding, so the copy holds exactly the source's contents instead of the
// defaults merged with them. Tag a field clone:"merge" to keep its defaults.
//
// # Overrides
//
// A source implementing Cloner[T] is copied by its own Clone method and the
// codec is bypassed.
//
// # Codec Providers
//
// JSON is built in and the default. Other codecs live in subpackages:
//
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - xml - XML encoding (application/xml)
//   - bson - BSON encoding (application/bson)
//
// Codecs may implement Inspector to tell the walker which struct tag they
// read, which types encode themselves, and which shapes they reject.
//
// # Errors
//
//   - *UnsupportedShapeError (ErrUnsupportedShape): a reachable value the codec
//     cannot represent, such as a chan, func or complex number. A cycle the
//     codec hits inside a type with its own marshaler is also reported here,
//     since the walker does not look inside such types.
//   - *CyclicReferenceError (ErrCyclicReference): a cycle under CycleFail.
//   - *CodecError (ErrMarshal, ErrUnmarshal): any other codec failure.
//   - *ConfigError (ErrInvalidConfig): an unknown cycle policy or digest.
//
// # Fingerprints
//
// Fingerprint digests a value's encoded form and Equal compares two values
// by fingerprint, which checks structural equality as the codec sees it.
package dupe
