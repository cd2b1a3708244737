package dupe

// Override interfaces let types take part in cloning without changing the
// serialize/deserialize pipeline for everyone else.

// Cloner allows types to provide deep copy logic.
// When the source implements Cloner[T], its Clone result is returned as is
// and no codec is involved.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices, or maps,
// ensure these are also copied to achieve true isolation.
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}

// Defaulter is the constructor hook for fresh instances.
// Before decoding, the Duplicator allocates a new T and calls Defaults on it,
// the way a zero-argument constructor would populate fields. Implement it on
// the pointer receiver.
//
// With Config.ReplaceCollections set, reference-typed fields populated here
// are reset before decoding unless tagged clone:"merge".
type Defaulter interface {
	Defaults()
}
