// Package testing provides test utilities for dupe.
package testing

import (
	"sync/atomic"

	"github.com/zoobzio/dupe"
)

// SimpleUser is a flat test type with no reference fields.
type SimpleUser struct {
	ID   string `json:"id" yaml:"id" msgpack:"id" xml:"id" bson:"id"`
	Name string `json:"name" yaml:"name" msgpack:"name" xml:"name" bson:"name"`
}

// Address is nested two levels below Order.
type Address struct {
	Street string `json:"street" yaml:"street" msgpack:"street" xml:"street" bson:"street"`
	City   string `json:"city" yaml:"city" msgpack:"city" xml:"city" bson:"city"`
}

// Customer is referenced by pointer from Order.
type Customer struct {
	Name    string   `json:"name" yaml:"name" msgpack:"name" xml:"name" bson:"name"`
	Address *Address `json:"address" yaml:"address" msgpack:"address" xml:"address" bson:"address"`
}

// Item is an element of Order.Items.
type Item struct {
	SKU string `json:"sku" yaml:"sku" msgpack:"sku" xml:"sku" bson:"sku"`
	Qty int    `json:"qty" yaml:"qty" msgpack:"qty" xml:"qty" bson:"qty"`
}

// Order exercises every reference kind a clone must detach: slices, maps,
// pointers and nested structs.
type Order struct {
	ID    string            `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Items []Item            `json:"items" yaml:"items" msgpack:"items" bson:"items"`
	Tags  []string          `json:"tags" yaml:"tags" msgpack:"tags" bson:"tags"`
	Meta  map[string]string `json:"meta" yaml:"meta" msgpack:"meta" bson:"meta"`
	Owner *Customer         `json:"owner" yaml:"owner" msgpack:"owner" bson:"owner"`
}

// NewOrder returns a fully populated Order.
func NewOrder() *Order {
	return &Order{
		ID:    "ord-1",
		Items: []Item{{SKU: "A-1", Qty: 2}, {SKU: "B-7", Qty: 1}},
		Tags:  []string{"priority", "gift"},
		Meta:  map[string]string{"channel": "web"},
		Owner: &Customer{
			Name:    "Alice",
			Address: &Address{Street: "1 Main St", City: "Springfield"},
		},
	}
}

// Playlist pre-populates its collections in Defaults, the way a constructor
// would. Pinned keeps its defaults through ReplaceCollections.
type Playlist struct {
	Name   string            `json:"name,omitempty"`
	Tracks []string          `json:"tracks,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
	Pinned []string          `json:"pinned,omitempty" clone:"merge"`
}

// Defaults implements dupe.Defaulter.
func (p *Playlist) Defaults() {
	p.Tracks = []string{"intro", "outro"}
	p.Labels = map[string]string{"source": "default"}
	p.Pinned = []string{"pinned"}
}

// Parent and Child reference each other.
type Parent struct {
	Name  string `json:"name"`
	Child *Child `json:"child"`
}

// Child points back at its Parent.
type Child struct {
	Name   string  `json:"name"`
	Parent *Parent `json:"parent"`
}

// NewFamily returns a Parent whose Child refers back to it.
func NewFamily() *Parent {
	p := &Parent{Name: "parent"}
	p.Child = &Child{Name: "child", Parent: p}
	return p
}

// Worker holds a channel, which no codec can represent.
type Worker struct {
	Name string        `json:"name"`
	Done chan struct{} `json:"done"`
}

// Snapshot implements dupe.Cloner and counts its calls.
type Snapshot struct {
	Values []int `json:"values"`
	calls  *atomic.Int64
}

// NewSnapshot returns a Snapshot whose Clone calls are counted.
func NewSnapshot(values ...int) Snapshot {
	return Snapshot{Values: values, calls: &atomic.Int64{}}
}

// Clone implements dupe.Cloner[Snapshot].
func (s Snapshot) Clone() Snapshot {
	s.calls.Add(1)
	values := make([]int, len(s.Values))
	copy(values, s.Values)
	return Snapshot{Values: values, calls: s.calls}
}

// Calls returns how often Clone ran.
func (s Snapshot) Calls() int64 {
	return s.calls.Load()
}

// CountingCodec wraps a codec and counts its calls.
type CountingCodec struct {
	dupe.Codec
	marshals   atomic.Int64
	unmarshals atomic.Int64
}

// NewCountingCodec wraps c, or JSON when c is nil.
func NewCountingCodec(c dupe.Codec) *CountingCodec {
	if c == nil {
		c = dupe.JSON()
	}
	return &CountingCodec{Codec: c}
}

// Marshal counts and delegates.
func (c *CountingCodec) Marshal(v any) ([]byte, error) {
	c.marshals.Add(1)
	return c.Codec.Marshal(v)
}

// Unmarshal counts and delegates.
func (c *CountingCodec) Unmarshal(data []byte, v any) error {
	c.unmarshals.Add(1)
	return c.Codec.Unmarshal(data, v)
}

// Marshals returns the number of Marshal calls.
func (c *CountingCodec) Marshals() int64 {
	return c.marshals.Load()
}

// Unmarshals returns the number of Unmarshal calls.
func (c *CountingCodec) Unmarshals() int64 {
	return c.unmarshals.Load()
}
