package testing

import (
	"testing"
)

func TestNewOrder(t *testing.T) {
	o := NewOrder()
	if o.Owner == nil || o.Owner.Address == nil {
		t.Fatal("NewOrder() should populate nested pointers")
	}
	if len(o.Items) == 0 || len(o.Tags) == 0 || len(o.Meta) == 0 {
		t.Error("NewOrder() should populate every collection")
	}
	if NewOrder() == o {
		t.Error("NewOrder() should return a fresh value each call")
	}
}

func TestNewFamily(t *testing.T) {
	p := NewFamily()
	if p.Child == nil || p.Child.Parent != p {
		t.Error("NewFamily() child should point back at its parent")
	}
}

func TestPlaylist_Defaults(t *testing.T) {
	var p Playlist
	p.Defaults()

	if len(p.Tracks) != 2 || p.Labels["source"] != "default" || len(p.Pinned) != 1 {
		t.Errorf("Defaults() = %+v, want populated collections", p)
	}
}

func TestSnapshot_Clone(t *testing.T) {
	original := NewSnapshot(1, 2, 3)
	cloned := original.Clone()

	if len(cloned.Values) != 3 || cloned.Values[2] != 3 {
		t.Errorf("Clone() = %v, want [1 2 3]", cloned.Values)
	}
	cloned.Values[0] = 9
	if original.Values[0] != 1 {
		t.Error("Clone() should copy Values")
	}
	if original.Calls() != 1 || cloned.Calls() != 1 {
		t.Errorf("Calls() = %d, want 1 shared across copies", original.Calls())
	}
}

func TestCountingCodec(t *testing.T) {
	c := NewCountingCodec(nil)
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want JSON by default", c.ContentType())
	}

	data, err := c.Marshal(SimpleUser{ID: "1"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var u SimpleUser
	if err := c.Unmarshal(data, &u); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if c.Marshals() != 1 || c.Unmarshals() != 1 {
		t.Errorf("counts = %d/%d, want 1/1", c.Marshals(), c.Unmarshals())
	}
}
