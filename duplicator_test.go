package dupe_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/zoobzio/dupe"
	dupetest "github.com/zoobzio/dupe/testing"
)

func TestNewDuplicator(t *testing.T) {
	d, err := dupe.NewDuplicator[dupetest.Order](dupe.DefaultConfig())
	if err != nil {
		t.Fatalf("NewDuplicator() error: %v", err)
	}
	if d.Config().OnReferenceCycle != dupe.CycleIgnore {
		t.Errorf("Config().OnReferenceCycle = %q, want %q", d.Config().OnReferenceCycle, dupe.CycleIgnore)
	}
}

func TestNewDuplicator_NormalizesConfig(t *testing.T) {
	d, err := dupe.NewDuplicator[dupetest.Order](dupe.Config{})
	if err != nil {
		t.Fatalf("NewDuplicator() error: %v", err)
	}

	cfg := d.Config()
	if cfg.Codec == nil || cfg.Codec.ContentType() != "application/json" {
		t.Error("Config().Codec should default to JSON")
	}
	if cfg.OnReferenceCycle != dupe.CycleFail {
		t.Errorf("Config().OnReferenceCycle = %q, want %q", cfg.OnReferenceCycle, dupe.CycleFail)
	}
}

func TestDuplicator_Reuse(t *testing.T) {
	d, err := dupe.NewDuplicator[*dupetest.Order](dupe.DefaultConfig())
	if err != nil {
		t.Fatalf("NewDuplicator() error: %v", err)
	}

	ctx := context.Background()
	source := dupetest.NewOrder()
	for i := 0; i < 3; i++ {
		clone, err := d.Clone(ctx, source)
		if err != nil {
			t.Fatalf("Clone() #%d error: %v", i, err)
		}
		if clone == source || !reflect.DeepEqual(clone, source) {
			t.Errorf("Clone() #%d = %+v, want independent copy of %+v", i, clone, source)
		}
	}
}

func TestDuplicator_NilSource(t *testing.T) {
	counting := dupetest.NewCountingCodec(nil)
	d, err := dupe.NewDuplicator[*dupetest.Order](dupe.Config{Codec: counting})
	if err != nil {
		t.Fatalf("NewDuplicator() error: %v", err)
	}

	clone, err := d.Clone(context.Background(), nil)
	if err != nil || clone != nil {
		t.Errorf("Clone(nil) = %v, %v, want nil, nil", clone, err)
	}
	if counting.Marshals() != 0 {
		t.Errorf("codec called %d times, want 0", counting.Marshals())
	}
}

type marshalerValue struct {
	Secret string
}

func (m *marshalerValue) MarshalJSON() ([]byte, error) {
	return []byte(`{"Secret":"from-pointer-receiver"}`), nil
}

func TestDuplicator_PointerReceiverMarshaler(t *testing.T) {
	d, err := dupe.NewDuplicator[marshalerValue](dupe.DefaultConfig())
	if err != nil {
		t.Fatalf("NewDuplicator() error: %v", err)
	}

	clone, err := d.Clone(context.Background(), marshalerValue{Secret: "raw"})
	if err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	if clone.Secret != "from-pointer-receiver" {
		t.Errorf("Secret = %q, pointer-receiver MarshalJSON should be used", clone.Secret)
	}
}
