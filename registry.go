package dupe

import (
	"reflect"
	"sync"
)

// registryKey combines type, content type, codec type and options for cache
// lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
	codecType   reflect.Type
	replace     bool
	policy      CyclePolicy
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached duplicator or builds a new one.
// The duplicator is cached by type, content type, codec type and options.
// Only stateless codecs are cached, since any two of their instances behave
// the same; a codec carrying state gets a fresh Duplicator on every call.
func Use[T any](cfg Config) (*Duplicator[T], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if !stateless(cfg.Codec) {
		return NewDuplicator[T](cfg)
	}

	key := registryKey{
		typ:         reflect.TypeFor[T](),
		contentType: cfg.Codec.ContentType(),
		codecType:   reflect.TypeOf(cfg.Codec),
		replace:     cfg.ReplaceCollections,
		policy:      cfg.OnReferenceCycle,
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Duplicator[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Duplicator[T]), nil
	}

	d, err := NewDuplicator[T](cfg)
	if err != nil {
		return nil, err
	}

	registry[key] = d
	return d, nil
}

// stateless reports whether c is a zero-size value or a pointer to one.
func stateless(c Codec) bool {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Size() == 0
}

// Reset clears the duplicator registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
