package dupe

// Config controls a clone.
//
// The same Config drives both the serialize and the deserialize phase, so the
// two can never disagree about data shape.
type Config struct {
	// ReplaceCollections resets every reference-typed field (maps, slices,
	// pointers, interfaces) of a freshly constructed instance before decoding,
	// so that containers pre-populated by Defaults are replaced by the decoded
	// ones instead of being merged with them. Fields tagged clone:"merge" keep
	// their defaults regardless.
	ReplaceCollections bool

	// OnReferenceCycle selects the cycle policy. Empty means CycleFail.
	OnReferenceCycle CyclePolicy

	// Codec is the serialization engine. Nil means JSON.
	Codec Codec
}

// DefaultConfig returns the configuration used by Clone: fresh containers on
// reconstruction, cycles omitted, JSON encoding.
func DefaultConfig() Config {
	return Config{
		ReplaceCollections: true,
		OnReferenceCycle:   CycleIgnore,
		Codec:              defaultCodec,
	}
}

// defaultCodec is shared so the registry resolves DefaultConfig to one entry.
var defaultCodec = JSON()

// normalize fills unset fields and validates the result.
func (c Config) normalize() (Config, error) {
	if c.Codec == nil {
		c.Codec = defaultCodec
	}
	if c.OnReferenceCycle == "" {
		c.OnReferenceCycle = CycleFail
	}
	if !IsValidCyclePolicy(c.OnReferenceCycle) {
		return c, newConfigError(ErrInvalidConfig, "OnReferenceCycle", string(c.OnReferenceCycle))
	}
	return c, nil
}
