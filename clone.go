package dupe

import "context"

// Clone returns a deep copy of source using DefaultConfig: JSON encoding,
// fresh containers on reconstruction, and reference cycles omitted.
//
// A nil source returns the zero T and no error.
func Clone[T any](source T) (T, error) {
	return CloneWith(source, DefaultConfig())
}

// CloneWith returns a deep copy of source using cfg for both the serialize
// and the deserialize phase.
//
// A nil source returns the zero T and no error, before cfg is looked at.
func CloneWith[T any](source T, cfg Config) (T, error) {
	if isNil(source) {
		var zero T
		return zero, nil
	}

	d, err := Use[T](cfg)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.Clone(context.Background(), source)
}
