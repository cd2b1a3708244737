package dupe

import (
	"crypto/sha256"
	"encoding/hex"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex digest of v's encoded form under cfg.
//
// Two values with the same fingerprint are structurally equal as far as the
// codec can see: unexported and skipped fields do not contribute, and
// omitted back-references are absent. The encoding must be deterministic for
// fingerprints to be comparable; the bundled codecs sort map keys.
func Fingerprint[T any](v T, cfg Config, algo DigestAlgo) (string, error) {
	if !IsValidDigestAlgo(algo) {
		return "", newConfigError(ErrInvalidConfig, "DigestAlgo", string(algo))
	}
	cfg, err := cfg.normalize()
	if err != nil {
		return "", err
	}

	var data []byte
	if isNil(v) {
		data, err = cfg.Codec.Marshal(nil)
		if err != nil {
			return "", newCodecError(ErrMarshal, err)
		}
	} else {
		w := newWalker(cfg.OnReferenceCycle, inspectorFor(cfg.Codec))
		prepared, err := w.prepare(reflect.ValueOf(&v).Elem())
		if err != nil {
			return "", err
		}
		data, err = cfg.Codec.Marshal(encodable(prepared))
		if err != nil {
			return "", newCodecError(ErrMarshal, err)
		}
	}

	return digest(algo, data), nil
}

// Equal reports whether a and b encode identically under DefaultConfig.
func Equal[T any](a, b T) (bool, error) {
	fa, err := Fingerprint(a, DefaultConfig(), DigestBLAKE2b)
	if err != nil {
		return false, err
	}
	fb, err := Fingerprint(b, DefaultConfig(), DigestBLAKE2b)
	if err != nil {
		return false, err
	}
	return fa == fb, nil
}

func digest(algo DigestAlgo, data []byte) string {
	if algo == DigestSHA256 {
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
