package dupe

// CyclePolicy controls what happens when the source graph refers back to
// one of its own ancestors.
type CyclePolicy string

const (
	// CycleFail reports a CyclicReferenceError on the first back-reference.
	CycleFail CyclePolicy = "fail"

	// CycleIgnore omits back-references so the clone can complete.
	// The copy is missing the cyclic edge rather than reproducing it.
	CycleIgnore CyclePolicy = "ignore"
)

// DigestAlgo represents a supported fingerprint digest.
type DigestAlgo string

const (
	// DigestBLAKE2b uses BLAKE2b-256.
	DigestBLAKE2b DigestAlgo = "blake2b"

	// DigestSHA256 uses SHA-256.
	DigestSHA256 DigestAlgo = "sha256"
)

// validCyclePolicies contains all valid cycle policies for config validation.
var validCyclePolicies = map[CyclePolicy]bool{
	CycleFail:   true,
	CycleIgnore: true,
}

// validDigestAlgos contains all valid fingerprint digests.
var validDigestAlgos = map[DigestAlgo]bool{
	DigestBLAKE2b: true,
	DigestSHA256:  true,
}

// IsValidCyclePolicy returns true if the policy is a known cycle policy.
func IsValidCyclePolicy(p CyclePolicy) bool {
	return validCyclePolicies[p]
}

// IsValidDigestAlgo returns true if the algorithm is a known digest.
func IsValidDigestAlgo(algo DigestAlgo) bool {
	return validDigestAlgos[algo]
}
