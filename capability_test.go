package dupe

import "testing"

func TestIsValidCyclePolicy(t *testing.T) {
	tests := []struct {
		policy CyclePolicy
		want   bool
	}{
		{CycleFail, true},
		{CycleIgnore, true},
		{"preserve", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			if got := IsValidCyclePolicy(tt.policy); got != tt.want {
				t.Errorf("IsValidCyclePolicy(%q) = %v, want %v", tt.policy, got, tt.want)
			}
		})
	}
}

func TestIsValidDigestAlgo(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		want bool
	}{
		{DigestBLAKE2b, true},
		{DigestSHA256, true},
		{"md5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := IsValidDigestAlgo(tt.algo); got != tt.want {
				t.Errorf("IsValidDigestAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}

func TestConfig_Normalize(t *testing.T) {
	cfg, err := Config{}.normalize()
	if err != nil {
		t.Fatalf("normalize() error: %v", err)
	}
	if cfg.Codec != defaultCodec {
		t.Error("normalize() should select the default codec")
	}
	if cfg.OnReferenceCycle != CycleFail {
		t.Errorf("OnReferenceCycle = %q, want %q", cfg.OnReferenceCycle, CycleFail)
	}
	if cfg.ReplaceCollections {
		t.Error("normalize() should not change ReplaceCollections")
	}

	if _, err := (Config{OnReferenceCycle: "loop"}).normalize(); err == nil {
		t.Error("normalize() should reject unknown policies")
	}
}
