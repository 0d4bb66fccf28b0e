package digest

import (
	"strings"
	"testing"
)

// TestSumDeterministic verifies that hashing the same input twice yields
// the same digest, and that different inputs yield different digests.
// The whole chain verification scheme rests on this property.
func TestSumDeterministic(t *testing.T) {
	a := Sum([]byte("some payload"))
	b := Sum([]byte("some payload"))
	if a != b {
		t.Fatalf("same input produced different digests: %s vs %s", a, b)
	}
	c := Sum([]byte("some other payload"))
	if a == c {
		t.Fatalf("different inputs produced the same digest: %s", a)
	}
}

// TestSumFormat verifies the digest is 64 lowercase hex characters,
// the fixed output length of the 256-bit suite hash.
func TestSumFormat(t *testing.T) {
	h := Sum([]byte("format check"))
	if len(h) != 64 {
		t.Fatalf("expected 64 hex characters, got %d: %s", len(h), h)
	}
	for i := 0; i < len(h); i++ {
		if !strings.ContainsRune("0123456789abcdef", rune(h[i])) {
			t.Fatalf("digest contains non lowercase-hex character %q: %s", h[i], h)
		}
	}
}

func TestSumEmptyInput(t *testing.T) {
	if got := Sum(nil); len(got) != 64 {
		t.Fatalf("digest of empty input has length %d", len(got))
	}
	if Sum(nil) != Sum([]byte{}) {
		t.Fatalf("nil and empty slice should hash identically")
	}
}

// TestZeroPrefix covers the difficulty target test, including the
// trivial difficulty-0 case and an out-of-range difficulty.
func TestZeroPrefix(t *testing.T) {
	tests := []struct {
		hash string
		n    int
		want bool
	}{
		{"00af3c", 2, true},
		{"00af3c", 3, false},
		{"0af3c", 1, true},
		{"af3c", 1, false},
		{"af3c", 0, true},
		{"", 0, true},
		{"00", 3, false},
		{"0000", 4, true},
	}
	for _, tt := range tests {
		if got := ZeroPrefix(tt.hash, tt.n); got != tt.want {
			t.Errorf("ZeroPrefix(%q, %d) = %v, want %v", tt.hash, tt.n, got, tt.want)
		}
	}
}
