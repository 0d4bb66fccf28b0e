// Package digest provides the one-way hash primitive used to seal and
// verify ledger blocks. Every call is independent and stateless, so the
// functions are safe for concurrent use.
package digest

import (
	"encoding/hex"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Sum returns the 256-bit suite digest of data rendered as lowercase hex.
func Sum(data []byte) string {
	h := suite.Hash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ZeroPrefix reports whether the first n characters of hash are all '0'.
// This is the proof-of-work target test: a block hash is valid at
// difficulty n when ZeroPrefix(hash, n) holds. n <= 0 is trivially true.
func ZeroPrefix(hash string, n int) bool {
	if n <= 0 {
		return true
	}
	if n > len(hash) {
		return false
	}
	for i := 0; i < n; i++ {
		if hash[i] != '0' {
			return false
		}
	}
	return true
}
