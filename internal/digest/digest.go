// Package digest provides the content-addressing helpers dict needs to
// store binary keys by bytewise value rather than by reference: a
// byte-exact digest for the short-binary bucket's native map, and an
// xxHash64 fingerprint used as a fast pre-check in the long-binary
// bucket's linear scan.
package digest

import "github.com/cespare/xxhash/v2"

// Short converts key bytes into a digest suitable for use as a Go map key.
// Go's string(b) conversion already copies b byte-for-byte, so two keys
// with identical contents always produce identical digests and distinct
// contents always produce distinct digests — the map's native string
// equality is exact content equality, no actual hashing required.
func Short(b []byte) string {
	return string(b)
}

// Fingerprint computes the xxHash64 fingerprint of b, used by the
// long-binary bucket to reject non-matching entries in O(1) before falling
// back to a full bytes.Equal comparison.
func Fingerprint(b []byte) uint64 {
	return xxhash.Sum64(b)
}
