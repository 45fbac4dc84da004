// Package xrplhash implements the hash primitives the rest of the core
// builds on: double SHA-256 (base58check), SHA-512/half (signing digests),
// and Hash160 (account IDs). Grounded on the teacher's BTC generator, which
// computes the same double-SHA256 and Hash160 primitives for address
// encoding.
package xrplhash

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is required by the XRPL account-ID scheme
)

// Sha256Half hashes data once with SHA-256. Several XRPL wire formats hash
// field data with a single pass rather than SHA-512/half; kept distinct from
// DoubleSha256 so callers can't conflate the two.
func Sha256Half(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// DoubleSha256 returns SHA-256(SHA-256(data)), the digest base58check takes
// its 4-byte checksum from.
func DoubleSha256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Sha512Half returns the first 32 bytes of SHA-512(data). XRPL uses this as
// its general-purpose 256-bit digest for signing and transaction hashing
// instead of SHA-256 directly.
func Sha512Half(data []byte) []byte {
	h := sha512.Sum512(data)
	out := make([]byte, 32)
	copy(out, h[:32])
	return out
}

// Hash160 returns RIPEMD160(SHA256(data)), used to derive an AccountID from
// a public key.
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
