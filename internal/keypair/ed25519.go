// Package keypair implements XRPL's two key-derivation/signing schemes:
// ed25519 and the secp256k1 "family seed" scheme. Grounded on the teacher's
// per-network signer split (internal/wallet/{eth,btc,trx}.go, one file per
// algorithm behind a shared Signer interface) and, for the algorithms
// themselves, on LeJamon/goXRPLd's internal/crypto/algorithms/secp256k1.go
// and the standard library's ed25519 package (the one ed25519 idiom present
// in the broader retrieval pack, e.g. the sui-go-sdk keypair file).
package keypair

import (
	stded25519 "crypto/ed25519"
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
)

// ed25519PubPrefix tags every XRPL ed25519 public key blob so that ed25519
// and secp256k1 keys of otherwise-overlapping lengths are never confused on
// the wire.
const ed25519PubPrefix = 0xED

// DeriveEd25519KeyPair derives the private and public key for the ed25519
// algorithm from 16 bytes of seed entropy. Only the public key carries the
// 0xED wire tag; the private key is the bare 32-byte SHA-512/half digest,
// matching rippled's own key-derivation output (a wire-tagged private key
// would collide in length with a tagged secp256k1 one, but nothing on the
// wire ever carries a private key, so there is no ambiguity to resolve).
//
// Unlike secp256k1's multi-stage family-seed derivation, ed25519 derivation
// is a single hash: the 32-byte Ed25519 seed is SHA-512/half of the family
// seed's entropy.
func DeriveEd25519KeyPair(entropy []byte) (priv, pub []byte, err error) {
	if len(entropy) != 16 {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want 16", xrplerr.ErrBadSeedLength, len(entropy))
	}

	rawPriv := xrplhash.Sha512Half(entropy)
	edPriv := stded25519.NewKeyFromSeed(rawPriv)
	edPub := edPriv.Public().(stded25519.PublicKey)

	priv = rawPriv

	pub = make([]byte, 0, 33)
	pub = append(pub, ed25519PubPrefix)
	pub = append(pub, edPub...)

	return priv, pub, nil
}

// SignEd25519 signs message directly (Ed25519 hashes internally; unlike
// secp256k1, XRPL never pre-hashes the message for this algorithm) with the
// bare 32-byte seed produced by DeriveEd25519KeyPair.
func SignEd25519(message, priv []byte) ([]byte, error) {
	if len(priv) != stded25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 private key must be %d bytes, got %d", xrplerr.ErrHashLengthMismatch, stded25519.SeedSize, len(priv))
	}
	edPriv := stded25519.NewKeyFromSeed(priv)
	return stded25519.Sign(edPriv, message), nil
}

// VerifyEd25519 reports whether sig is a valid Ed25519 signature over
// message by the wire-tagged public key pub.
func VerifyEd25519(message, sig, pub []byte) (bool, error) {
	rawPub, err := stripPrefix(pub)
	if err != nil {
		return false, err
	}
	if len(rawPub) != stded25519.PublicKeySize {
		return false, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d", xrplerr.ErrHashLengthMismatch, stded25519.PublicKeySize, len(rawPub))
	}
	return stded25519.Verify(stded25519.PublicKey(rawPub), message, sig), nil
}

func stripPrefix(key []byte) ([]byte, error) {
	if len(key) == 0 || key[0] != ed25519PubPrefix {
		return nil, fmt.Errorf("%w: missing 0xED ed25519 key prefix", xrplerr.ErrUnknownAlgorithm)
	}
	return key[1:], nil
}
