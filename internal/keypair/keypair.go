package keypair

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/addresscodec"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
)

// DeriveKeyPair derives the private key and the 33-byte wire-form public key
// for seed entropy, dispatching on algo. root, when true, derives the single-stage
// root keypair (rippled's validator-key path) instead of the normal
// two-stage account keypair; it is ignored for ed25519, which has no
// root/intermediate distinction.
func DeriveKeyPair(entropy []byte, algo addresscodec.Algorithm, root bool) (priv, pub []byte, err error) {
	switch algo {
	case addresscodec.AlgorithmEd25519:
		return DeriveEd25519KeyPair(entropy)
	case addresscodec.AlgorithmSecp256k1:
		return DeriveSecp256k1KeyPair(entropy, root)
	default:
		return nil, nil, fmt.Errorf("%w: %v", xrplerr.ErrUnknownAlgorithm, algo)
	}
}

// Sign signs data with priv under algo. For ed25519, data is the full
// message (Ed25519 hashes internally). For secp256k1, data must already be
// the 32-byte SHA-512/half digest of the message: ECDSA always signs a
// digest, never a message directly.
func Sign(message, priv []byte, algo addresscodec.Algorithm) ([]byte, error) {
	switch algo {
	case addresscodec.AlgorithmEd25519:
		return SignEd25519(message, priv)
	case addresscodec.AlgorithmSecp256k1:
		return SignSecp256k1(message, priv)
	default:
		return nil, fmt.Errorf("%w: %v", xrplerr.ErrUnknownAlgorithm, algo)
	}
}

// Verify reports whether sig is valid for message/digest under pub and algo.
func Verify(message, sig, pub []byte, algo addresscodec.Algorithm) (bool, error) {
	switch algo {
	case addresscodec.AlgorithmEd25519:
		return VerifyEd25519(message, sig, pub)
	case addresscodec.AlgorithmSecp256k1:
		return VerifySecp256k1(message, sig, pub)
	default:
		return false, fmt.Errorf("%w: %v", xrplerr.ErrUnknownAlgorithm, algo)
	}
}

// AccountID returns the 20-byte account identifier for a wire-tagged public
// key: RIPEMD160(SHA256(pub)).
func AccountID(pub []byte) []byte {
	return xrplhash.Hash160(pub)
}
