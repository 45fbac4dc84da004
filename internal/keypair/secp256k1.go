package keypair

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/xpring-eng/xrpl-go-core/internal/config"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
)

// deriveScalar implements rippled's "derive_candidate" loop: hash the input
// (plus an optional 4-byte discriminator and an incrementing 4-byte
// sequence number) with SHA-512/half until the digest, read as a big-endian
// scalar, is both nonzero and less than the curve order. Grounded on
// LeJamon/goXRPLd's secp256k1.go, whose deriveScalar does the same loop
// against btcec's curve order; here the validity check is done with
// decred's ModNScalar, whose SetByteSlice already reports the overflow
// condition deriveScalar needs, instead of comparing against an
// exported order value by hand.
func deriveScalar(base []byte, discriminator *uint32) ([]byte, error) {
	for seq := uint32(0); ; seq++ {
		buf := make([]byte, 0, len(base)+8)
		buf = append(buf, base...)
		if discriminator != nil {
			buf = append(buf, be32(*discriminator)...)
		}
		buf = append(buf, be32(seq)...)
		candidate := xrplhash.Sha512Half(buf)

		var scalar secp256k1.ModNScalar
		overflow := scalar.SetByteSlice(candidate)
		if !overflow && !scalar.IsZero() {
			return candidate, nil
		}
		if seq == ^uint32(0) {
			break
		}
	}
	return nil, fmt.Errorf("could not derive a valid secp256k1 scalar from seed")
}

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// addPublicKeys returns the EC point sum of a and b, used to combine the
// root and intermediate public keys into the master public key without
// needing the corresponding private scalars.
func addPublicKeys(a, b *secp256k1.PublicKey) *secp256k1.PublicKey {
	var aJ, bJ, sumJ secp256k1.JacobianPoint
	a.AsJacobian(&aJ)
	b.AsJacobian(&bJ)
	secp256k1.AddNonConst(&aJ, &bJ, &sumJ)
	sumJ.ToAffine()
	return secp256k1.NewPublicKey(&sumJ.X, &sumJ.Y)
}

// addScalarsModN returns (a + b) mod the secp256k1 group order, left-padded
// to 32 bytes.
func addScalarsModN(a, b []byte) []byte {
	var aS, bS, sumS secp256k1.ModNScalar
	aS.SetByteSlice(a)
	bS.SetByteSlice(b)
	sumS.Add2(&aS, &bS)
	out := sumS.Bytes()
	return out[:]
}

// DeriveSecp256k1KeyPair derives the XRPL "family seed" secp256k1 keypair
// from 16 bytes of seed entropy.
//
// The scheme derives two scalars: a root scalar from the seed alone, and an
// intermediate scalar from the root's compressed public key plus a fixed
// discriminator of 0. The master private key is the two scalars summed mod
// the curve order; the master public key is the corresponding point sum, so
// it can equally be computed from the two public keys alone (see
// DerivePublicKeyFromRootPublicKey for that use case, e.g. deriving an
// additional public key when only a validator's root public key, not its
// private key, is available).
//
// root=true stops after the first stage and returns the root keypair
// directly, which is how rippled derives validator keys.
func DeriveSecp256k1KeyPair(entropy []byte, root bool) (priv, pub []byte, err error) {
	if len(entropy) != 16 {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want 16", xrplerr.ErrBadSeedLength, len(entropy))
	}

	rootScalar, err := deriveScalar(entropy, nil)
	if err != nil {
		return nil, nil, err
	}
	rootPriv, rootPub := btcec.PrivKeyFromBytes(rootScalar)

	if root {
		return rootPriv.Serialize(), rootPub.SerializeCompressed(), nil
	}

	zero := uint32(0)
	interScalar, err := deriveScalar(rootPub.SerializeCompressed(), &zero)
	if err != nil {
		return nil, nil, err
	}
	_, interPub := btcec.PrivKeyFromBytes(interScalar)

	masterScalarBytes := addScalarsModN(rootScalar, interScalar)
	masterPriv, _ := btcec.PrivKeyFromBytes(masterScalarBytes)
	masterPub := addPublicKeys(rootPub, interPub)

	return masterPriv.Serialize(), masterPub.SerializeCompressed(), nil
}

// DerivePublicKeyFromRootPublicKey computes the master public key from a
// root public key alone, mirroring LeJamon/goXRPLd's
// DerivePublicKeyFromPublicGenerator: the intermediate key pair is
// recomputed from the root public key (the intermediate derivation depends
// only on the root's compressed public key, never its private scalar) and
// added to it.
func DerivePublicKeyFromRootPublicKey(rootPubCompressed []byte) ([]byte, error) {
	rootPub, err := secp256k1.ParsePubKey(rootPubCompressed)
	if err != nil {
		return nil, fmt.Errorf("parse root public key: %w", err)
	}
	zero := uint32(0)
	interScalar, err := deriveScalar(rootPub.SerializeCompressed(), &zero)
	if err != nil {
		return nil, err
	}
	_, interPub := btcec.PrivKeyFromBytes(interScalar)
	masterPub := addPublicKeys(rootPub, interPub)
	return masterPub.SerializeCompressed(), nil
}

// SignSecp256k1 signs a 32-byte pre-hashed digest with a deterministic
// (RFC 6979) ECDSA signature, DER-encoded. decred's ecdsa.Sign already
// normalizes to the low-S form rippled's canonicality rule requires, so no
// separate canonicalization pass is needed.
func SignSecp256k1(digest, priv []byte) ([]byte, error) {
	return SignSecp256k1WithConfig(digest, priv, config.Config{NormalizeLowS: true})
}

// SignSecp256k1WithConfig is SignSecp256k1 with cfg.NormalizeLowS honored.
// Setting NormalizeLowS false produces the non-canonical (high-S) sibling
// of the signature decred's signer would otherwise return; this exists so
// test and research tooling can construct a signature rippled's broadcast
// path would reject while still exercising VerifySecp256k1's tolerant
// acceptance of it. Production signing should always leave it true.
func SignSecp256k1WithConfig(digest, priv []byte, cfg config.Config) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("%w: digest must be 32 bytes, got %d", xrplerr.ErrHashLengthMismatch, len(digest))
	}
	privKey := secp256k1.PrivKeyFromBytes(priv)
	sig := ecdsa.Sign(privKey, digest)
	if cfg.NormalizeLowS {
		return sig.Serialize(), nil
	}
	return denormalize(sig), nil
}

// denormalize flips sig's S to its high-S sibling (n - s) and re-encodes
// it as DER, producing the non-canonical counterpart of a canonical
// signature.
func denormalize(sig *ecdsa.Signature) []byte {
	r := sig.R()
	s := sig.S()
	var negS secp256k1.ModNScalar
	negS.NegateVal(&s)
	flipped := ecdsa.NewSignature(&r, &negS)
	return flipped.Serialize()
}

// VerifySecp256k1 reports whether derSig is a valid ECDSA signature over
// digest by pub. Both canonical (low-S) and non-canonical (high-S)
// signatures verify successfully here: signing always produces the
// canonical form, but rippled's verifier does not reject the other one,
// so this does not either.
func VerifySecp256k1(digest, derSig, pub []byte) (bool, error) {
	if len(digest) != 32 {
		return false, fmt.Errorf("%w: digest must be 32 bytes, got %d", xrplerr.ErrHashLengthMismatch, len(digest))
	}
	pubKey, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}
	sig, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false, fmt.Errorf("parse signature: %w", err)
	}
	return sig.Verify(digest, pubKey), nil
}

// IsCanonicalLowS reports whether derSig's S value is the low-S form
// rippled's canonicality rule requires (s <= n/2).
func IsCanonicalLowS(derSig []byte) (bool, error) {
	sig, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false, fmt.Errorf("parse signature: %w", err)
	}
	s := sig.S()
	negated := new(secp256k1.ModNScalar).NegateVal(&s)
	return !s.IsOverHalfOrder() || negated.IsOverHalfOrder(), nil
}
