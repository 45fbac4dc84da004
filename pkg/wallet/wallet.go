// Package wallet is the public facade over key derivation, addressing, and
// transaction signing: the thing a transport layer (out of scope here)
// would hold onto per account. Grounded on the teacher's internal/wallet
// package, whose Generator/Signer interfaces compose address derivation
// and signing behind a small per-network surface, and on xpring-py's
// wallet.py, which wraps a KeyPair with the same Address()/Sign()/Verify()
// shape this adapts from multi-chain addresses to a single XRPL account.
package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/addresscodec"
	"github.com/xpring-eng/xrpl-go-core/internal/keypair"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
)

// hashMessage reduces an arbitrary-length message to the 32-byte SHA-512/
// half digest secp256k1's ECDSA signer operates on. ed25519 signs the raw
// message directly and never calls this.
func hashMessage(message []byte) []byte {
	return xrplhash.Sha512Half(message)
}

// Algorithm re-exports addresscodec.Algorithm so callers never need to
// import the internal package directly.
type Algorithm = addresscodec.Algorithm

const (
	Ed25519   = addresscodec.AlgorithmEd25519
	Secp256k1 = addresscodec.AlgorithmSecp256k1
)

// Wallet holds a derived keypair and the classic address it controls.
type Wallet struct {
	Seed       string
	Algorithm  Algorithm
	PrivateKey []byte
	PublicKey  []byte
	Address    string
}

// FromSeed derives a Wallet from a family seed string ("sEd..." or "s...").
func FromSeed(seed string) (*Wallet, error) {
	entropy, algo, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return fromEntropy(seed, entropy, algo, false)
}

// FromValidatorSeed derives the single-stage root keypair rippled uses for
// validator keys, rather than the normal two-stage account keypair.
func FromValidatorSeed(seed string) (*Wallet, error) {
	entropy, algo, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return fromEntropy(seed, entropy, algo, true)
}

func fromEntropy(seed string, entropy []byte, algo Algorithm, root bool) (*Wallet, error) {
	priv, pub, err := keypair.DeriveKeyPair(entropy, algo, root)
	if err != nil {
		return nil, fmt.Errorf("derive keypair: %w", err)
	}
	accountID := keypair.AccountID(pub)
	address, err := addresscodec.EncodeAddress(accountID)
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}
	return &Wallet{
		Seed:       seed,
		Algorithm:  algo,
		PrivateKey: priv,
		PublicKey:  pub,
		Address:    address,
	}, nil
}

// PublicKeyHex returns the wallet's public key as an uppercase hex string,
// the representation SigningPubKey fields use.
func (w *Wallet) PublicKeyHex() string {
	return fmt.Sprintf("%X", w.PublicKey)
}

// Sign signs an arbitrary message (not a transaction; see SignTransaction
// for that pipeline) and returns the signature, hex-encoded.
func (w *Wallet) Sign(message []byte) (string, error) {
	var sig []byte
	var err error
	switch w.Algorithm {
	case addresscodec.AlgorithmEd25519:
		sig, err = keypair.SignEd25519(message, w.PrivateKey)
	case addresscodec.AlgorithmSecp256k1:
		sig, err = keypair.SignSecp256k1(hashMessage(message), w.PrivateKey)
	}
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig), nil
}

// Verify reports whether hexSig is a valid signature over message by this
// wallet's public key.
func (w *Wallet) Verify(message []byte, hexSig string) (bool, error) {
	sig, err := hex.DecodeString(hexSig)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}
	switch w.Algorithm {
	case addresscodec.AlgorithmEd25519:
		return keypair.VerifyEd25519(message, sig, w.PublicKey)
	case addresscodec.AlgorithmSecp256k1:
		return keypair.VerifySecp256k1(hashMessage(message), sig, w.PublicKey)
	}
	return false, fmt.Errorf("unknown algorithm %v", w.Algorithm)
}
