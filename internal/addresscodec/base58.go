// Package addresscodec implements XRPL's base58check alphabet and the
// seed/address/key encodings built on top of it. Grounded on the teacher's
// BTC generator (internal/wallet/btc.go), which implements the same
// version-byte + payload + checksum shape with the standard Bitcoin
// alphabet; here the alphabet and the set of version bytes differ, and
// decode needs to be exact rather than delegate to a library default.
package addresscodec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

// Alphabet is XRPL's base58 alphabet: a scrambled ordering of the usual
// Bitcoin alphabet so that XRPL-encoded strings are visibly distinct from
// Bitcoin ones even when the underlying bytes happen to coincide.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// Algorithm identifies which signing scheme a seed or key was generated for.
type Algorithm int

const (
	AlgorithmEd25519 Algorithm = iota
	AlgorithmSecp256k1
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmEd25519:
		return "ed25519"
	case AlgorithmSecp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

var (
	seedPrefixEd25519   = []byte{0x01, 0xE1, 0x4B}
	seedPrefixSecp256k1 = []byte{0x21}

	prefixAccountID         = []byte{0x00}
	prefixAccountPublicKey  = []byte{0x23}
	prefixAccountPrivateKey = []byte{0x22}
	prefixNodePublicKey     = []byte{0x1C}
	prefixNodePrivateKey    = []byte{0x20}
)

// Encode base58-encodes raw bytes with no checksum, using XRPL's alphabet.
func Encode(payload []byte) string {
	nLeadingZeros := 0
	for nLeadingZeros < len(payload) && payload[nLeadingZeros] == 0 {
		nLeadingZeros++
	}

	n := new(big.Int).SetBytes(payload)
	base := big.NewInt(int64(len(Alphabet)))
	mod := new(big.Int)

	var digits []byte
	zero := big.NewInt(0)
	for n.Cmp(zero) > 0 {
		n.DivMod(n, base, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	var sb strings.Builder
	for i := 0; i < nLeadingZeros; i++ {
		sb.WriteByte(Alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// Decode reverses Encode. Unlike a naive port of the textbook algorithm
// (estimate output length with ceil(log_256(58^n)), which is lossy in
// floating point near power-of-256 boundaries), the big integer's own
// Bytes() representation is exact, so no length estimate is needed at all:
// leading zero bytes are recovered solely by counting leading alphabet[0]
// characters in the input.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	nLeadingZeros := 0
	for nLeadingZeros < len(s) && s[nLeadingZeros] == Alphabet[0] {
		nLeadingZeros++
	}

	n := new(big.Int)
	base := big.NewInt(int64(len(Alphabet)))
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(Alphabet, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("invalid base58 character %q at offset %d", s[i], i)
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(idx)))
	}

	body := n.Bytes()
	out := make([]byte, nLeadingZeros+len(body))
	copy(out[nLeadingZeros:], body)
	return out, nil
}

// EncodeChecked prepends prefix to payload, appends a 4-byte double-SHA256
// checksum, and base58-encodes the result.
func EncodeChecked(prefix, payload []byte) string {
	data := make([]byte, 0, len(prefix)+len(payload)+4)
	data = append(data, prefix...)
	data = append(data, payload...)
	checksum := xrplhash.DoubleSha256(data)
	data = append(data, checksum[:4]...)
	return Encode(data)
}

// DecodeChecked base58-decodes s, verifies the trailing 4-byte checksum, and
// splits the remainder into the prefixLen-byte prefix and the payload.
func DecodeChecked(s string, prefixLen int) (prefix, payload []byte, err error) {
	data, err := Decode(s)
	if err != nil {
		return nil, nil, err
	}
	if len(data) < prefixLen+4 {
		return nil, nil, fmt.Errorf("%w: decoded length %d shorter than prefix+checksum", xrplerr.ErrChecksumMismatch, len(data))
	}

	body := data[:len(data)-4]
	checksum := data[len(data)-4:]
	want := xrplhash.DoubleSha256(body)
	for i := 0; i < 4; i++ {
		if checksum[i] != want[i] {
			return nil, nil, xrplerr.ErrChecksumMismatch
		}
	}
	return body[:prefixLen], body[prefixLen:], nil
}

// EncodeSeed encodes 16 bytes of entropy with the algorithm's family-seed
// prefix.
func EncodeSeed(entropy []byte, algo Algorithm) (string, error) {
	if len(entropy) != 16 {
		return "", fmt.Errorf("%w: got %d bytes, want 16", xrplerr.ErrBadSeedLength, len(entropy))
	}
	switch algo {
	case AlgorithmEd25519:
		return EncodeChecked(seedPrefixEd25519, entropy), nil
	case AlgorithmSecp256k1:
		return EncodeChecked(seedPrefixSecp256k1, entropy), nil
	default:
		return "", fmt.Errorf("%w: %v", xrplerr.ErrUnknownAlgorithm, algo)
	}
}

// DecodeSeed decodes a family seed string into its 16 bytes of entropy and
// the algorithm it was minted for, detected from the prefix.
func DecodeSeed(s string) (entropy []byte, algo Algorithm, err error) {
	data, err := Decode(s)
	if err != nil {
		return nil, 0, err
	}

	for _, candidate := range []struct {
		prefix []byte
		algo   Algorithm
	}{
		{seedPrefixEd25519, AlgorithmEd25519},
		{seedPrefixSecp256k1, AlgorithmSecp256k1},
	} {
		p := candidate.prefix
		if len(data) < len(p) || !hasPrefix(data, p) {
			continue
		}
		_, payload, err := DecodeChecked(s, len(p))
		if err != nil {
			return nil, 0, err
		}
		if len(payload) != 16 {
			return nil, 0, fmt.Errorf("%w: got %d bytes, want 16", xrplerr.ErrBadSeedLength, len(payload))
		}
		return payload, candidate.algo, nil
	}
	return nil, 0, fmt.Errorf("%w: unrecognized seed prefix", xrplerr.ErrUnknownAlgorithm)
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// EncodeAddress encodes a 20-byte AccountID as a classic "r..." address.
func EncodeAddress(accountID []byte) (string, error) {
	if len(accountID) != 20 {
		return "", fmt.Errorf("%w: account id must be 20 bytes, got %d", xrplerr.ErrHashLengthMismatch, len(accountID))
	}
	return EncodeChecked(prefixAccountID, accountID), nil
}

// DecodeAddress decodes a classic address back to its 20-byte AccountID.
func DecodeAddress(s string) ([]byte, error) {
	_, payload, err := DecodeChecked(s, len(prefixAccountID))
	if err != nil {
		return nil, err
	}
	if len(payload) != 20 {
		return nil, fmt.Errorf("%w: account id must be 20 bytes, got %d", xrplerr.ErrHashLengthMismatch, len(payload))
	}
	return payload, nil
}

// EncodeAccountPublicKey encodes a 33-byte compressed public key with the
// account-public-key prefix ('a...' strings in rippled).
func EncodeAccountPublicKey(pub []byte) string {
	return EncodeChecked(prefixAccountPublicKey, pub)
}

// DecodeAccountPublicKey reverses EncodeAccountPublicKey.
func DecodeAccountPublicKey(s string) ([]byte, error) {
	_, payload, err := DecodeChecked(s, len(prefixAccountPublicKey))
	return payload, err
}

// EncodeNodePublicKey encodes a node (validator) public key ('n...' strings).
func EncodeNodePublicKey(pub []byte) string {
	return EncodeChecked(prefixNodePublicKey, pub)
}

// DecodeNodePublicKey reverses EncodeNodePublicKey.
func DecodeNodePublicKey(s string) ([]byte, error) {
	_, payload, err := DecodeChecked(s, len(prefixNodePublicKey))
	return payload, err
}

// EncodeAccountPrivateKey encodes a 32-byte account secret ('p...' strings).
func EncodeAccountPrivateKey(priv []byte) string {
	return EncodeChecked(prefixAccountPrivateKey, priv)
}

// DecodeAccountPrivateKey reverses EncodeAccountPrivateKey.
func DecodeAccountPrivateKey(s string) ([]byte, error) {
	_, payload, err := DecodeChecked(s, len(prefixAccountPrivateKey))
	return payload, err
}

// EncodeNodePrivateKey encodes a node (validator) private key.
func EncodeNodePrivateKey(priv []byte) string {
	return EncodeChecked(prefixNodePrivateKey, priv)
}

// DecodeNodePrivateKey reverses EncodeNodePrivateKey.
func DecodeNodePrivateKey(s string) ([]byte, error) {
	_, payload, err := DecodeChecked(s, len(prefixNodePrivateKey))
	return payload, err
}
