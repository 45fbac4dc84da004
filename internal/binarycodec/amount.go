package binarycodec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

const (
	minMantissa = 1_000_000_000_000_000  // 10^15
	maxMantissa = 9_999_999_999_999_999  // 10^16 - 1
	minExponent = -96
	maxExponent = 80

	notXRPBit  = uint64(1) << 63
	positiveBit = uint64(1) << 62
)

// XRPAmount is a plain-XRP value expressed in drops (1 XRP = 1,000,000
// drops).
type XRPAmount int64

// IssuedAmount is a value denominated in an issued currency.
//
// Value is a decimal string ("107.5", "-12", "0") rather than a float, so
// that callers control precision exactly the way rippled's own amount
// strings do; Currency is either a 3-letter ISO code or a 40-hex-digit
// 160-bit currency code; Issuer is the classic "r..." address of the
// issuing account.
type IssuedAmount struct {
	Value    string
	Currency string
	Issuer   string
}

func (XRPAmount) isAmount()    {}
func (IssuedAmount) isAmount() {}

// Amount is the tagged union of the two amount kinds a field of type
// "Amount" can hold.
type Amount interface {
	isAmount()
}

var currencyCodeRe = regexp.MustCompile(`^[A-Za-z0-9?!@#$%^&*(){}\[\]<>|]{3}$`)

// serializeAmount encodes an Amount into its 8-byte (XRP) or 48-byte
// (issued: 8-byte mantissa/exponent word + 20-byte currency + 20-byte
// issuer AccountID) wire representation.
func serializeAmount(a Amount) ([]byte, error) {
	switch v := a.(type) {
	case XRPAmount:
		return serializeXRPAmount(v)
	case IssuedAmount:
		return serializeIssuedAmount(v)
	default:
		return nil, fmt.Errorf("%w: unsupported amount type %T", xrplerr.ErrUnserializableField, a)
	}
}

func serializeXRPAmount(v XRPAmount) ([]byte, error) {
	drops := int64(v)
	sign := uint64(0)
	abs := drops
	if drops < 0 {
		abs = -drops
	} else {
		sign = positiveBit
	}
	if uint64(abs) > 100_000_000_000_000_000 {
		return nil, fmt.Errorf("%w: drops value %d exceeds 10^17", xrplerr.ErrAmountOverflow, drops)
	}
	word := sign | uint64(abs)
	out := make([]byte, 8)
	putUint64(out, word)
	return out, nil
}

func serializeIssuedAmount(v IssuedAmount) ([]byte, error) {
	word, err := encodeMantissaExponent(v.Value)
	if err != nil {
		return nil, fmt.Errorf("field Amount (Amount): %w", err)
	}
	currency, err := encodeCurrency(v.Currency)
	if err != nil {
		return nil, fmt.Errorf("field Amount (Amount): %w", err)
	}
	issuer, err := decodeClassicAddressRaw(v.Issuer)
	if err != nil {
		return nil, fmt.Errorf("field Amount (Amount): %w", err)
	}

	out := make([]byte, 8, 48)
	putUint64(out, word)
	out = append(out, currency...)
	out = append(out, issuer...)
	return out, nil
}

// encodeMantissaExponent normalizes a decimal string to a 16-digit mantissa
// and an exponent in [-96, 80] and packs them with the not-XRP and sign
// bits into a 64-bit word. The zero value gets the canonical all-zero
// mantissa sentinel (only the not-XRP bit set).
func encodeMantissaExponent(value string) (uint64, error) {
	sign, digits, exponent, isZero := parseDecimal(value)
	if isZero {
		return notXRPBit, nil
	}

	mantissa := new(big.Int)
	mantissa.SetString(digits, 10)
	ten := big.NewInt(10)

	minM := big.NewInt(minMantissa)
	maxM := big.NewInt(maxMantissa)

	for mantissa.Cmp(minM) < 0 && exponent > minExponent {
		mantissa.Mul(mantissa, ten)
		exponent--
	}
	for mantissa.Cmp(maxM) > 0 {
		if exponent >= maxExponent {
			return 0, xrplerr.ErrAmountOverflow
		}
		rem := new(big.Int)
		q := new(big.Int)
		q.DivMod(mantissa, ten, rem)
		if rem.Sign() != 0 {
			return 0, xrplerr.ErrAmountOverflow
		}
		mantissa = q
		exponent++
	}

	if exponent < minExponent || mantissa.Cmp(minM) < 0 {
		return notXRPBit, nil
	}
	if exponent > maxExponent {
		return 0, fmt.Errorf("%w: exponent %d out of range [%d, %d]", xrplerr.ErrAmountOverflow, exponent, minExponent, maxExponent)
	}

	word := notXRPBit
	if sign >= 0 {
		word |= positiveBit
	}
	word |= uint64(exponent+97) << 54
	word |= mantissa.Uint64()
	return word, nil
}

// parseDecimal splits a decimal string into its sign, significant digits
// (leading/trailing zeros stripped), and decimal exponent such that the
// value equals sign * digits * 10^exponent. isZero is true for "0", "0.0",
// "-0", etc.
func parseDecimal(s string) (sign int, digits string, exponent int, isZero bool) {
	s = strings.TrimSpace(s)
	sign = 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	all := intPart + fracPart
	exponent = -len(fracPart)

	trimmed := strings.TrimLeft(all, "0")
	if trimmed == "" {
		return sign, "0", 0, true
	}

	for len(trimmed) > 1 && trimmed[len(trimmed)-1] == '0' {
		trimmed = trimmed[:len(trimmed)-1]
		exponent++
	}

	return sign, trimmed, exponent, false
}

// deserializeAmount reads an 8-byte or 48-byte amount from s, dispatching on
// the not-XRP bit.
func deserializeAmount(s *Scanner) (Amount, error) {
	raw, err := s.Take(8)
	if err != nil {
		return nil, err
	}
	word := getUint64(raw)

	if word&notXRPBit == 0 {
		abs := int64(word &^ positiveBit)
		if word&positiveBit == 0 {
			abs = -abs
		}
		return XRPAmount(abs), nil
	}

	currencyRaw, err := s.Take(20)
	if err != nil {
		return nil, err
	}
	issuerRaw, err := s.Take(20)
	if err != nil {
		return nil, err
	}

	currency, err := decodeCurrency(currencyRaw)
	if err != nil {
		return nil, err
	}
	issuer, err := encodeClassicAddressRaw(issuerRaw)
	if err != nil {
		return nil, err
	}

	value := decodeMantissaExponent(word)
	return IssuedAmount{Value: value, Currency: currency, Issuer: issuer}, nil
}

// decodeMantissaExponent reverses encodeMantissaExponent, reconstructing a
// canonical (trailing-zero-trimmed) decimal string.
func decodeMantissaExponent(word uint64) string {
	if word == notXRPBit {
		return "0"
	}

	sign := ""
	if word&positiveBit == 0 {
		sign = "-"
	}
	exponent := int((word>>54)&0xFF) - 97
	mantissa := word & ((uint64(1) << 54) - 1)

	digits := fmt.Sprintf("%d", mantissa)
	return sign + formatDecimal(digits, exponent)
}

// formatDecimal renders digits*10^exponent as a plain decimal string, with
// the fractional part trimmed of trailing zeros (and the decimal point
// dropped entirely if nothing remains after the point).
func formatDecimal(digits string, exponent int) string {
	if exponent >= 0 {
		return digits + strings.Repeat("0", exponent)
	}
	shift := -exponent
	var intPart, fracPart string
	if shift >= len(digits) {
		intPart = "0"
		fracPart = strings.Repeat("0", shift-len(digits)) + digits
	} else {
		intPart = digits[:len(digits)-shift]
		fracPart = digits[len(digits)-shift:]
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

func encodeCurrency(code string) ([]byte, error) {
	if code == "XRP" {
		return make([]byte, 20), nil
	}
	if len(code) == 40 {
		if raw, err := hex.DecodeString(code); err == nil && len(raw) == 20 {
			return raw, nil
		}
	}
	if !currencyCodeRe.MatchString(code) {
		return nil, xrplerr.ErrBadCurrency
	}
	out := make([]byte, 20)
	copy(out[12:15], code)
	return out, nil
}

func decodeCurrency(raw []byte) (string, error) {
	if len(raw) != 20 {
		return "", fmt.Errorf("%w: currency code must be 20 bytes, got %d", xrplerr.ErrHashLengthMismatch, len(raw))
	}
	allZero := true
	for _, b := range raw {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return "XRP", nil
	}
	if raw[0] == 0 {
		return string(raw[12:15]), nil
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

func putUint64(out []byte, v uint64) {
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> uint(56-8*i))
	}
}

func getUint64(raw []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(raw[i])
	}
	return v
}
