// Package xrplerr holds the sentinel errors shared across the codec and
// key-derivation packages. Callers should match on these with errors.Is,
// never on message text.
package xrplerr

import "errors"

var (
	// ErrChecksumMismatch is returned when a base58check payload's trailing
	// 4 bytes don't match the double-SHA256 checksum of the rest.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrBadSeedLength is returned when decoded seed entropy isn't 16 bytes.
	ErrBadSeedLength = errors.New("bad seed length")

	// ErrUnknownAlgorithm is returned for a seed/key prefix that doesn't map
	// to ed25519 or secp256k1.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnknownField is returned when a field name or field-id has no entry
	// in the definitions table.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnserializableField is returned when a field's declared type has no
	// registered codec, or its Go value doesn't match the declared type.
	ErrUnserializableField = errors.New("unserializable field")

	// ErrAmountOverflow is returned when an issued amount's mantissa can't
	// be represented in 16 significant digits without loss, when its
	// exponent exceeds 80, or when an XRP amount exceeds 10^17 drops.
	ErrAmountOverflow = errors.New("amount overflow")

	// ErrBadCurrency is returned for a currency code that is neither "XRP"
	// nor a valid 3-letter ISO code / 160-bit hex code.
	ErrBadCurrency = errors.New("bad currency code")

	// ErrBlobTooLong is returned when a variable-length field exceeds the
	// maximum representable VL-prefixed length (918744 bytes).
	ErrBlobTooLong = errors.New("blob too long")

	// ErrEmptyPath is returned for a Path with zero steps.
	ErrEmptyPath = errors.New("empty path")

	// ErrEmptyPathSet is returned for a PathSet with zero paths.
	ErrEmptyPathSet = errors.New("empty path set")

	// ErrUnexpectedEndOfStream is returned when the scanner is asked to take
	// more bytes than remain in the buffer.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")

	// ErrHashLengthMismatch is returned when a fixed-width hash field
	// (Hash128/160/256) is given the wrong number of bytes.
	ErrHashLengthMismatch = errors.New("hash length mismatch")

	// ErrSignatureVerification names a signature that fails to verify
	// against the given public key and message. The Verify functions in
	// keypair and wallet report that case as (false, nil) and do not return
	// this error.
	ErrSignatureVerification = errors.New("signature verification failed")
)
