package binarycodec

import (
	"encoding/hex"
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

func serializeUInt8(v uint8) []byte {
	return []byte{v}
}

func deserializeUInt8(s *Scanner) (uint8, error) {
	return s.Take1()
}

func serializeUInt16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func deserializeUInt16(s *Scanner) (uint16, error) {
	b, err := s.Take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func serializeUInt32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func deserializeUInt32(s *Scanner) (uint32, error) {
	b, err := s.Take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func serializeUInt64(v uint64) []byte {
	out := make([]byte, 8)
	putUint64(out, v)
	return out
}

func deserializeUInt64(s *Scanner) (uint64, error) {
	b, err := s.Take(8)
	if err != nil {
		return 0, err
	}
	return getUint64(b), nil
}

func serializeHashN(v []byte, n int) ([]byte, error) {
	if len(v) != n {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", xrplerr.ErrHashLengthMismatch, n, len(v))
	}
	return v, nil
}

func deserializeHashN(s *Scanner, n int) ([]byte, error) {
	return s.Take(n)
}

func serializeBlob(v []byte) ([]byte, error) {
	return encodeVLPrefixed(v)
}

func deserializeBlob(s *Scanner) ([]byte, error) {
	return decodeVLPrefixed(s)
}

// hexString is a convenience for fields that are presented as uppercase hex
// strings at the package boundary (hashes, blobs) rather than raw bytes.
func hexString(b []byte) string {
	return fmt.Sprintf("%X", b)
}

func hexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex: %v", xrplerr.ErrUnserializableField, err)
	}
	return b, nil
}
