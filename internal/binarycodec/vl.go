package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

const (
	maxSingleByteLength = 192
	maxDoubleByteLength = 12480
	maxTripleByteLength = 918744
)

// encodeVL returns the 1-3 byte variable-length prefix for a payload of the
// given length.
func encodeVL(length int) ([]byte, error) {
	switch {
	case length <= maxSingleByteLength:
		return []byte{byte(length)}, nil
	case length <= maxDoubleByteLength:
		length -= maxSingleByteLength + 1
		return []byte{
			byte(193 + (length >> 8)),
			byte(length & 0xFF),
		}, nil
	case length <= maxTripleByteLength:
		length -= maxDoubleByteLength + 1
		return []byte{
			byte(241 + (length >> 16)),
			byte((length >> 8) & 0xFF),
			byte(length & 0xFF),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", xrplerr.ErrBlobTooLong, length, maxTripleByteLength)
	}
}

// decodeVL reads a variable-length prefix from s and returns the decoded
// length.
func decodeVL(s *Scanner) (int, error) {
	b1, err := s.Take1()
	if err != nil {
		return 0, err
	}

	switch {
	case b1 <= 192:
		return int(b1), nil
	case b1 <= 240:
		b2, err := s.Take1()
		if err != nil {
			return 0, err
		}
		return maxSingleByteLength + 1 + (int(b1)-193)*256 + int(b2), nil
	case b1 <= 254:
		b2, err := s.Take1()
		if err != nil {
			return 0, err
		}
		b3, err := s.Take1()
		if err != nil {
			return 0, err
		}
		return maxDoubleByteLength + 1 + (int(b1)-241)*65536 + int(b2)*256 + int(b3), nil
	default:
		return 0, fmt.Errorf("%w: invalid VL length indicator byte 0x%02x", xrplerr.ErrBlobTooLong, b1)
	}
}

// encodeVLPrefixed returns the VL length prefix followed by payload.
func encodeVLPrefixed(payload []byte) ([]byte, error) {
	prefix, err := encodeVL(len(payload))
	if err != nil {
		return nil, err
	}
	return append(prefix, payload...), nil
}

// decodeVLPrefixed reads a VL length prefix from s, then that many bytes.
func decodeVLPrefixed(s *Scanner) ([]byte, error) {
	n, err := decodeVL(s)
	if err != nil {
		return nil, err
	}
	return s.Take(n)
}
