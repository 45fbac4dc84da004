package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

// serializeVector256 VL-prefixes a concatenation of 32-byte hashes. Left
// unimplemented in the Python reference this core is grounded on
// (serialization.py's CODECS table has a bare (None, None) entry for
// Vector256); implemented here in full since every list-of-hashes field
// (Hashes, Amendments, Indexes) needs it to round-trip.
func serializeVector256(hashes [][]byte) ([]byte, error) {
	payload := make([]byte, 0, 32*len(hashes))
	for i, h := range hashes {
		if len(h) != 32 {
			return nil, fmt.Errorf("%w: hash %d is %d bytes, want 32", xrplerr.ErrHashLengthMismatch, i, len(h))
		}
		payload = append(payload, h...)
	}
	return encodeVLPrefixed(payload)
}

func deserializeVector256(s *Scanner) ([][]byte, error) {
	payload, err := decodeVLPrefixed(s)
	if err != nil {
		return nil, err
	}
	if len(payload)%32 != 0 {
		return nil, fmt.Errorf("%w: vector256 payload length %d not a multiple of 32", xrplerr.ErrHashLengthMismatch, len(payload))
	}
	out := make([][]byte, 0, len(payload)/32)
	for i := 0; i < len(payload); i += 32 {
		out = append(out, payload[i:i+32])
	}
	return out, nil
}
