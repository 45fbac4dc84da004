package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/addresscodec"
)

// serializeAccountID encodes a classic "r..." address as its VL-prefixed
// 20-byte AccountID. AccountID fields are always VL-encoded on the wire
// even though their length never varies, for historical compatibility with
// rippled's original serializer.
func serializeAccountID(address string) ([]byte, error) {
	raw, err := decodeClassicAddressRaw(address)
	if err != nil {
		return nil, err
	}
	return encodeVLPrefixed(raw)
}

// deserializeAccountID reads a VL-prefixed AccountID and renders it as a
// classic address.
func deserializeAccountID(s *Scanner) (string, error) {
	raw, err := decodeVLPrefixed(s)
	if err != nil {
		return "", err
	}
	return encodeClassicAddressRaw(raw)
}

func decodeClassicAddressRaw(address string) ([]byte, error) {
	raw, err := addresscodec.DecodeAddress(address)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	return raw, nil
}

func encodeClassicAddressRaw(raw []byte) (string, error) {
	address, err := addresscodec.EncodeAddress(raw)
	if err != nil {
		return "", fmt.Errorf("encode account id: %w", err)
	}
	return address, nil
}
