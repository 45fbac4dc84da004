package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeVLSingleByteTier(t *testing.T) {
	got, err := encodeVL(0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, got)

	got, err = encodeVL(192)
	require.NoError(t, err)
	require.Equal(t, []byte{0xC0}, got)
}

func TestEncodeVLDoubleByteTier(t *testing.T) {
	got, err := encodeVL(193)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, byte(193), got[0])

	got, err = encodeVL(12480)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestEncodeVLTripleByteTier(t *testing.T) {
	got, err := encodeVL(12481)
	require.NoError(t, err)
	require.Len(t, got, 3)

	got, err = encodeVL(918744)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestEncodeVLRejectsTooLong(t *testing.T) {
	_, err := encodeVL(918745)
	require.Error(t, err)
}

func TestVLRoundTripAcrossTiers(t *testing.T) {
	for _, n := range []int{0, 1, 192, 193, 1000, 12480, 12481, 50000, 918744} {
		prefix, err := encodeVL(n)
		require.NoError(t, err)

		s := NewScanner(prefix)
		got, err := decodeVL(s)
		require.NoError(t, err)
		require.Equal(t, n, got)
		require.Equal(t, 0, s.Len())
	}
}

func TestEncodeDecodeVLPrefixedPayload(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")
	encoded, err := encodeVLPrefixed(payload)
	require.NoError(t, err)

	got, err := decodeVLPrefixed(NewScanner(encoded))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
