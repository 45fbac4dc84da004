package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector256RoundTrip(t *testing.T) {
	h1 := make([]byte, 32)
	h2 := make([]byte, 32)
	h1[0] = 0xAA
	h2[31] = 0xBB

	encoded, err := serializeVector256([][]byte{h1, h2})
	require.NoError(t, err)

	got, err := deserializeVector256(NewScanner(encoded))
	require.NoError(t, err)
	require.Equal(t, [][]byte{h1, h2}, got)
}

func TestVector256RejectsWrongHashLength(t *testing.T) {
	_, err := serializeVector256([][]byte{make([]byte, 31)})
	require.Error(t, err)
}

func TestVector256DeserializeRejectsNonMultipleOf32(t *testing.T) {
	payload, err := encodeVLPrefixed(make([]byte, 40))
	require.NoError(t, err)
	_, err = deserializeVector256(NewScanner(payload))
	require.Error(t, err)
}

func TestVector256Empty(t *testing.T) {
	encoded, err := serializeVector256(nil)
	require.NoError(t, err)

	got, err := deserializeVector256(NewScanner(encoded))
	require.NoError(t, err)
	require.Empty(t, got)
}
