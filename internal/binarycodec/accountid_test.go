package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeAccountIDVLPrefixed(t *testing.T) {
	got, err := serializeAccountID("rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)
	require.Len(t, got, 21)
	require.Equal(t, byte(20), got[0])
}

func TestDeserializeAccountIDRoundTrip(t *testing.T) {
	addr := "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	encoded, err := serializeAccountID(addr)
	require.NoError(t, err)

	got, err := deserializeAccountID(NewScanner(encoded))
	require.NoError(t, err)
	require.Equal(t, addr, got)
}

func TestSerializeAccountIDRejectsBadAddress(t *testing.T) {
	_, err := serializeAccountID("not-an-address")
	require.Error(t, err)
}
