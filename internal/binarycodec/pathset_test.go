package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializePathSetRejectsEmpty(t *testing.T) {
	_, err := serializePathSet(PathSet{})
	require.Error(t, err)
}

func TestSerializePathSetRejectsEmptyPath(t *testing.T) {
	_, err := serializePathSet(PathSet{Path{}})
	require.Error(t, err)
}

func TestPathSetRoundTripSingleHop(t *testing.T) {
	ps := PathSet{
		Path{
			{Account: "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"},
		},
	}
	encoded, err := serializePathSet(ps)
	require.NoError(t, err)

	got, err := deserializePathSet(NewScanner(encoded))
	require.NoError(t, err)
	require.Equal(t, ps, got)
}

func TestPathSetRoundTripMultipleAlternatives(t *testing.T) {
	ps := PathSet{
		Path{
			{Currency: "USD", Issuer: "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"},
		},
		Path{
			{Account: "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"},
			{Currency: "XRP"},
		},
	}
	encoded, err := serializePathSet(ps)
	require.NoError(t, err)

	got, err := deserializePathSet(NewScanner(encoded))
	require.NoError(t, err)
	require.Equal(t, ps, got)
}

func TestPathSetEndsWithSentinelByte(t *testing.T) {
	ps := PathSet{Path{{Account: "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"}}}
	encoded, err := serializePathSet(ps)
	require.NoError(t, err)
	require.Equal(t, byte(pathSetEnd), encoded[len(encoded)-1])
}
