package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xpring-eng/xrpl-go-core/internal/definitions"
)

func mustField(t *testing.T, name string) definitions.Field {
	t.Helper()
	table := definitions.MustLoad()
	f, ok := table.FieldByName(name)
	require.True(t, ok, "field %s not found", name)
	return f
}

func TestEncodeFieldIDSingleByte(t *testing.T) {
	f := mustField(t, "Sequence")
	require.Equal(t, 2, f.TypeCode)
	require.Equal(t, 4, f.Info.Nth)
	require.Equal(t, []byte{0x24}, encodeFieldID(f))
}

func TestEncodeFieldIDFieldCodeSpillsByte(t *testing.T) {
	f := mustField(t, "HighQualityIn")
	require.Equal(t, 2, f.TypeCode)
	require.Equal(t, 16, f.Info.Nth)
	require.Equal(t, []byte{0x20, 0x10}, encodeFieldID(f))
}

func TestEncodeFieldIDTypeCodeSpillsByte(t *testing.T) {
	f := mustField(t, "CloseResolution")
	require.Equal(t, 16, f.TypeCode)
	require.Equal(t, 1, f.Info.Nth)
	require.Equal(t, []byte{0x01, 0x10}, encodeFieldID(f))
}

func TestEncodeFieldIDBothSpillBytes(t *testing.T) {
	f := definitions.Field{Name: "Synthetic", TypeCode: 20, Info: definitions.FieldInfo{Nth: 30}}
	require.Equal(t, []byte{0x00, 0x14, 0x1E}, encodeFieldID(f))
}

func TestDecodeFieldIDRoundTrip(t *testing.T) {
	table := definitions.MustLoad()
	for _, name := range []string{"Sequence", "HighQualityIn", "CloseResolution", "Fee", "TakerGets"} {
		f := mustField(t, name)
		s := NewScanner(encodeFieldID(f))
		got, err := decodeFieldID(s, table)
		require.NoError(t, err)
		require.Equal(t, name, got.Name)
		require.Equal(t, 0, s.Len())
	}
}

func TestDecodeFieldIDUnknownField(t *testing.T) {
	table := definitions.MustLoad()
	s := NewScanner([]byte{0x00, 0x1F, 0x1F})
	_, err := decodeFieldID(s, table)
	require.Error(t, err)
}
