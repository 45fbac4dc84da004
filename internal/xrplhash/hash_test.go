package xrplhash

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func TestSha256Half(t *testing.T) {
	got := Sha256Half([]byte("abc"))
	require.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", hexUpper(got))
}

func TestDoubleSha256(t *testing.T) {
	got := DoubleSha256([]byte("abc"))
	require.Equal(t, "4F8B42C22DD3729B519BA6F68D2DA7CC5B2D606D05DAED5AD5128CC03E6C6358", hexUpper(got))
}

func TestSha512Half(t *testing.T) {
	got := Sha512Half([]byte("abc"))
	require.Len(t, got, 32)
	require.Equal(t, "DDAF35A193617ABACC417349AE20413112E6FA4E89A97EA20A9EEEE64B55D39A", hexUpper(got))
}

func TestHash160(t *testing.T) {
	got := Hash160([]byte("abc"))
	require.Len(t, got, 20)
	require.Equal(t, "BB1BE98C142444D7A56AA3981C3942A978E4DC33", hexUpper(got))
}
