package keypair

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xpring-eng/xrpl-go-core/internal/addresscodec"
)

func TestDeriveEd25519KeyPairFromSeed(t *testing.T) {
	entropy, algo, err := addresscodec.DecodeSeed("sEdSKaCy2JT7JaM7v95H9SxkhP9wS2r")
	require.NoError(t, err)
	require.Equal(t, addresscodec.AlgorithmEd25519, algo)

	priv, pub, err := DeriveEd25519KeyPair(entropy)
	require.NoError(t, err)
	require.Equal(t, "B4C4E046826BD26190D09715FC31F4E6A728204EADD112905B08B14B7F15C4F3", hexUpper(priv))
	require.Equal(t, "ED01FA53FA5A7E77798F882ECE20B1ABC00BB358A9E55A202D0D0676BD0CE37A63", hexUpper(pub))

	accountID := AccountID(pub)
	addr, err := addresscodec.EncodeAddress(accountID)
	require.NoError(t, err)
	require.Equal(t, "rLUEXYuLiQptky37CqLcm9USQpPiz5rkpD", addr)
}

func TestEd25519SignVerifyRoundTrip(t *testing.T) {
	entropy, _, err := addresscodec.DecodeSeed("sEdSKaCy2JT7JaM7v95H9SxkhP9wS2r")
	require.NoError(t, err)
	priv, pub, err := DeriveEd25519KeyPair(entropy)
	require.NoError(t, err)

	message := []byte("the quick brown fox")
	sig, err := SignEd25519(message, priv)
	require.NoError(t, err)

	ok, err := VerifyEd25519(message, sig, pub)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyEd25519([]byte("tampered"), sig, pub)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEd25519RejectsWrongPrivateKeyLength(t *testing.T) {
	_, err := SignEd25519([]byte("msg"), []byte{1, 2, 3})
	require.Error(t, err)
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
