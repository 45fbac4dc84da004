package keypair

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xpring-eng/xrpl-go-core/internal/addresscodec"
	"github.com/xpring-eng/xrpl-go-core/internal/config"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
)

func TestDeriveSecp256k1KeyPairFromSeed(t *testing.T) {
	entropy, algo, err := addresscodec.DecodeSeed("sp5fghtJtpUorTwvof1NpDXAzNwf5")
	require.NoError(t, err)
	require.Equal(t, addresscodec.AlgorithmSecp256k1, algo)

	priv, pub, err := DeriveSecp256k1KeyPair(entropy, false)
	require.NoError(t, err)
	require.Equal(t, "D78B9735C3F26501C7337B8A5727FD53A6EFDBC6AA55984F098488561F985E23", hexUpper(priv))
	require.Equal(t, "030D58EB48B4420B1F7B9DF55087E0E29FEF0E8468F9A6825B01CA2C361042D435", hexUpper(pub))

	accountID := AccountID(pub)
	addr, err := addresscodec.EncodeAddress(accountID)
	require.NoError(t, err)
	require.Equal(t, "rU6K7V3Po4snVhBBaU29sesqs2qTQJWDw1", addr)
}

func TestSecp256k1RootKeyPairDiffersFromAccountKeyPair(t *testing.T) {
	entropy, _, err := addresscodec.DecodeSeed("sp5fghtJtpUorTwvof1NpDXAzNwf5")
	require.NoError(t, err)

	rootPriv, rootPub, err := DeriveSecp256k1KeyPair(entropy, true)
	require.NoError(t, err)
	accountPriv, accountPub, err := DeriveSecp256k1KeyPair(entropy, false)
	require.NoError(t, err)

	require.NotEqual(t, hexUpper(rootPriv), hexUpper(accountPriv))
	require.NotEqual(t, hexUpper(rootPub), hexUpper(accountPub))
}

func TestDerivePublicKeyFromRootPublicKey(t *testing.T) {
	entropy, _, err := addresscodec.DecodeSeed("sp5fghtJtpUorTwvof1NpDXAzNwf5")
	require.NoError(t, err)

	rootPriv, rootPub, err := DeriveSecp256k1KeyPair(entropy, true)
	require.NoError(t, err)
	require.NotEmpty(t, rootPriv)

	_, wantPub, err := DeriveSecp256k1KeyPair(entropy, false)
	require.NoError(t, err)

	gotPub, err := DerivePublicKeyFromRootPublicKey(rootPub)
	require.NoError(t, err)
	require.Equal(t, hexUpper(wantPub), hexUpper(gotPub))
}

func TestSecp256k1SignVerifyRoundTrip(t *testing.T) {
	entropy, _, err := addresscodec.DecodeSeed("sp5fghtJtpUorTwvof1NpDXAzNwf5")
	require.NoError(t, err)
	priv, pub, err := DeriveSecp256k1KeyPair(entropy, false)
	require.NoError(t, err)

	digest := xrplhash.Sha512Half([]byte("the quick brown fox"))
	sig, err := SignSecp256k1(digest, priv)
	require.NoError(t, err)

	ok, err := VerifySecp256k1(digest, sig, pub)
	require.NoError(t, err)
	require.True(t, ok)

	canonical, err := IsCanonicalLowS(sig)
	require.NoError(t, err)
	require.True(t, canonical, "SignSecp256k1 must always produce a canonical low-S signature")
}

func TestSecp256k1VerifyAcceptsNonCanonicalSignature(t *testing.T) {
	entropy, _, err := addresscodec.DecodeSeed("sp5fghtJtpUorTwvof1NpDXAzNwf5")
	require.NoError(t, err)
	priv, pub, err := DeriveSecp256k1KeyPair(entropy, false)
	require.NoError(t, err)

	digest := xrplhash.Sha512Half([]byte("the quick brown fox"))

	canonicalSig, err := SignSecp256k1(digest, priv)
	require.NoError(t, err)
	isCanonical, err := IsCanonicalLowS(canonicalSig)
	require.NoError(t, err)
	require.True(t, isCanonical)

	nonCanonicalSig, err := SignSecp256k1WithConfig(digest, priv, config.Config{NormalizeLowS: false})
	require.NoError(t, err)
	isCanonical, err = IsCanonicalLowS(nonCanonicalSig)
	require.NoError(t, err)
	require.False(t, isCanonical)

	ok, err := VerifySecp256k1(digest, nonCanonicalSig, pub)
	require.NoError(t, err)
	require.True(t, ok, "verification must accept non-canonical signatures")
}

func TestSecp256k1DeriveKeyPairRejectsBadSeedLength(t *testing.T) {
	_, _, err := DeriveSecp256k1KeyPair([]byte{1, 2, 3}, false)
	require.Error(t, err)
}
