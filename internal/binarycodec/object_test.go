package binarycodec

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const offerCreateBlob = "120007220008000024001ABED82A2380BF2C2019001ABED764D55920AC9391400000000000000000000000000055534400000000000A20B3C85F482532A9578DBB3950B85CA06594D165400000037E11D60068400000000000000A8114DD76483FACDEE26E60D8A586BB58D09F27045C46"

func offerCreateFields() Fields {
	return Fields{
		"TransactionType": "OfferCreate",
		"Flags":           uint32(524288),
		"Sequence":        uint32(1752792),
		"Expiration":      uint32(595640108),
		"OfferSequence":   uint32(1752791),
		"TakerPays": IssuedAmount{
			Value:    "7072.8",
			Currency: "USD",
			Issuer:   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
		},
		"TakerGets": XRPAmount(15_000_000_000),
		"Fee":       XRPAmount(10),
		"Account":   "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	}
}

func TestEncodeOfferCreateMatchesCanonicalBytes(t *testing.T) {
	got, err := Encode(offerCreateFields(), false, false)
	require.NoError(t, err)
	require.Equal(t, offerCreateBlob, strings.ToUpper(hex.EncodeToString(got)))
}

func TestDecodeOfferCreateMatchesFields(t *testing.T) {
	blob, err := hex.DecodeString(offerCreateBlob)
	require.NoError(t, err)

	got, err := Decode(blob)
	require.NoError(t, err)

	require.Equal(t, "OfferCreate", got["TransactionType"])
	require.Equal(t, uint32(524288), got["Flags"])
	require.Equal(t, uint32(1752792), got["Sequence"])
	require.Equal(t, uint32(595640108), got["Expiration"])
	require.Equal(t, uint32(1752791), got["OfferSequence"])
	require.Equal(t, XRPAmount(15_000_000_000), got["TakerGets"])
	require.Equal(t, XRPAmount(10), got["Fee"])
	require.Equal(t, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys", got["Account"])
	require.Equal(t, IssuedAmount{
		Value:    "7072.8",
		Currency: "USD",
		Issuer:   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
	}, got["TakerPays"])
}

func TestEncodeDecodeOfferCreateRoundTrip(t *testing.T) {
	fields := offerCreateFields()
	encoded, err := Encode(fields, false, false)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	reencoded, err := Encode(decoded, false, false)
	require.NoError(t, err)
	require.Equal(t, encoded, reencoded)
}

func TestEncodeForSigningDropsNonSigningFields(t *testing.T) {
	fields := offerCreateFields()
	fields["SigningPubKey"] = "ED01FA53FA5A7E77798F882ECE20B1ABC00BB358A9E55A202D0D0676BD0CE37A63"
	fields["TxnSignature"] = "AABBCC"

	got, err := Encode(fields, true, false)
	require.NoError(t, err)

	decoded, err := Decode(got)
	require.NoError(t, err)
	_, hasSig := decoded["TxnSignature"]
	require.False(t, hasSig, "TxnSignature must be dropped from the signing blob")
	_, hasPubKey := decoded["SigningPubKey"]
	require.True(t, hasPubKey, "SigningPubKey is itself a signing field")
}

func TestEncodeRejectsUnknownField(t *testing.T) {
	_, err := Encode(Fields{"NotARealField": 1}, false, false)
	require.Error(t, err)
}

func TestEncodeDecodeRoundTripWithNestedMemos(t *testing.T) {
	fields := offerCreateFields()
	fields["Memos"] = []Fields{
		{
			"Memo": Fields{
				"MemoType": "6465736372697074696F6E",
				"MemoData": "687474703A2F2F6578616D706C652E636F6D",
			},
		},
	}

	encoded, err := Encode(fields, false, false)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "OfferCreate", decoded["TransactionType"])
	require.Equal(t, fields["Memos"], decoded["Memos"])

	reencoded, err := Encode(decoded, false, false)
	require.NoError(t, err)
	require.Equal(t, encoded, reencoded)
}

func TestFieldOrderMatchesCanonicalOrdering(t *testing.T) {
	got, err := FieldOrder([]string{"TakerGets", "TakerPays", "Account", "Fee", "TransactionType"})
	require.NoError(t, err)
	require.Equal(t, []string{"TransactionType", "TakerPays", "TakerGets", "Fee", "Account"}, got)
}
