package wallet

import (
	"fmt"
	"strings"

	"github.com/xpring-eng/xrpl-go-core/internal/binarycodec"
	"github.com/xpring-eng/xrpl-go-core/internal/hashprefix"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplhash"
)

// SerializeTransaction encodes a transaction or ledger object into XRPL's
// canonical binary wire format. signing restricts the output to fields
// marked isSigningField in the definitions table (the blob that gets
// hashed and signed); marker appends a trailing ObjectEndMarker, for
// callers embedding the result as a nested field rather than submitting it
// as a standalone blob.
func SerializeTransaction(tx map[string]any, signing, marker bool) ([]byte, error) {
	return binarycodec.Encode(binarycodec.Fields(tx), signing, marker)
}

// DeserializeTransaction decodes a binary transaction or ledger object blob
// back into its field map.
func DeserializeTransaction(blob []byte) (map[string]any, error) {
	fields, err := binarycodec.Decode(blob)
	if err != nil {
		return nil, err
	}
	return map[string]any(fields), nil
}

// SignTransaction runs the full XRPL transaction-signing pipeline (spec
// section 4.11): it injects SigningPubKey, serializes the signing-only
// field subset prefixed with the STX\0 domain separator, signs that under
// w's algorithm, injects the resulting TxnSignature, re-serializes the full
// transaction, and injects its TXN\0-prefixed hash. The input map is not
// mutated; an enriched copy is returned.
func SignTransaction(tx map[string]any, w *Wallet) (map[string]any, error) {
	enriched := make(map[string]any, len(tx)+3)
	for k, v := range tx {
		enriched[k] = v
	}
	delete(enriched, "TxnSignature")
	delete(enriched, "hash")
	enriched["SigningPubKey"] = w.PublicKeyHex()

	signingBlob, err := SerializeTransaction(enriched, true, false)
	if err != nil {
		return nil, fmt.Errorf("serialize for signing: %w", err)
	}

	sigHex, err := w.Sign(hashprefix.Prepend(hashprefix.TxSign, signingBlob))
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	enriched["TxnSignature"] = strings.ToUpper(sigHex)

	fullBlob, err := SerializeTransaction(enriched, false, false)
	if err != nil {
		return nil, fmt.Errorf("serialize signed transaction: %w", err)
	}

	digest := xrplhash.Sha512Half(hashprefix.Prepend(hashprefix.TransactionID, fullBlob))
	enriched["hash"] = fmt.Sprintf("%X", digest)

	return enriched, nil
}
