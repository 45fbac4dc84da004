// Package hashprefix holds rippled's domain-separation prefixes for
// SHA-512/half digests, and the small amount of pure data-shaping built on
// top of them (prepending a prefix before hashing, and building a single
// signer's multi-signing payload). Grounded on LeJamon/goXRPLd's
// internal/crypto/multisign.go, which defines the same HashPrefix enum and
// PrependHashPrefix/BuildMultiSigningData helpers; only the constants and
// the prefix-prepend/multi-sign-data-shaping helpers are ported here, not
// goXRPLd's multi-signature submission/aggregation logic, which is out of
// scope.
package hashprefix

import "encoding/binary"

// HashPrefix is a 4-byte value prepended to a blob before it is hashed with
// SHA-512/half, so that digests computed for different purposes (a
// transaction's canonical ID vs. its signing digest) can never collide even
// when the underlying bytes happen to match.
type HashPrefix uint32

const (
	// TransactionID prefixes a fully signed transaction blob before hashing
	// to produce the transaction's identifying hash.
	TransactionID HashPrefix = 0x54584E00 // "TXN\0"
	// TxSign prefixes an unsigned transaction blob (with SigningPubKey
	// populated but no TxnSignature) before hashing to produce the digest
	// that gets signed.
	TxSign HashPrefix = 0x53545800 // "STX\0"
	// TxMultiSign prefixes an unsigned transaction blob plus a signer's
	// account ID before hashing to produce that signer's multi-signing
	// digest.
	TxMultiSign HashPrefix = 0x534D5400 // "SMT\0"
	// LedgerMaster prefixes a ledger header before hashing.
	LedgerMaster HashPrefix = 0x4C575200 // "LWR\0"
	// TxNode prefixes a transaction plus metadata leaf node in a
	// transaction tree.
	TxNode HashPrefix = 0x534E4400 // "SND\0"
	// LeafNode prefixes a ledger state tree leaf node.
	LeafNode HashPrefix = 0x4D4C4E00 // "MLN\0"
	// InnerNode prefixes a ledger state tree inner node.
	InnerNode HashPrefix = 0x4D494E00 // "MIN\0"
	// Validation prefixes a validation message before hashing/signing.
	Validation HashPrefix = 0x56414C00 // "VAL\0"
	// Proposal prefixes a consensus proposal before hashing/signing.
	Proposal HashPrefix = 0x50525000 // "PRP\0"
	// Manifest prefixes a node manifest before hashing/signing.
	Manifest HashPrefix = 0x4D414E00 // "MAN\0"
	// PaymentChannelClaim prefixes a payment channel claim before signing.
	PaymentChannelClaim HashPrefix = 0x434C4D00 // "CLM\0"
	// Credential prefixes a credential object before hashing.
	Credential HashPrefix = 0x43524400 // "CRD\0"
	// Batch prefixes a batch transaction's inner transaction set before
	// hashing.
	Batch HashPrefix = 0x42434800 // "BCH\0"
)

// Bytes returns the prefix's 4 big-endian bytes.
func (p HashPrefix) Bytes() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(p))
	return buf
}

// Prepend returns prefix.Bytes() followed by data, ready to be hashed.
func Prepend(prefix HashPrefix, data []byte) []byte {
	out := make([]byte, 0, 4+len(data))
	out = append(out, prefix.Bytes()...)
	out = append(out, data...)
	return out
}

// BuildMultiSigningData assembles the payload a single signer hashes and
// signs when contributing to a multi-signed transaction: the SMT\0 prefix,
// the unsigned transaction blob (SigningPubKey cleared, no TxnSignature,
// no Signers field), and that signer's 20-byte AccountID.
func BuildMultiSigningData(unsignedTxBlob, signerAccountID []byte) []byte {
	out := Prepend(TxMultiSign, unsignedTxBlob)
	return append(out, signerAccountID...)
}

// FinishMultiSigningData appends signerAccountID to a payload that already
// holds the SMT\0 prefix and the transaction blob, for callers that build
// the payload incrementally (prefix first, transaction blob streamed,
// account ID appended last). FinishMultiSigningData(Prepend(TxMultiSign,
// blob), id) equals BuildMultiSigningData(blob, id).
func FinishMultiSigningData(prefixed []byte, signerAccountID []byte) []byte {
	return append(prefixed, signerAccountID...)
}
