package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/definitions"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

// Fields is the Go-side representation of a transaction or ledger object:
// field name to value, where value's concrete type depends on the field's
// declared wire type (see encodeFieldValue/decodeFieldValue).
type Fields map[string]any

// Encode serializes fields into XRPL's canonical binary format using the
// process-wide definitions table. When signing is true, only fields marked
// isSigningField in the manifest are included (e.g. TxnSignature is
// dropped), matching the blob that gets hashed and signed rather than the
// blob that gets submitted. marker, when true, appends an ObjectEndMarker
// to the top-level output, for callers embedding the result as a nested
// object field rather than a standalone transaction/ledger-object blob;
// the normal top-level transaction pipeline always passes marker=false.
func Encode(fields Fields, signing, marker bool) ([]byte, error) {
	table, err := definitions.Load()
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	out, err := encodeFields(fields, table, signing)
	if err != nil {
		return nil, err
	}
	if marker {
		out = append(out, objectEndMarker)
	}
	return out, nil
}

// Decode deserializes a top-level transaction or ledger object blob.
func Decode(blob []byte) (Fields, error) {
	table, err := definitions.Load()
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	s := NewScanner(blob)
	return decodeFields(s, table)
}

func encodeFields(fields Fields, table *definitions.Table, forSigning bool) ([]byte, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := table.FieldByName(name); !ok {
			return nil, fmt.Errorf("%w: %s", xrplerr.ErrUnknownField, name)
		}
		names = append(names, name)
	}
	names = table.SortedFieldNames(names)

	var out []byte
	for _, name := range names {
		f, _ := table.FieldByName(name)
		if !f.Info.IsSerialized {
			continue
		}
		if forSigning && !f.Info.IsSigningField {
			continue
		}

		valueBytes, err := encodeFieldValue(f, fields[name], table, forSigning)
		if err != nil {
			return nil, fmt.Errorf("field %s (%s): %w", name, f.Info.Type, err)
		}

		out = append(out, encodeFieldID(f)...)
		out = append(out, valueBytes...)
	}
	return out, nil
}

// decodeFields reads fields until the buffer is exhausted or the next byte
// is an ObjectEndMarker. It never consumes that marker itself: a top-level
// Decode call simply never encounters one, while a nested STObject decode
// (decodeFieldValue's "STObject" case) leaves it for its own expectMarker
// call to consume, mirroring decodeSTArray's peek-before-decode guard
// against ArrayEndMarker.
func decodeFields(s *Scanner, table *definitions.Table) (Fields, error) {
	out := make(Fields)
	for s.Len() > 0 {
		b, err := s.Peek1()
		if err != nil {
			return nil, err
		}
		if b == objectEndMarker {
			return out, nil
		}
		f, err := decodeFieldID(s, table)
		if err != nil {
			return nil, err
		}
		value, err := decodeFieldValue(f, s, table)
		if err != nil {
			return nil, fmt.Errorf("field %s (%s): %w", f.Name, f.Info.Type, err)
		}
		out[f.Name] = value
	}
	return out, nil
}

// encodeFieldValue dispatches to the codec for f's declared type, coercing
// v from its loosely-typed Go representation.
func encodeFieldValue(f definitions.Field, v any, table *definitions.Table, forSigning bool) ([]byte, error) {
	switch f.Name {
	case "TransactionType":
		code, err := toTypeNameCode(v, table.TransactionTypeCode)
		if err != nil {
			return nil, err
		}
		return serializeUInt16(code), nil
	case "LedgerEntryType":
		code, err := toTypeNameCode(v, table.LedgerEntryTypeCode)
		if err != nil {
			return nil, err
		}
		return serializeUInt16(code), nil
	}

	switch f.Info.Type {
	case "UInt8":
		n, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		return serializeUInt8(uint8(n)), nil
	case "UInt16":
		n, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		return serializeUInt16(uint16(n)), nil
	case "UInt32":
		n, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		return serializeUInt32(uint32(n)), nil
	case "UInt64":
		n, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		return serializeUInt64(n), nil
	case "Hash128":
		b, err := toFixedHashBytes(v, 16)
		if err != nil {
			return nil, err
		}
		return serializeHashN(b, 16)
	case "Hash160":
		b, err := toFixedHashBytes(v, 20)
		if err != nil {
			return nil, err
		}
		return serializeHashN(b, 20)
	case "Hash256":
		b, err := toFixedHashBytes(v, 32)
		if err != nil {
			return nil, err
		}
		return serializeHashN(b, 32)
	case "Blob":
		b, err := toBlobBytes(v)
		if err != nil {
			return nil, err
		}
		return serializeBlob(b)
	case "AccountID":
		addr, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: want address string, got %T", xrplerr.ErrUnserializableField, v)
		}
		return serializeAccountID(addr)
	case "Amount":
		amt, err := toAmount(v)
		if err != nil {
			return nil, err
		}
		return serializeAmount(amt)
	case "PathSet":
		ps, err := toPathSet(v)
		if err != nil {
			return nil, err
		}
		return serializePathSet(ps)
	case "Vector256":
		hashes, err := toHashList(v)
		if err != nil {
			return nil, err
		}
		return serializeVector256(hashes)
	case "STObject":
		inner, err := toFields(v)
		if err != nil {
			return nil, err
		}
		body, err := encodeFields(inner, table, forSigning)
		if err != nil {
			return nil, err
		}
		return append(body, objectEndMarker), nil
	case "STArray":
		return encodeSTArray(v, table, forSigning)
	default:
		return nil, fmt.Errorf("%w: no codec for type %s", xrplerr.ErrUnserializableField, f.Info.Type)
	}
}

func decodeFieldValue(f definitions.Field, s *Scanner, table *definitions.Table) (any, error) {
	switch f.Name {
	case "TransactionType":
		code, err := deserializeUInt16(s)
		if err != nil {
			return nil, err
		}
		name, ok := table.TransactionTypeName(code)
		if !ok {
			return nil, fmt.Errorf("%w: unknown transaction type code %d", xrplerr.ErrUnserializableField, code)
		}
		return name, nil
	case "LedgerEntryType":
		code, err := deserializeUInt16(s)
		if err != nil {
			return nil, err
		}
		name, ok := table.LedgerEntryTypeName(code)
		if !ok {
			return nil, fmt.Errorf("%w: unknown ledger entry type code %d", xrplerr.ErrUnserializableField, code)
		}
		return name, nil
	}

	switch f.Info.Type {
	case "UInt8":
		return deserializeUInt8(s)
	case "UInt16":
		return deserializeUInt16(s)
	case "UInt32":
		return deserializeUInt32(s)
	case "UInt64":
		return deserializeUInt64(s)
	case "Hash128":
		b, err := deserializeHashN(s, 16)
		if err != nil {
			return nil, err
		}
		return hexString(b), nil
	case "Hash160":
		b, err := deserializeHashN(s, 20)
		if err != nil {
			return nil, err
		}
		return hexString(b), nil
	case "Hash256":
		b, err := deserializeHashN(s, 32)
		if err != nil {
			return nil, err
		}
		return hexString(b), nil
	case "Blob":
		b, err := deserializeBlob(s)
		if err != nil {
			return nil, err
		}
		return hexString(b), nil
	case "AccountID":
		return deserializeAccountID(s)
	case "Amount":
		return deserializeAmount(s)
	case "PathSet":
		return deserializePathSet(s)
	case "Vector256":
		raw, err := deserializeVector256(s)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(raw))
		for i, h := range raw {
			out[i] = hexString(h)
		}
		return out, nil
	case "STObject":
		inner, err := decodeFields(s, table)
		if err != nil {
			return nil, err
		}
		if err := expectMarker(s, objectEndMarker); err != nil {
			return nil, err
		}
		return inner, nil
	case "STArray":
		return decodeSTArray(s, table)
	default:
		return nil, fmt.Errorf("%w: no codec for type %s", xrplerr.ErrUnserializableField, f.Info.Type)
	}
}

// encodeSTArray encodes an STArray field's value: a slice of single-key
// maps, each key naming the wrapped object field (e.g. a Memos entry is
// {"Memo": {...}}).
func encodeSTArray(v any, table *definitions.Table, forSigning bool) ([]byte, error) {
	entries, err := toFieldsSlice(v)
	if err != nil {
		return nil, err
	}

	var out []byte
	for i, entry := range entries {
		if len(entry) != 1 {
			return nil, fmt.Errorf("%w: array entry %d must wrap exactly one object field, got %d", xrplerr.ErrUnserializableField, i, len(entry))
		}
		for wrapperName, innerVal := range entry {
			wf, ok := table.FieldByName(wrapperName)
			if !ok {
				return nil, fmt.Errorf("%w: %s", xrplerr.ErrUnknownField, wrapperName)
			}
			inner, err := toFields(innerVal)
			if err != nil {
				return nil, err
			}
			body, err := encodeFields(inner, table, forSigning)
			if err != nil {
				return nil, err
			}
			out = append(out, encodeFieldID(wf)...)
			out = append(out, body...)
			out = append(out, objectEndMarker)
		}
	}
	out = append(out, arrayEndMarker)
	return out, nil
}

func decodeSTArray(s *Scanner, table *definitions.Table) ([]Fields, error) {
	var out []Fields
	for {
		b, err := s.Peek1()
		if err != nil {
			return nil, err
		}
		if b == arrayEndMarker {
			s.Take1()
			return out, nil
		}
		wf, err := decodeFieldID(s, table)
		if err != nil {
			return nil, err
		}
		inner, err := decodeFields(s, table)
		if err != nil {
			return nil, err
		}
		if err := expectMarker(s, objectEndMarker); err != nil {
			return nil, err
		}
		out = append(out, Fields{wf.Name: inner})
	}
}

func expectMarker(s *Scanner, want byte) error {
	got, err := s.Take1()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected marker 0x%02x, got 0x%02x", xrplerr.ErrUnserializableField, want, got)
	}
	return nil
}

// FieldOrder returns names sorted into the canonical on-the-wire field
// order (by type code, then by field code), for callers that want to
// predict or assert on serialization order without depending on internal
// field definitions directly.
func FieldOrder(names []string) ([]string, error) {
	table, err := definitions.Load()
	if err != nil {
		return nil, err
	}
	return table.SortedFieldNames(names), nil
}
