package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

// toUint64 coerces the common numeric Go types callers use for integer
// field values (int, the fixed-width ints/uints) into a uint64.
func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case uint32:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case int:
		return uint64(n), nil
	case int64:
		return uint64(n), nil
	case int32:
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("%w: want an integer, got %T", xrplerr.ErrUnserializableField, v)
	}
}

// toTypeNameCode resolves a TransactionType/LedgerEntryType field's value,
// which may be given as its symbolic name ("OfferCreate") or as the raw
// uint16 code, to the wire code via lookup.
func toTypeNameCode(v any, lookup func(string) (uint16, bool)) (uint16, error) {
	switch n := v.(type) {
	case string:
		code, ok := lookup(n)
		if !ok {
			return 0, fmt.Errorf("%w: unknown type name %q", xrplerr.ErrUnserializableField, n)
		}
		return code, nil
	default:
		u, err := toUint64(v)
		if err != nil {
			return 0, err
		}
		return uint16(u), nil
	}
}

func toFixedHashBytes(v any, n int) ([]byte, error) {
	switch b := v.(type) {
	case string:
		return hexDecode(b)
	case []byte:
		return b, nil
	default:
		return nil, fmt.Errorf("%w: want a %d-byte hex string, got %T", xrplerr.ErrUnserializableField, n, v)
	}
}

func toBlobBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case string:
		return hexDecode(b)
	case []byte:
		return b, nil
	default:
		return nil, fmt.Errorf("%w: want a hex string, got %T", xrplerr.ErrUnserializableField, v)
	}
}

// toAmount coerces an Amount field's value. A plain string is interpreted
// as a drops-denominated XRP amount; an Amount is used as-is; a Fields map
// with value/currency/issuer keys becomes an IssuedAmount.
func toAmount(v any) (Amount, error) {
	switch a := v.(type) {
	case Amount:
		return a, nil
	case XRPAmount:
		return a, nil
	case IssuedAmount:
		return a, nil
	case string:
		var drops int64
		if _, err := fmt.Sscanf(a, "%d", &drops); err != nil {
			return nil, fmt.Errorf("%w: invalid XRP drops value %q", xrplerr.ErrUnserializableField, a)
		}
		return XRPAmount(drops), nil
	case Fields:
		value, _ := a["value"].(string)
		currency, _ := a["currency"].(string)
		issuer, _ := a["issuer"].(string)
		return IssuedAmount{Value: value, Currency: currency, Issuer: issuer}, nil
	case map[string]any:
		return toAmount(Fields(a))
	default:
		return nil, fmt.Errorf("%w: unsupported amount representation %T", xrplerr.ErrUnserializableField, v)
	}
}

func toPathSet(v any) (PathSet, error) {
	switch ps := v.(type) {
	case PathSet:
		return ps, nil
	case []Path:
		return PathSet(ps), nil
	default:
		return nil, fmt.Errorf("%w: want a PathSet, got %T", xrplerr.ErrUnserializableField, v)
	}
}

func toHashList(v any) ([][]byte, error) {
	switch hs := v.(type) {
	case [][]byte:
		return hs, nil
	case []string:
		out := make([][]byte, len(hs))
		for i, h := range hs {
			b, err := hexDecode(h)
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: want a list of 32-byte hashes, got %T", xrplerr.ErrUnserializableField, v)
	}
}

func toFields(v any) (Fields, error) {
	switch f := v.(type) {
	case Fields:
		return f, nil
	case map[string]any:
		return Fields(f), nil
	default:
		return nil, fmt.Errorf("%w: want a nested field map, got %T", xrplerr.ErrUnserializableField, v)
	}
}

func toFieldsSlice(v any) ([]Fields, error) {
	switch s := v.(type) {
	case []Fields:
		return s, nil
	case []map[string]any:
		out := make([]Fields, len(s))
		for i, m := range s {
			out[i] = Fields(m)
		}
		return out, nil
	case []any:
		out := make([]Fields, len(s))
		for i, m := range s {
			f, err := toFields(m)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: want a list of wrapped object fields, got %T", xrplerr.ErrUnserializableField, v)
	}
}
