package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/definitions"
	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

// objectEndMarker closes an STObject (or the top-level transaction) that was
// opened implicitly or by a nested-object field header.
const objectEndMarker = 0xE1

// arrayEndMarker closes an STArray opened by a nested-array field header.
const arrayEndMarker = 0xF1

// encodeFieldID returns the 1-3 byte field-id header for a field, per
// rippled's rule: a type code or field code under 16 fits in a nibble, so
// both fitting under 16 packs into a single byte; either spilling over 16
// promotes that half to its own following byte.
func encodeFieldID(f definitions.Field) []byte {
	typeCode := f.TypeCode
	fieldCode := f.Info.Nth

	switch {
	case typeCode < 16 && fieldCode < 16:
		return []byte{byte(typeCode<<4 | fieldCode)}
	case typeCode >= 16 && fieldCode < 16:
		return []byte{byte(fieldCode), byte(typeCode)}
	case typeCode < 16 && fieldCode >= 16:
		return []byte{byte(typeCode << 4), byte(fieldCode)}
	default:
		return []byte{0, byte(typeCode), byte(fieldCode)}
	}
}

// decodeFieldID reads a field-id header from s and resolves it to a field
// definition.
func decodeFieldID(s *Scanner, table *definitions.Table) (definitions.Field, error) {
	first, err := s.Take1()
	if err != nil {
		return definitions.Field{}, err
	}

	typeCode := int(first >> 4)
	fieldCode := int(first & 0x0F)

	if typeCode == 0 {
		b, err := s.Take1()
		if err != nil {
			return definitions.Field{}, err
		}
		typeCode = int(b)
	}
	if fieldCode == 0 {
		b, err := s.Take1()
		if err != nil {
			return definitions.Field{}, err
		}
		fieldCode = int(b)
	}

	f, ok := table.FieldByID(typeCode, fieldCode)
	if !ok {
		return definitions.Field{}, fmt.Errorf("%w: type %d field %d", xrplerr.ErrUnknownField, typeCode, fieldCode)
	}
	return f, nil
}
