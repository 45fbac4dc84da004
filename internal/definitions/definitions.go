// Package definitions loads XRPL's field/type manifest and exposes it as an
// immutable, precomputed lookup table. Grounded on spec's description of a
// definitions.json-shaped manifest (TYPES/FIELDS/TRANSACTION_TYPES/
// LEDGER_ENTRY_TYPES) and on the teacher's internal/config package for the
// env-override pattern used to let callers point at a different manifest.
package definitions

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/xpring-eng/xrpl-go-core/internal/config"
)

// logger reports the one-time, non-hot-path events around building the
// process-wide field table: which manifest was loaded and how many fields
// it resolved. Matching the teacher's internal/tx.Builder and
// internal/listener.PollingListener, which log through a
// slog.Default().With("component", ...) logger rather than the bare
// package-level slog functions.
var logger = slog.Default().With("component", "definitions")

// FieldInfo is one field's entry in the manifest, exactly as it appears in
// definitions.json.
type FieldInfo struct {
	Nth            int    `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

// Field is a fully resolved field definition: its name, its manifest info,
// and the numeric type code its Type name resolves to.
type Field struct {
	Name     string
	Info     FieldInfo
	TypeCode int
}

// manifest mirrors definitions.json's top-level shape. FIELDS is an array of
// [name, info] pairs, matching rippled's own definitions.json rather than a
// plain name->info map, so that field declaration order (which groups same-
// typed fields together for readability) is preserved.
type manifest struct {
	Types            map[string]int     `json:"TYPES"`
	RawFields        []json.RawMessage  `json:"FIELDS"`
	TransactionTypes map[string]int     `json:"TRANSACTION_TYPES"`
	LedgerEntryTypes map[string]int     `json:"LEDGER_ENTRY_TYPES"`
}

// Table is the immutable, fully-indexed definitions table.
type Table struct {
	Types            map[string]int
	Fields           map[string]Field
	FieldsByID       map[fieldIDKey]Field
	TransactionTypes map[string]int
	LedgerEntryTypes map[string]int
}

type fieldIDKey struct {
	typeCode  int
	fieldCode int
}

var load = sync.OnceValues(func() (*Table, error) {
	data := embeddedDefinitions
	source := "embedded"
	if path := config.FromEnv().DefinitionsPath; path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read definitions manifest failed", "path", path, "error", err)
			return nil, fmt.Errorf("read definitions manifest %s: %w", path, err)
		}
		data = b
		source = path
	}
	logger.Debug("loading definitions manifest", "source", source)
	t, err := parse(data)
	if err != nil {
		logger.Error("parse definitions manifest failed", "source", source, "error", err)
		return nil, err
	}
	logger.Info("definitions table built", "source", source, "fields", len(t.Fields))
	return t, nil
})

// Load returns the process-wide definitions table, parsing it (from the
// embedded manifest, or the path named by config.DefinitionsPathEnv if set)
// on first use and memoizing the result.
func Load() (*Table, error) {
	return load()
}

// MustLoad is Load but panics on error; convenient for package-level
// variables that need a table and can't plumb through an error.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

func parse(data []byte) (*Table, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse definitions manifest: %w", err)
	}

	t := &Table{
		Types:            m.Types,
		Fields:           make(map[string]Field, len(m.RawFields)),
		FieldsByID:       make(map[fieldIDKey]Field, len(m.RawFields)),
		TransactionTypes: m.TransactionTypes,
		LedgerEntryTypes: m.LedgerEntryTypes,
	}

	for _, raw := range m.RawFields {
		var pair [2]json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return nil, fmt.Errorf("parse field entry: %w", err)
		}
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return nil, fmt.Errorf("parse field name: %w", err)
		}
		var info FieldInfo
		if err := json.Unmarshal(pair[1], &info); err != nil {
			return nil, fmt.Errorf("parse field info for %s: %w", name, err)
		}
		typeCode, ok := t.Types[info.Type]
		if !ok {
			return nil, fmt.Errorf("field %s references unknown type %s", name, info.Type)
		}
		field := Field{Name: name, Info: info, TypeCode: typeCode}
		t.Fields[name] = field
		t.FieldsByID[fieldIDKey{typeCode, info.Nth}] = field
	}

	return t, nil
}

// FieldByName looks up a field definition by name.
func (t *Table) FieldByName(name string) (Field, bool) {
	f, ok := t.Fields[name]
	return f, ok
}

// FieldByID looks up a field definition by its (typeCode, fieldCode) pair,
// as decoded from a field-id header on the wire.
func (t *Table) FieldByID(typeCode, fieldCode int) (Field, bool) {
	f, ok := t.FieldsByID[fieldIDKey{typeCode, fieldCode}]
	return f, ok
}

// SortedFieldNames returns a copy of names ordered by (typeCode, nth) — the
// canonical field ordering rule objects must serialize their fields in.
// Names with no definition in the table are kept, and sort as type code 0,
// field code 0.
func (t *Table) SortedFieldNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.Slice(out, func(i, j int) bool {
		fi, fj := t.Fields[out[i]], t.Fields[out[j]]
		if fi.TypeCode != fj.TypeCode {
			return fi.TypeCode < fj.TypeCode
		}
		return fi.Info.Nth < fj.Info.Nth
	})
	return out
}

// TransactionTypeCode resolves a transaction type name ("Payment",
// "OfferCreate", ...) to its uint16 wire code.
func (t *Table) TransactionTypeCode(name string) (uint16, bool) {
	code, ok := t.TransactionTypes[name]
	return uint16(code), ok
}

// TransactionTypeName reverses TransactionTypeCode.
func (t *Table) TransactionTypeName(code uint16) (string, bool) {
	for name, c := range t.TransactionTypes {
		if uint16(c) == code {
			return name, true
		}
	}
	return "", false
}

// LedgerEntryTypeCode resolves a ledger entry type name ("AccountRoot",
// "RippleState", ...) to its uint16 wire code.
func (t *Table) LedgerEntryTypeCode(name string) (uint16, bool) {
	code, ok := t.LedgerEntryTypes[name]
	return uint16(code), ok
}

// LedgerEntryTypeName reverses LedgerEntryTypeCode.
func (t *Table) LedgerEntryTypeName(code uint16) (string, bool) {
	for name, c := range t.LedgerEntryTypes {
		if uint16(c) == code {
			return name, true
		}
	}
	return "", false
}
