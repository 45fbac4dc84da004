// Package config holds the ambient, process-wide knobs this otherwise
// stateless core exposes: where to load the field-definitions manifest
// from, and whether secp256k1 signing normalizes to the canonical low-S
// form automatically. Grounded on the teacher's internal/config package,
// which read poll intervals, retry counts, and fee defaults from the
// environment the same way; this core has no transport or broadcast layer,
// so those knobs have no equivalent here (see DESIGN.md).
package config

import "os"

// DefinitionsPathEnv is the environment variable consulted for an override
// path to definitions.json, in place of the embedded manifest.
const DefinitionsPathEnv = "XRPL_DEFINITIONS_PATH"

// NormalizeLowSEnv, when set to "false", makes FromEnv return a Config with
// NormalizeLowS false. That Config takes effect only where it is passed to
// keypair.SignSecp256k1WithConfig; keypair.SignSecp256k1 and the wallet
// signing path do not read the environment and always produce canonical
// low-S signatures.
const NormalizeLowSEnv = "XRPL_NORMALIZE_LOW_S"

// Config holds the ambient configuration for the codec and signing
// packages.
type Config struct {
	// DefinitionsPath, if non-empty, overrides the embedded definitions
	// manifest with the file at this path.
	DefinitionsPath string

	// NormalizeLowS controls whether secp256k1 signing normalizes its
	// output to the canonical low-S form. Defaults to true; the network
	// never accepts the alternative, so production callers should never
	// set this false.
	NormalizeLowS bool
}

// Default returns a Config with no manifest override and low-S
// normalization enabled.
func Default() Config {
	return Config{
		DefinitionsPath: "",
		NormalizeLowS:   true,
	}
}

// FromEnv returns a Config populated from XRPL_DEFINITIONS_PATH and
// XRPL_NORMALIZE_LOW_S, falling back to Default's values for unset
// variables.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv(DefinitionsPathEnv); v != "" {
		cfg.DefinitionsPath = v
	}
	if v := os.Getenv(NormalizeLowSEnv); v == "false" {
		cfg.NormalizeLowS = false
	}
	return cfg
}
