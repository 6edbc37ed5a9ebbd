// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx is the single surface over all textx
//              operations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package stringx exposes every textx operation through one configured
// value, the Extender.
//
// Package: stringx
// Title: Text Extension Surface
// Description: Combines transliteration, sanitizing, case conversion,
//              reflow and the byte codec. Parameters come from Options or
//              from a TOML/YAML configuration document.
//
// # Usage
//
//	ext := stringx.New()
//	slug, err := ext.Urlify("L'Alsace - pas très Français")
//	// "L_Alsace---pas-tres-Francais"
//
// With a configuration document:
//
//	cfg, err := config.Load("textx.toml")
//	if err != nil {
//		return err
//	}
//	ext, err := stringx.FromConfig(cfg)
//
//	# textx.toml
//	[wrap]
//	columns = 40
//	[indent]
//	width = 4
//	keep_existing = false
//	[codec]
//	byte_separator = " "
//	char_separator = " "
//	string_byte_separator = "."
//	[log]
//	level = "debug"
//	format = "logfmt"
//
// # Errors
//
// Every method rejects input that is not valid UTF-8 with an
// ENCODING_ERROR. Invalid parameters yield INVALID_ARGUMENT, an empty
// string passed to Capitalize yields EMPTY_INPUT and unusable configuration
// values yield INVALID_CONFIG. Failures are logged through the Extender's
// logger before they are returned.
//
// # Logging
//
// The Extender logs every operation at debug level with the operation name
// and the rune counts of input and output. The default logger discards
// everything; use WithLogger or log.SetDefault to see the output.
package stringx
