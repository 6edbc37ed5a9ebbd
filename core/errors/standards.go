// File: standards.go
// Title: Error Standards for textx
// Description: Module identifiers and the UTF-8 validation helper shared by
//              all text packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-02 v0.2.0: Module identifiers of the text packages, ValidateUTF8

package errors

import (
	"unicode/utf8"
)

// Module identifiers for error categorization
const (
	ModuleCharcodec = "charcodec"
	ModuleCasex     = "casex"
	ModuleTranslit  = "translit"
	ModuleSanitize  = "sanitize"
	ModuleReflow    = "reflow"
	ModuleStringx   = "stringx"
	ModuleConfig    = "config"
)

// ValidateUTF8 returns an EncodingError for the first invalid sequence in s,
// or nil if s is valid UTF-8. The input is never repaired.
func ValidateUTF8(module, operation, s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return EncodingError(module, operation, i)
		}
		i += size
	}
	return EncodingError(module, operation, len(s))
}
