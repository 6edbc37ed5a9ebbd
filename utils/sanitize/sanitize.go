// File: sanitize.go
// Title: URL and Filename Sanitizers
// Description: Derives URL slugs and base filenames from arbitrary text by
//              folding to ASCII and replacing unsafe characters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package sanitize

import (
	"regexp"

	"github.com/msto63/mDW/textx/utils/translit"
)

var (
	// ASCII whitespace including vertical tab; regexp's \s omits \v
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r ]+`)

	urlUnsafe      = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// Urlify returns s as a URL path segment: folded to ASCII, each run of
// whitespace replaced by "-" and every remaining character outside
// [A-Za-z0-9_-] replaced by "_".
// Example: "L'Alsace - pas très Français" -> "L_Alsace---pas-tres-Francais"
func Urlify(s string) string {
	s = translit.ToASCII(s)
	s = whitespaceRun.ReplaceAllLiteralString(s, "-")
	return urlUnsafe.ReplaceAllLiteralString(s, "_")
}

// BaseFilename returns s as a file name: like Urlify, but whitespace runs
// become "_" and dots are kept.
// Example: "Mein Lebenslauf 2024.pdf" -> "Mein_Lebenslauf_2024.pdf"
func BaseFilename(s string) string {
	s = translit.ToASCII(s)
	s = whitespaceRun.ReplaceAllLiteralString(s, "_")
	return filenameUnsafe.ReplaceAllLiteralString(s, "_")
}
