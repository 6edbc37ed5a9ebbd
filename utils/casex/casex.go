// File: casex.go
// Title: Unicode-Aware Case Conversion
// Description: Upcase, Downcase and Capitalize with the Latin-1 exception
//              tables applied before the default Unicode mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package casex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerrors "github.com/msto63/mDW/textx/core/errors"
)

// Upcase converts s to upper case. The result may be longer than s.
// Example: "Faß" -> "FASS"
func Upcase(s string) string {
	return mapRunes(s, func(b *strings.Builder, r rune) {
		if u, ok := upper[r]; ok {
			b.WriteString(u)
			return
		}
		b.WriteRune(unicode.ToUpper(r))
	})
}

// Downcase converts s to lower case.
// Example: "ÄRGER" -> "ärger"
func Downcase(s string) string {
	return mapRunes(s, func(b *strings.Builder, r rune) {
		if l, ok := lower[string(r)]; ok {
			b.WriteRune(l)
			return
		}
		b.WriteRune(unicode.ToLower(r))
	})
}

// Capitalize upper-cases the first character of s and lower-cases the
// rest. s must not be empty.
// Example: "ßa" -> "SSa"
func Capitalize(s string) (string, error) {
	if s == "" {
		return "", mdwerrors.EmptyInput(mdwerrors.ModuleCasex, "Capitalize")
	}
	_, size := utf8.DecodeRuneInString(s)
	return Upcase(s[:size]) + Downcase(s[size:]), nil
}

// mapRunes applies fn to every rune of s. Bytes that are not valid UTF-8
// are copied unchanged.
func mapRunes(s string, fn func(*strings.Builder, rune)) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		fn(&b, r)
		i += size
	}
	return b.String()
}
