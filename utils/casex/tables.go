// File: tables.go
// Title: Case Exception Tables
// Description: The fixed Latin-1 Supplement exception tables consulted
//              before the default Unicode case mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package casex

import "sort"

// upper maps lower-case runes to their upper-case form. ß is the only
// entry whose value is longer than one rune.
var upper = map[rune]string{
	'ß': "SS",
	'à': "À", 'á': "Á", 'â': "Â", 'ã': "Ã", 'ä': "Ä", 'å': "Å", 'æ': "Æ", 'ç': "Ç",
	'è': "È", 'é': "É", 'ê': "Ê", 'ë': "Ë", 'ì': "Ì", 'í': "Í", 'î': "Î", 'ï': "Ï",
	'ð': "Ð", 'ñ': "Ñ", 'ò': "Ò", 'ó': "Ó", 'ô': "Ô", 'õ': "Õ", 'ö': "Ö",
	'ø': "Ø", 'ù': "Ù", 'ú': "Ú", 'û': "Û", 'ü': "Ü", 'ý': "Ý", 'þ': "Þ",
}

// lower is the inverse of upper. "SS" is a key but is never hit by a
// single-rune lookup, so ß keeps mapping to itself.
var lower = invert(upper)

func invert(m map[rune]string) map[string]rune {
	inv := make(map[string]rune, len(m)+1)
	for r, s := range m {
		inv[s] = r
	}
	inv["ß"] = 'ß'
	return inv
}

// UpperMapping returns the exception-table upper-case form of r
func UpperMapping(r rune) (string, bool) {
	s, ok := upper[r]
	return s, ok
}

// LowerMapping returns the exception-table lower-case form of s
func LowerMapping(s string) (rune, bool) {
	r, ok := lower[s]
	return r, ok
}

// Exceptions returns the runes with an upper-case exception, sorted
func Exceptions() []rune {
	runes := make([]rune, 0, len(upper))
	for r := range upper {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
