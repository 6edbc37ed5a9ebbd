// File: translit.go
// Title: ASCII Transliteration
// Description: Folds text into ASCII using the replacement table, either on
//              whole strings or as a golang.org/x/text transformer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ToASCII replaces every table source in s by its target. Runes outside
// the table are left as they are, so the result is ASCII only when s
// contains no other non-ASCII characters.
// Example: "Mötörhéäd vom Faß" -> "Moetoerheaed vom Fass"
func ToASCII(s string) string {
	if IsASCII(s) {
		return s
	}
	for _, rep := range replacements {
		for _, src := range rep.Sources {
			s = strings.ReplaceAll(s, src, rep.Target)
		}
	}
	return s
}

// IsASCII reports whether s consists of 7-bit characters only
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Transformer returns a transformer with the same output as ToASCII.
// It holds no state and may be shared.
func Transformer() transform.Transformer {
	return asciiTransform{}
}

type asciiTransform struct {
	transform.NopResetter
}

func (asciiTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		if !utf8.FullRune(src[nSrc:]) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		target, ok := byRune[r]
		if !ok {
			// invalid bytes decode to RuneError and are copied as well
			if size != copy(dst[nDst:], src[nSrc:nSrc+size]) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += size
			nSrc += size
			continue
		}
		if len(target) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], target)
		nSrc += size
	}
	return nDst, nSrc, nil
}

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// StripMarks removes non-spacing combining marks. It does not decompose:
// "e\u0301" becomes "e" while the precomposed "\u00e9" is kept.
func StripMarks(s string) string {
	if IsASCII(s) {
		return s
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
