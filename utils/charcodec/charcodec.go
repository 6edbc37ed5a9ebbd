// File: charcodec.go
// Title: Per-Character Byte Codec
// Description: Renders the UTF-8 encoding of single characters and whole
//              strings as binary, hexadecimal or decimal byte groups.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-02
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation
// - 2025-08-04 v0.1.1: Graphemes

package charcodec

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	mdwerror "github.com/msto63/mDW/textx/core/error"
	mdwerrors "github.com/msto63/mDW/textx/core/errors"
)

const (
	// DefaultByteSeparator separates the bytes of a single character
	DefaultByteSeparator = " "

	// DefaultCharSeparator separates characters in whole-string renderings
	DefaultCharSeparator = " "

	// DefaultStringByteSeparator separates the bytes of one character in
	// whole-string renderings
	DefaultStringByteSeparator = "."
)

// Char is a single code point together with its UTF-8 encoding
type Char struct {
	r     rune
	bytes []byte
}

// Parse returns the Char encoded by s. s must hold exactly one valid
// UTF-8 encoded code point.
func Parse(s string) (Char, error) {
	if err := mdwerrors.ValidateUTF8(mdwerrors.ModuleCharcodec, "Parse", s); err != nil {
		return Char{}, err
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		return Char{}, mdwerrors.InvalidArgument(mdwerrors.ModuleCharcodec, "Parse",
			"s", s, "exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char{r: r, bytes: []byte(s)}, nil
}

// FromRune returns the Char for r. Surrogate halves and values beyond
// utf8.MaxRune have no UTF-8 encoding.
func FromRune(r rune) (Char, error) {
	if !utf8.ValidRune(r) {
		return Char{}, mdwerrors.NewErrorBuilder(mdwerrors.ModuleCharcodec).
			Operation("FromRune").
			Messagef("%s.FromRune: code point U+%04X has no UTF-8 encoding", mdwerrors.ModuleCharcodec, r).
			Code(mdwerror.CodeEncodingError).
			Detail("rune", int64(r)).
			Severity(mdwerror.SeverityMedium).
			Build()
	}
	return Char{r: r, bytes: utf8.AppendRune(nil, r)}, nil
}

// Rune returns the code point
func (c Char) Rune() rune {
	return c.r
}

// Bytes returns a copy of the UTF-8 encoding
func (c Char) Bytes() []byte {
	out := make([]byte, len(c.bytes))
	copy(out, c.bytes)
	return out
}

// Len returns the encoded length in bytes (1 to 4)
func (c Char) Len() int {
	return len(c.bytes)
}

// IsMultiByte reports whether the encoding needs more than one byte
func (c Char) IsMultiByte() bool {
	return len(c.bytes) > 1
}

// String returns the character itself
func (c Char) String() string {
	return string(c.bytes)
}

// Binary renders each byte as eight binary digits joined by sep.
// Example: 'ä'.Binary(" ") -> "11000011 10100100"
func (c Char) Binary(sep string) string {
	return c.render(sep, func(b byte) string {
		s := strconv.FormatUint(uint64(b), 2)
		return strings.Repeat("0", 8-len(s)) + s
	})
}

// Hex renders each byte as two upper-case hex digits joined by sep.
// Example: 'ä'.Hex(" ") -> "C3 A4"
func (c Char) Hex(sep string) string {
	const digits = "0123456789ABCDEF"
	return c.render(sep, func(b byte) string {
		return string([]byte{digits[b>>4], digits[b&0x0F]})
	})
}

// Decimal renders each byte as an unsigned decimal number joined by sep.
// Example: 'ä'.Decimal(" ") -> "195 164"
func (c Char) Decimal(sep string) string {
	return c.render(sep, func(b byte) string {
		return strconv.Itoa(int(b))
	})
}

func (c Char) render(sep string, format func(byte) string) string {
	parts := make([]string, len(c.bytes))
	for i, b := range c.bytes {
		parts[i] = format(b)
	}
	return strings.Join(parts, sep)
}

// Chars decomposes s into its code points. Combining sequences are not
// merged into graphemes: "e\u0301" yields two Chars.
func Chars(s string) ([]Char, error) {
	if err := mdwerrors.ValidateUTF8(mdwerrors.ModuleCharcodec, "Chars", s); err != nil {
		return nil, err
	}
	chars := make([]Char, 0, utf8.RuneCountInString(s))
	for i, r := range s {
		size := utf8.RuneLen(r)
		chars = append(chars, Char{r: r, bytes: []byte(s[i : i+size])})
	}
	return chars, nil
}

// Graphemes splits s into user-perceived characters. Unlike Chars it keeps
// combining sequences, flags and emoji ZWJ sequences together.
// Example: "e\u0301🇩🇪" -> ["e\u0301", "🇩🇪"]
func Graphemes(s string) ([]string, error) {
	if err := mdwerrors.ValidateUTF8(mdwerrors.ModuleCharcodec, "Graphemes", s); err != nil {
		return nil, err
	}
	clusters := make([]string, 0, uniseg.GraphemeClusterCount(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters, nil
}

// ToBinary renders every character of s with Char.Binary(byteSep) and
// joins the results with charSep.
func ToBinary(s, charSep, byteSep string) (string, error) {
	return renderString("ToBinary", s, charSep, func(c Char) string { return c.Binary(byteSep) })
}

// ToHex renders every character of s with Char.Hex(byteSep) and joins the
// results with charSep.
// Example: ToHex("aä", " ", ".") -> "61 C3.A4"
func ToHex(s, charSep, byteSep string) (string, error) {
	return renderString("ToHex", s, charSep, func(c Char) string { return c.Hex(byteSep) })
}

// ToDecimal renders every character of s with Char.Decimal(byteSep) and
// joins the results with charSep.
func ToDecimal(s, charSep, byteSep string) (string, error) {
	return renderString("ToDecimal", s, charSep, func(c Char) string { return c.Decimal(byteSep) })
}

func renderString(operation, s, charSep string, render func(Char) string) (string, error) {
	if err := mdwerrors.ValidateUTF8(mdwerrors.ModuleCharcodec, operation, s); err != nil {
		return "", err
	}
	var b strings.Builder
	first := true
	for i, r := range s {
		if !first {
			b.WriteString(charSep)
		}
		first = false
		b.WriteString(render(Char{r: r, bytes: []byte(s[i : i+utf8.RuneLen(r)])}))
	}
	return b.String(), nil
}
