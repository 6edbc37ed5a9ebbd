// File: doc.go
// Title: Package Documentation for charcodec
// Description: Package charcodec inspects characters at the byte level.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package charcodec renders the UTF-8 encoding of characters as binary,
// hexadecimal or decimal byte groups.
//
// A Char is built from a one-character string with Parse or from a code
// point with FromRune:
//
//	c, _ := charcodec.Parse("ä")
//	c.Hex(" ")     // "C3 A4"
//	c.Binary(" ")  // "11000011 10100100"
//	c.Decimal(" ") // "195 164"
//
// Whole strings are rendered character by character. Bytes of one
// character are joined by the byte separator, characters by the character
// separator:
//
//	charcodec.ToHex("aä", charcodec.DefaultCharSeparator, charcodec.DefaultStringByteSeparator)
//	// "61 C3.A4"
//
// Decomposition is per code point. Combining sequences such as "e" followed
// by U+0301 are two characters here; Graphemes returns user-perceived
// characters instead, using github.com/rivo/uniseg.
//
// Input that is not valid UTF-8 is rejected with an ENCODING_ERROR and is
// never repaired.
package charcodec
