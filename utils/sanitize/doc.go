// File: doc.go
// Title: Package Documentation for sanitize
// Description: Package sanitize makes text safe for URLs and file names.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package sanitize derives URL slugs and base file names from text.
//
// Both functions fold the input with translit.ToASCII first. Characters the
// transliteration table does not cover are replaced like any other unsafe
// character, one "_" per character:
//
//	sanitize.Urlify("L'Alsace - pas très Français")   // "L_Alsace---pas-tres-Francais"
//	sanitize.BaseFilename("Grüße an Köln.txt")        // "Gruesse_an_Koeln.txt"
//
// The output is not length limited and distinct inputs may map to the same
// result.
package sanitize
