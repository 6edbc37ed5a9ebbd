// File: doc.go
// Title: Package Documentation for casex
// Description: Package casex converts case with correct handling of the
//              accented Latin letters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package casex converts text to upper or lower case, consulting a fixed
// table of Latin-1 Supplement letters before falling back to the simple
// Unicode case mapping of the standard library.
//
// The tables are immutable and safe for concurrent use. The German sharp s
// is the one expanding entry:
//
//	casex.Upcase("ß")   // "SS"
//	casex.Downcase("SS") // "ss"
//	casex.Downcase("ß")  // "ß"
//
// Full Unicode case folding (special casing, Turkish dotless i) is not
// performed.
package casex
