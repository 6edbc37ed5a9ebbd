// File: doc.go
// Title: Package Documentation for reflow
// Description: Package reflow wraps and indents plain text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package reflow wraps and indents plain text line by line.
//
// Widths are counted in code points, not in display cells. Wrap treats only
// the ASCII space as a break opportunity; tabs and other white space are
// ordinary characters.
//
//	out, _ := reflow.Wrap("Hello.\nHere we are.\nWhere are you?", 12)
//	// "Hello.\nHere we are.\nWhere are\nyou?\n"
//
//	out, _ = reflow.Indent(" eins\nzwei\n   drei", 1, false)
//	// " eins\n zwei\n drei"
package reflow
