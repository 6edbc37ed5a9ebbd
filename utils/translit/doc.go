// File: doc.go
// Title: Package Documentation for translit
// Description: Package translit folds accented Latin text into ASCII.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package translit replaces accented letters, ligatures, the German sharp s
// and the fractions ¼ and ½ with ASCII equivalents.
//
//	translit.ToASCII("Mötörhéäd vom Faß") // "Moetoerheaed vom Fass"
//
// The replacement table is fixed and applied in order. Characters it does
// not list are passed through, so the result is ASCII only for text that
// stays within the table. Transformer offers the same folding for
// golang.org/x/text/transform pipelines:
//
//	r := transform.NewReader(src, translit.Transformer())
//
// StripMarks removes combining marks from text that is already decomposed.
// No Unicode normalization is performed by this package.
package translit
