// Package error provides the structured error type used across textx.
//
// Package: error
// Title: textx Error Handling
// Description: Structured errors with codes, severities, details and stack
//              traces. Every failing operation of the text packages returns
//              an *Error so callers can branch on the code instead of parsing
//              messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-02 v0.2.0: Codes for the text normalization domain
//
// Usage:
//
//	import mdwerror "github.com/msto63/mDW/textx/core/error"
//
//	err := mdwerror.New("columns must be positive").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithDetail("cols", 0)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// reject the request
//	}
package error
