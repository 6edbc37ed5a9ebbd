// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the textx packages. Codes
//              classify failures of the text operations and of the
//              configuration layer so callers can branch on them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-02 v0.2.0: Reduced to the text normalization domain, added
//                       INVALID_ARGUMENT, EMPTY_INPUT and ENCODING_ERROR

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Text operation codes
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeEmptyInput      Code = "EMPTY_INPUT"
	CodeEncodingError   Code = "ENCODING_ERROR"

	// Validation
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeEmptyInput, CodeEncodingError,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeEmptyInput, CodeEncodingError:
		return "text"
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	default:
		return "generic"
	}
}
