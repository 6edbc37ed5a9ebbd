// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them to
//              log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-02 v0.1.1: Severity defaults for the text error codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig, CodeEncodingError:
		return SeverityMedium
	case CodeInvalidArgument, CodeEmptyInput, CodeInvalidInput,
		CodeInvalidFormat, CodeValueOutOfRange, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
