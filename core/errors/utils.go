// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors used
//              by every textx package, so that invalid arguments, empty input
//              and malformed UTF-8 are reported the same way everywhere.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-08-02 v0.2.0: Constructors for the text modules (InvalidArgument,
//                       EmptyInput, EncodingError), errors.As based lookups

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/mDW/textx/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidArgument reports a parameter outside its accepted domain, such as
// a non-positive column count. Values are never clamped silently.
func InvalidArgument(module, operation, param string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid argument %s=%v, expected %s", module, operation, param, value, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("param", param).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// EmptyInput reports an operation that requires at least one character
func EmptyInput(module, operation string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: input must not be empty", module, operation).
		Code(mdwerror.CodeEmptyInput).
		Severity(mdwerror.SeverityLow).
		Build()
}

// EncodingError reports input that is not valid UTF-8. offset is the byte
// offset of the first invalid sequence.
func EncodingError(module, operation string, offset int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid UTF-8 at byte offset %d", module, operation, offset).
		Code(mdwerror.CodeEncodingError).
		Detail("offset", offset).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value out of range in %s.%s", module, operation).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidConfig reports a configuration key whose value cannot be used
func InvalidConfig(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("config: invalid value for %s: %s", key, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from the first textx error in the chain
func ExtractDetails(err error) map[string]interface{} {
	if textErr, ok := mdwerror.As(err); ok {
		return textErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return err != nil && ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return IsModuleError(err, module) && ExtractOperation(err) == operation
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// IsEmptyInput reports whether err carries CodeEmptyInput
func IsEmptyInput(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeEmptyInput)
}

// IsEncodingError reports whether err carries CodeEncodingError
func IsEncodingError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeEncodingError)
}
