// Package errors provides the shared error constructors of textx.
//
// Every text package reports failures through the same small set of
// constructors so that callers see uniform codes and details:
//
//	InvalidArgument  cols/width outside their domain
//	EmptyInput       capitalize on ""
//	EncodingError    malformed UTF-8, with the byte offset of the first bad sequence
//
// The returned values are *error.Error from core/error. Module and operation
// are stored as details and can be read back with ExtractModule and
// ExtractOperation.
package errors
