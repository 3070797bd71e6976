// Package errors provides structured error handling for the codec and its
// supporting services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Wire-level errors
	CodeInvalidRecord Code = "INVALID_RECORD"

	// Description grammar errors
	CodeDescriptionParseFailed    Code = "DESCRIPTION_PARSE_FAILED"
	CodeDescriptionNotFullyParsed Code = "DESCRIPTION_NOT_FULLY_PARSED"

	// Tag accounting errors
	CodeNotEnoughTags     Code = "NOT_ENOUGH_TAGS"
	CodeTooManyTags       Code = "TOO_MANY_TAGS"
	CodeExpectedEqualTags Code = "EXPECTED_EQUAL_TAGS"

	// Child accounting errors
	CodeNotEnoughChildren   Code = "NOT_ENOUGH_CHILDREN"
	CodeTooManyChildren     Code = "TOO_MANY_CHILDREN"
	CodeUnexpectedChildType Code = "UNEXPECTED_CHILD_TYPE"

	// Metadata errors
	CodeMissingMetadata   Code = "MISSING_METADATA"
	CodeMetadataTypeError Code = "METADATA_TYPE_ERROR"
	CodeUnreadMetadata    Code = "UNREAD_METADATA"

	// Enum range errors
	CodeUnknownEnumValue Code = "UNKNOWN_ENUM_VALUE"

	// Dispatch errors
	CodeNotImplemented Code = "NOT_IMPLEMENTED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes for the parse service.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidRecord:
		return http.StatusBadRequest

	case CodeDescriptionParseFailed,
		CodeDescriptionNotFullyParsed,
		CodeNotEnoughTags,
		CodeTooManyTags,
		CodeExpectedEqualTags,
		CodeNotEnoughChildren,
		CodeTooManyChildren,
		CodeUnexpectedChildType,
		CodeMissingMetadata,
		CodeMetadataTypeError,
		CodeUnreadMetadata,
		CodeUnknownEnumValue:
		return http.StatusUnprocessableEntity

	case CodeNotImplemented:
		return http.StatusNotImplemented

	case CodeNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
