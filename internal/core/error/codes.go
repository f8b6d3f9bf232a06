// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across opendigger-cli. User-input codes map
//              one-to-one onto the argument conversion failure taxonomy so
//              the CLI boundary can render actionable messages.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for opendigger-cli
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Indicator token conversion (user input)
	CodeUnknownIndicator  Code = "UNKNOWN_INDICATOR"
	CodeQueryRequired     Code = "QUERY_REQUIRED"
	CodeQueryNotSupported Code = "QUERY_NOT_SUPPORTED"
	CodeInvalidQueryBody  Code = "INVALID_QUERY_BODY"
	CodeMalformedToken    Code = "MALFORMED_TOKEN"

	// Query body grammar (user input, detail codes of INVALID_QUERY_BODY)
	CodeEmptyQuery      Code = "EMPTY_QUERY"
	CodeMalformedClause Code = "MALFORMED_CLAUSE"
	CodeDuplicateKey    Code = "DUPLICATE_KEY"
	CodeUnknownKey      Code = "UNKNOWN_KEY"
	CodeValueCoercion   Code = "VALUE_COERCION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// External collaborators
	CodeExternalService Code = "EXTERNAL_SERVICE"
	CodeStoreError      Code = "STORE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeUnknownIndicator, CodeQueryRequired, CodeQueryNotSupported,
		CodeInvalidQueryBody, CodeMalformedToken,
		CodeEmptyQuery, CodeMalformedClause, CodeDuplicateKey,
		CodeUnknownKey, CodeValueCoercion,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeExternalService, CodeStoreError:
		return true
	default:
		return false
	}
}

// IsUserInput reports whether the code classifies a user input error, as
// opposed to an internal fault or a failing collaborator. User input errors
// are terminal for the offending argument and are rendered with corrective
// context; they never indicate a bug.
func (c Code) IsUserInput() bool {
	switch c {
	case CodeUnknownIndicator, CodeQueryRequired, CodeQueryNotSupported,
		CodeInvalidQueryBody, CodeMalformedToken,
		CodeEmptyQuery, CodeMalformedClause, CodeDuplicateKey,
		CodeUnknownKey, CodeValueCoercion:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownIndicator, CodeQueryRequired, CodeQueryNotSupported,
		CodeInvalidQueryBody, CodeMalformedToken:
		return "conversion"
	case CodeEmptyQuery, CodeMalformedClause, CodeDuplicateKey,
		CodeUnknownKey, CodeValueCoercion:
		return "query"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeExternalService, CodeStoreError:
		return "collaborator"
	default:
		return "generic"
	}
}
