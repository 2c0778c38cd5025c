// Package errors provides structured, code-carrying errors for the
// record-keeping workflows.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors (bad input, caught before storage)
	CodeValidation           Code = "VALIDATION"
	CodeCNICFormat           Code = "CNIC_FORMAT"
	CodeNoSelection          Code = "NO_SELECTION"
	CodeConfirmationRequired Code = "CONFIRMATION_REQUIRED"

	// Storage errors
	CodeConstraintViolation Code = "CONSTRAINT_VIOLATION"
	CodeNotFound            Code = "NOT_FOUND"

	// Auth errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeForbidden          Code = "FORBIDDEN"
)

// HTTPStatus maps domain codes to HTTP status codes for the dashboard API.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation,
		CodeCNICFormat,
		CodeNoSelection,
		CodeConfirmationRequired:
		return http.StatusBadRequest

	case CodeConstraintViolation:
		return http.StatusConflict

	case CodeNotFound:
		return http.StatusNotFound

	case CodeInvalidCredentials:
		return http.StatusUnauthorized

	case CodeForbidden:
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
