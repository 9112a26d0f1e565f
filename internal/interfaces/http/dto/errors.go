package dto

import "net/http"

// Error codes returned in the response envelope.
// Format: ERR_<DESCRIPTION>

// General error codes
const (
	// ErrCodeInternal is used for unexpected failures
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Input error codes
const (
	ErrCodeInvalidInput     = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON      = "ERR_INVALID_JSON"
	ErrCodeMissingFields    = "ERR_MISSING_FIELDS"
	ErrCodeInvalidFieldType = "ERR_INVALID_FIELD_TYPE"
	ErrCodeUnknownKind      = "ERR_UNKNOWN_KIND"
)

// Resource error codes
const (
	ErrCodeNotFound             = "ERR_NOT_FOUND"
	ErrCodeUnsupportedOperation = "ERR_UNSUPPORTED_OPERATION"
	ErrCodeAlreadyExists        = "ERR_ALREADY_EXISTS"
	ErrCodeForeignKeyViolation  = "ERR_FOREIGN_KEY_VIOLATION"
	ErrCodeConstraintViolation  = "ERR_CONSTRAINT_VIOLATION"
	ErrCodeHasReferences        = "ERR_HAS_REFERENCES"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeInvalidJSON:      http.StatusBadRequest,
	ErrCodeMissingFields:    http.StatusBadRequest,
	ErrCodeInvalidFieldType: http.StatusBadRequest,
	ErrCodeUnknownKind:      http.StatusNotFound,

	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeUnsupportedOperation: http.StatusNotFound,
	ErrCodeAlreadyExists:        http.StatusConflict,
	ErrCodeForeignKeyViolation:  http.StatusConflict,
	ErrCodeConstraintViolation:  http.StatusConflict,
	ErrCodeHasReferences:        http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainCodeMapping maps domain error codes to response codes
var domainCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"HAS_REFERENCES":        ErrCodeHasReferences,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"FOREIGN_KEY_VIOLATION": ErrCodeForeignKeyViolation,
	"CONSTRAINT_VIOLATION":  ErrCodeConstraintViolation,
}

// NormalizeErrorCode converts a domain error code to its response code.
// Codes already in response form, and unknown codes, are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := domainCodeMapping[code]; ok {
		return newCode
	}
	return code
}
