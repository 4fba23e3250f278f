package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeMalformedSchedule is used when a facility's tariff schedule
	// does not cover every hour of the day
	ErrCodeMalformedSchedule = "ERR_MALFORMED_TARIFF_SCHEDULE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:    http.StatusInternalServerError,
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// A malformed schedule is a server-side data fault, not a client error
	ErrCodeMalformedSchedule: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain error codes to standardized codes
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":                 ErrCodeNotFound,
	"ALREADY_EXISTS":            ErrCodeAlreadyExists,
	"INVALID_INPUT":             ErrCodeInvalidInput,
	"VALIDATION_ERROR":          ErrCodeValidation,
	"BAD_REQUEST":               ErrCodeBadRequest,
	"INTERNAL_ERROR":            ErrCodeInternal,
	"MALFORMED_TARIFF_SCHEDULE": ErrCodeMalformedSchedule,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
