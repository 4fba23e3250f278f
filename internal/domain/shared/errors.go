package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrNotImplemented = NewDomainError("NOT_IMPLEMENTED", "Operation not implemented")
)

// NewInvalidFacilityError returns the invalid-argument error raised when a
// facility id has no known tariff schedule. The message format is part of
// the invoicing contract and must stay stable.
func NewInvalidFacilityError(facilityID string) *DomainError {
	return NewDomainError("INVALID_INPUT", fmt.Sprintf("Invalid parking facility id '%s'", facilityID))
}

// NewMalformedScheduleError returns the fatal configuration error raised
// when a tariff schedule has no rate band covering an hour being priced.
func NewMalformedScheduleError(dayClass string, hour int) *DomainError {
	return NewDomainError("MALFORMED_TARIFF_SCHEDULE",
		fmt.Sprintf("No rate band covers hour %d in the %s schedule", hour, dayClass))
}
