package parking

import "context"

// SessionRepository defines the interface for retrieving and recording
// parking sessions
type SessionRepository interface {
	// GetSessions retrieves all sessions for a facility. An unknown
	// facility is not an error; it yields an empty slice.
	GetSessions(ctx context.Context, facilityID string) ([]Session, error)

	// AddSession records a completed session
	AddSession(ctx context.Context, session *Session) error
}

// CustomerRepository defines the interface for customer lookups
type CustomerRepository interface {
	// GetCustomer retrieves a customer by id.
	// Returns shared.ErrNotFound when the customer is unknown.
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)

	// SaveCustomer creates or updates a customer
	SaveCustomer(ctx context.Context, customer *Customer) error
}
