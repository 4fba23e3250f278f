package parking

import (
	"time"

	"github.com/mobilitree/backend/internal/domain/shared"
)

// Session is one parking occupancy event for a customer at a facility,
// bounded by start and end timestamps. Sessions are created by the gate
// system and treated as immutable read-only values during invoicing.
type Session struct {
	shared.BaseEntity
	CustomerID string
	FacilityID string
	StartTime  time.Time
	EndTime    time.Time
}

// NewSession creates a session record
func NewSession(customerID, facilityID string, startTime, endTime time.Time) *Session {
	return &Session{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		FacilityID: facilityID,
		StartTime:  startTime,
		EndTime:    endTime,
	}
}

// IsDegenerate returns true when the session's start is not before its
// end. Such records come from corrupt gate data; they price to zero
// instead of failing the whole invoicing run.
func (s *Session) IsDegenerate() bool {
	return !s.StartTime.Before(s.EndTime)
}

// Duration returns the elapsed time of the session, zero when degenerate
func (s *Session) Duration() time.Duration {
	if s.IsDegenerate() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
