package parking

import (
	"context"
	"time"

	"github.com/mobilitree/backend/internal/domain/parking"
	"go.uber.org/zap"
)

// SessionService records and lists parking sessions
type SessionService struct {
	sessionRepo parking.SessionRepository
	logger      *zap.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo parking.SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// RecordSession stores a completed session as reported by the gate
// system. Degenerate intervals are accepted; gate clocks drift and the
// pricing rules already give such records a zero amount.
func (s *SessionService) RecordSession(ctx context.Context, customerID, facilityID string, startTime, endTime time.Time) (*parking.Session, error) {
	session := parking.NewSession(customerID, facilityID, startTime, endTime)
	if err := s.sessionRepo.AddSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("Session recorded",
		zap.String("facility_id", facilityID),
		zap.String("customer_id", customerID),
		zap.Duration("duration", session.Duration()),
	)
	return session, nil
}

// ListSessions returns all sessions recorded at a facility
func (s *SessionService) ListSessions(ctx context.Context, facilityID string) ([]parking.Session, error) {
	return s.sessionRepo.GetSessions(ctx, facilityID)
}
