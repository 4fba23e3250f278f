package persistence

import (
	"context"

	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSessionRepository implements parking.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// GetSessions retrieves all sessions recorded at a facility, oldest first.
// An unknown facility yields an empty slice, not an error.
func (r *GormSessionRepository) GetSessions(ctx context.Context, facilityID string) ([]parking.Session, error) {
	var sessionModels []models.SessionModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("start_time ASC, id ASC").
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]parking.Session, len(sessionModels))
	for i, model := range sessionModels {
		sessions[i] = *model.ToDomain()
	}
	return sessions, nil
}

// AddSession records a completed session
func (r *GormSessionRepository) AddSession(ctx context.Context, session *parking.Session) error {
	model := models.SessionModelFromDomain(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// Ensure GormSessionRepository implements SessionRepository
var _ parking.SessionRepository = (*GormSessionRepository)(nil)
