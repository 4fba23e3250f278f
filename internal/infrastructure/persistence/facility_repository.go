package persistence

import (
	"context"
	"errors"

	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/mobilitree/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFacilityRepository implements tariff.ScheduleRepository using GORM
type GormFacilityRepository struct {
	db *gorm.DB
}

// NewGormFacilityRepository creates a new GormFacilityRepository
func NewGormFacilityRepository(db *gorm.DB) *GormFacilityRepository {
	return &GormFacilityRepository{db: db}
}

// GetSchedule retrieves the active tariff schedule for a facility.
// Returns shared.ErrNotFound when the facility is unknown.
func (r *GormFacilityRepository) GetSchedule(ctx context.Context, facilityID string) (*tariff.TariffSchedule, error) {
	var model models.FacilityModel
	if err := r.db.WithContext(ctx).First(&model, "facility_id = ?", facilityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveSchedule creates or replaces the schedule for a facility.
// Schedules are validated before they are persisted so that pricing never
// sees a malformed one from this store.
func (r *GormFacilityRepository) SaveSchedule(ctx context.Context, schedule *tariff.TariffSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	model := models.FacilityModelFromDomain(schedule)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "facility_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weekday_bands", "weekend_bands", "updated_at"}),
		}).
		Create(model).Error
}

// Ensure GormFacilityRepository implements ScheduleRepository
var _ tariff.ScheduleRepository = (*GormFacilityRepository)(nil)
