package tariff

import (
	"context"

	"github.com/mobilitree/backend/internal/domain/tariff"
	"go.uber.org/zap"
)

// ScheduleService manages facility tariff schedules
type ScheduleService struct {
	scheduleRepo tariff.ScheduleRepository
	logger       *zap.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo tariff.ScheduleRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetSchedule returns the active schedule for a facility.
// Returns shared.ErrNotFound when the facility is unknown.
func (s *ScheduleService) GetSchedule(ctx context.Context, facilityID string) (*tariff.TariffSchedule, error) {
	return s.scheduleRepo.GetSchedule(ctx, facilityID)
}

// UpsertSchedule validates and stores the schedule for a facility,
// replacing any previous one
func (s *ScheduleService) UpsertSchedule(ctx context.Context, schedule *tariff.TariffSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	if err := s.scheduleRepo.SaveSchedule(ctx, schedule); err != nil {
		return err
	}

	s.logger.Info("Tariff schedule updated",
		zap.String("facility_id", schedule.FacilityID),
		zap.Int("weekday_bands", len(schedule.WeekdayBands)),
		zap.Int("weekend_bands", len(schedule.WeekendBands)),
	)
	return nil
}
