package memory

import (
	"context"
	"sync"

	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/tariff"
)

// FacilityStore is an in-memory tariff.ScheduleRepository
type FacilityStore struct {
	mu        sync.RWMutex
	schedules map[string]*tariff.TariffSchedule
}

// NewFacilityStore creates an empty facility store
func NewFacilityStore() *FacilityStore {
	return &FacilityStore{
		schedules: make(map[string]*tariff.TariffSchedule),
	}
}

// GetSchedule returns the tariff schedule for a facility, or
// shared.ErrNotFound when the facility is unknown
func (s *FacilityStore) GetSchedule(_ context.Context, facilityID string) (*tariff.TariffSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedule, ok := s.schedules[facilityID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return schedule, nil
}

// SaveSchedule stores a facility's schedule. Schedules are validated
// eagerly here so that malformed band lists surface at configuration
// time instead of mid-pricing.
func (s *FacilityStore) SaveSchedule(_ context.Context, schedule *tariff.TariffSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[schedule.FacilityID] = schedule
	return nil
}

var _ tariff.ScheduleRepository = (*FacilityStore)(nil)
