package tariff

import "context"

// ScheduleRepository defines the interface for resolving a facility's
// tariff schedule
type ScheduleRepository interface {
	// GetSchedule retrieves the active schedule for a facility.
	// Returns shared.ErrNotFound when the facility is unknown.
	GetSchedule(ctx context.Context, facilityID string) (*TariffSchedule, error)

	// SaveSchedule creates or replaces the schedule for a facility
	SaveSchedule(ctx context.Context, schedule *TariffSchedule) error
}
