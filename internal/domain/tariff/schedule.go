package tariff

import (
	"fmt"
	"sort"

	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TariffSchedule holds the rate bands a facility charges by, one ordered
// band list per day class. A facility has exactly one active schedule.
// The schedule is immutable for the lifetime of an invoicing call.
type TariffSchedule struct {
	FacilityID   string     `json:"facility_id"`
	WeekdayBands []RateBand `json:"weekday_bands"`
	WeekendBands []RateBand `json:"weekend_bands"`
}

// NewTariffSchedule creates a schedule for a facility
func NewTariffSchedule(facilityID string, weekdayBands, weekendBands []RateBand) *TariffSchedule {
	return &TariffSchedule{
		FacilityID:   facilityID,
		WeekdayBands: weekdayBands,
		WeekendBands: weekendBands,
	}
}

// bandsFor returns the band list for a day class
func (s *TariffSchedule) bandsFor(class DayClass) []RateBand {
	if class == DayClassWeekend {
		return s.WeekendBands
	}
	return s.WeekdayBands
}

// RateFor returns the hourly price applicable at the given hour for the
// given day class. Bands are tested in list order; a well-formed schedule
// has exactly one match per hour, so order affects only lookup cost.
// Returns shared.ErrNotFound when no band covers the hour, which means the
// schedule is malformed.
func (s *TariffSchedule) RateFor(class DayClass, hour int) (decimal.Decimal, error) {
	for _, band := range s.bandsFor(class) {
		if band.Contains(hour) {
			return band.PricePerHour, nil
		}
	}
	return decimal.Zero, shared.ErrNotFound
}

// Validate checks that each day-class's bands cover every hour 0-24 with
// no gaps and no overlaps. Schedules are validated eagerly when loaded;
// a schedule that bypasses validation still fails fatally during pricing.
func (s *TariffSchedule) Validate() error {
	if err := validateBands(DayClassWeekday, s.WeekdayBands); err != nil {
		return err
	}
	return validateBands(DayClassWeekend, s.WeekendBands)
}

func validateBands(class DayClass, bands []RateBand) error {
	if len(bands) == 0 {
		return shared.NewDomainError("MALFORMED_TARIFF_SCHEDULE",
			fmt.Sprintf("%s schedule has no rate bands", class))
	}

	for _, band := range bands {
		if err := band.Validate(); err != nil {
			return shared.NewDomainError("MALFORMED_TARIFF_SCHEDULE",
				fmt.Sprintf("%s schedule: %v", class, err))
		}
	}

	sorted := make([]RateBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartHour < sorted[j].StartHour })

	if sorted[0].StartHour != 0 {
		return shared.NewDomainError("MALFORMED_TARIFF_SCHEDULE",
			fmt.Sprintf("%s schedule: hours 0-%d are not covered", class, sorted[0].StartHour))
	}
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.StartHour < prev.EndHour {
			return shared.NewDomainError("MALFORMED_TARIFF_SCHEDULE",
				fmt.Sprintf("%s schedule: bands [%d,%d) and [%d,%d) overlap",
					class, prev.StartHour, prev.EndHour, cur.StartHour, cur.EndHour))
		}
		if cur.StartHour > prev.EndHour {
			return shared.NewDomainError("MALFORMED_TARIFF_SCHEDULE",
				fmt.Sprintf("%s schedule: hours %d-%d are not covered", class, prev.EndHour, cur.StartHour))
		}
	}
	if last := sorted[len(sorted)-1]; last.EndHour != 24 {
		return shared.NewDomainError("MALFORMED_TARIFF_SCHEDULE",
			fmt.Sprintf("%s schedule: hours %d-24 are not covered", class, last.EndHour))
	}
	return nil
}
