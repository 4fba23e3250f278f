package tariff

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateBand is a half-open hour interval [StartHour, EndHour) in local civil
// time with an associated hourly price.
type RateBand struct {
	StartHour    int             `json:"start_hour"`
	EndHour      int             `json:"end_hour"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
}

// NewRateBand creates a rate band covering [startHour, endHour)
func NewRateBand(startHour, endHour int, pricePerHour decimal.Decimal) RateBand {
	return RateBand{
		StartHour:    startHour,
		EndHour:      endHour,
		PricePerHour: pricePerHour,
	}
}

// Contains returns true if the band's interval contains the given hour
func (b RateBand) Contains(hour int) bool {
	return hour >= b.StartHour && hour < b.EndHour
}

// Validate checks the band's bounds and price
func (b RateBand) Validate() error {
	if b.StartHour < 0 || b.StartHour > 23 {
		return fmt.Errorf("start hour %d out of range [0,23]", b.StartHour)
	}
	if b.EndHour < 1 || b.EndHour > 24 {
		return fmt.Errorf("end hour %d out of range [1,24]", b.EndHour)
	}
	if b.StartHour >= b.EndHour {
		return fmt.Errorf("start hour %d must be before end hour %d", b.StartHour, b.EndHour)
	}
	if b.PricePerHour.IsNegative() {
		return fmt.Errorf("price per hour %s cannot be negative", b.PricePerHour)
	}
	return nil
}
