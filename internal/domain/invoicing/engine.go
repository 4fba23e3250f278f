package invoicing

import (
	"errors"
	"time"

	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/shared/valueobject"
	"github.com/mobilitree/backend/internal/domain/tariff"
)

// PricingEngine derives a billed amount for a session from a facility's
// tariff schedule. It is a pure calculation over its inputs: no I/O and
// no shared state, so a single instance is safe for concurrent use.
type PricingEngine struct{}

// NewPricingEngine creates a pricing engine
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// Price walks the session's time span in one-hour steps from StartTime
// and sums the rate applicable to each begun hour. Every begun hour is
// billed in full at that hour's rate; there is no pro-rating of the final
// partial hour. Each step resolves its own day class, so a span crossing
// midnight from a weekend into a weekday is priced hour by hour against
// the correct band list.
//
// A degenerate session (start >= end) prices to zero without error. A
// schedule with no band covering a visited hour yields a fatal
// MALFORMED_TARIFF_SCHEDULE error.
func (e *PricingEngine) Price(session *parking.Session, schedule *tariff.TariffSchedule) (valueobject.Money, error) {
	if session.IsDegenerate() {
		return valueobject.ZeroEUR(), nil
	}

	total := valueobject.ZeroEUR()
	for current := session.StartTime; current.Before(session.EndTime); current = current.Add(time.Hour) {
		class := tariff.DayClassOf(current)
		rate, err := schedule.RateFor(class, current.Hour())
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return valueobject.Money{}, shared.NewMalformedScheduleError(class.String(), current.Hour())
			}
			return valueobject.Money{}, err
		}
		total = total.MustAdd(valueobject.NewMoneyEUR(rate))
	}
	return total, nil
}
