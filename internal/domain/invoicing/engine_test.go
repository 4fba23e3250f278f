package invoicing

import (
	"testing"
	"time"

	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// testSchedule mirrors the profile the service was originally seeded with:
// cheap weekday nights, a day rate from hour 7, and a flat-ish weekend.
func testSchedule() *tariff.TariffSchedule {
	return tariff.NewTariffSchedule("pf001",
		[]tariff.RateBand{
			{StartHour: 0, EndHour: 7, PricePerHour: price(0.5)},
			{StartHour: 7, EndHour: 24, PricePerHour: price(2.5)},
		},
		[]tariff.RateBand{
			{StartHour: 0, EndHour: 24, PricePerHour: price(1.8)},
		},
	)
}

func TestPriceBillsEveryBegunHour(t *testing.T) {
	engine := NewPricingEngine()

	// Saturday 2018-12-15, weekend rate 1.8/hr
	start := time.Date(2018, 12, 15, 12, 25, 0, 0, time.UTC)
	session := parking.NewSession("some customer", "pf001", start, start.Add(time.Hour))

	amount, err := engine.Price(session, testSchedule())
	require.NoError(t, err)
	assert.True(t, amount.Amount().Equal(price(1.8)), "one begun hour billed in full, got %s", amount)
}

func TestPriceSpanningRateBands(t *testing.T) {
	engine := NewPricingEngine()
	schedule := tariff.NewTariffSchedule("pf001",
		[]tariff.RateBand{
			{StartHour: 0, EndHour: 7, PricePerHour: price(0.8)},
			{StartHour: 7, EndHour: 24, PricePerHour: price(2.8)},
		},
		[]tariff.RateBand{
			{StartHour: 0, EndHour: 24, PricePerHour: price(1.8)},
		},
	)

	// Monday 2018-12-17, 06:00-10:00: 0.8 + 2.8 + 2.8 + 2.8 = 9.2
	start := time.Date(2018, 12, 17, 6, 0, 0, 0, time.UTC)
	session := parking.NewSession("c003", "pf001", start, start.Add(4*time.Hour))

	amount, err := engine.Price(session, schedule)
	require.NoError(t, err)
	assert.True(t, amount.Amount().Equal(price(9.2)), "expected 9.2, got %s", amount)
}

func TestPriceSpanningWeekendIntoWeekday(t *testing.T) {
	engine := NewPricingEngine()

	// Sunday 2018-12-16 21:00 to Monday 2018-12-17 10:00.
	// Weekend 21-24 at 1.8, weekday 0-7 at 0.5, weekday 7-10 at 2.5:
	// 3*1.8 + 7*0.5 + 3*2.5 = 16.4
	start := time.Date(2018, 12, 16, 21, 0, 0, 0, time.UTC)
	end := time.Date(2018, 12, 17, 10, 0, 0, 0, time.UTC)
	session := parking.NewSession("c004", "pf001", start, end)

	amount, err := engine.Price(session, testSchedule())
	require.NoError(t, err)
	assert.True(t, amount.Amount().Equal(price(16.4)), "expected 16.4, got %s", amount)
}

func TestPriceDegenerateSession(t *testing.T) {
	engine := NewPricingEngine()
	start := time.Date(2018, 12, 17, 10, 0, 0, 0, time.UTC)

	t.Run("zero-length session prices to zero", func(t *testing.T) {
		session := parking.NewSession("c001", "pf001", start, start)
		amount, err := engine.Price(session, testSchedule())
		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("inverted session prices to zero", func(t *testing.T) {
		session := parking.NewSession("c001", "pf001", start, start.Add(-2*time.Hour))
		amount, err := engine.Price(session, testSchedule())
		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})
}

func TestPriceMalformedScheduleIsFatal(t *testing.T) {
	engine := NewPricingEngine()
	gappy := tariff.NewTariffSchedule("pf001",
		[]tariff.RateBand{{StartHour: 0, EndHour: 7, PricePerHour: price(0.5)}},
		[]tariff.RateBand{{StartHour: 0, EndHour: 24, PricePerHour: price(1.8)}},
	)

	// Monday 06:00-09:00 walks into the uncovered hours from 7 on
	start := time.Date(2018, 12, 17, 6, 0, 0, 0, time.UTC)
	session := parking.NewSession("c001", "pf001", start, start.Add(3*time.Hour))

	_, err := engine.Price(session, gappy)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MALFORMED_TARIFF_SCHEDULE", domainErr.Code)
	assert.Contains(t, err.Error(), "hour 7")
}

func TestPricePreservesSubUnitPrecision(t *testing.T) {
	engine := NewPricingEngine()
	schedule := tariff.NewTariffSchedule("pf001",
		[]tariff.RateBand{{StartHour: 0, EndHour: 24, PricePerHour: price(0.1)}},
		[]tariff.RateBand{{StartHour: 0, EndHour: 24, PricePerHour: price(0.1)}},
	)

	// 3 hours at 0.1: exact decimal sum, not a float approximation
	start := time.Date(2018, 12, 17, 1, 0, 0, 0, time.UTC)
	session := parking.NewSession("c001", "pf001", start, start.Add(3*time.Hour))

	amount, err := engine.Price(session, schedule)
	require.NoError(t, err)
	assert.Equal(t, "0.3", amount.Amount().String())
}
