package memory

import (
	"context"

	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/shopspring/decimal"
)

// SeedFacilityStore returns a facility store populated with the demo
// tariff profiles: cheap weekday nights, a day rate from hour 7, and a
// weekend profile that drops again late in the evening.
func SeedFacilityStore() *FacilityStore {
	store := NewFacilityStore()
	ctx := context.Background()

	_ = store.SaveSchedule(ctx, tariff.NewTariffSchedule("pf001",
		[]tariff.RateBand{
			tariff.NewRateBand(0, 7, decimal.NewFromFloat(0.5)),
			tariff.NewRateBand(7, 18, decimal.NewFromFloat(2.5)),
			tariff.NewRateBand(18, 24, decimal.NewFromFloat(1.0)),
		},
		[]tariff.RateBand{
			tariff.NewRateBand(0, 7, decimal.NewFromFloat(0.8)),
			tariff.NewRateBand(7, 21, decimal.NewFromFloat(2.8)),
			tariff.NewRateBand(21, 24, decimal.NewFromFloat(1.8)),
		},
	))

	_ = store.SaveSchedule(ctx, tariff.NewTariffSchedule("pf002",
		[]tariff.RateBand{
			tariff.NewRateBand(0, 24, decimal.NewFromFloat(2.0)),
		},
		[]tariff.RateBand{
			tariff.NewRateBand(0, 24, decimal.NewFromFloat(1.5)),
		},
	))

	return store
}

// SeedCustomerStore returns a customer store populated with demo customers
func SeedCustomerStore() *CustomerStore {
	store := NewCustomerStore()
	ctx := context.Background()

	_ = store.SaveCustomer(ctx, &parking.Customer{ID: "c001", Name: "Alice Martens"})
	_ = store.SaveCustomer(ctx, &parking.Customer{ID: "c002", Name: "Bram de Vries"})

	return store
}
