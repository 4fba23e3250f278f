package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockFacilityRepository creates a GormFacilityRepository with a mocked SQL connection
func newMockFacilityRepository(t *testing.T) (*GormFacilityRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormFacilityRepository(gormDB), mock, mockDB
}

func fullDaySchedule(facilityID string) *tariff.TariffSchedule {
	return tariff.NewTariffSchedule(facilityID,
		[]tariff.RateBand{
			{StartHour: 0, EndHour: 7, PricePerHour: decimal.RequireFromString("0.5")},
			{StartHour: 7, EndHour: 24, PricePerHour: decimal.RequireFromString("2.5")},
		},
		[]tariff.RateBand{
			{StartHour: 0, EndHour: 24, PricePerHour: decimal.RequireFromString("1.8")},
		},
	)
}

func TestGormFacilityRepository_GetSchedule(t *testing.T) {
	t.Run("finds existing facility", func(t *testing.T) {
		repo, mock, mockDB := newMockFacilityRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"facility_id", "weekday_bands", "weekend_bands", "created_at", "updated_at"}).
			AddRow("pf001",
				`[{"start_hour":0,"end_hour":24,"price_per_hour":"2"}]`,
				`[{"start_hour":0,"end_hour":24,"price_per_hour":"1.5"}]`,
				now, now)

		mock.ExpectQuery(`SELECT \* FROM "facilities" WHERE facility_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("pf001", 1).
			WillReturnRows(rows)

		schedule, err := repo.GetSchedule(context.Background(), "pf001")

		assert.NoError(t, err)
		require.NotNil(t, schedule)
		assert.Equal(t, "pf001", schedule.FacilityID)
		require.Len(t, schedule.WeekdayBands, 1)
		assert.Equal(t, 0, schedule.WeekdayBands[0].StartHour)
		assert.Equal(t, 24, schedule.WeekdayBands[0].EndHour)
		assert.True(t, schedule.WeekdayBands[0].PricePerHour.Equal(decimal.NewFromInt(2)))
		require.Len(t, schedule.WeekendBands, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown facility", func(t *testing.T) {
		repo, mock, mockDB := newMockFacilityRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "facilities" WHERE facility_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("pf999", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		schedule, err := repo.GetSchedule(context.Background(), "pf999")

		assert.Nil(t, schedule)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFacilityRepository_SaveSchedule(t *testing.T) {
	t.Run("upserts a valid schedule", func(t *testing.T) {
		repo, mock, mockDB := newMockFacilityRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "facilities" .* ON CONFLICT \("facility_id"\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveSchedule(context.Background(), fullDaySchedule("pf001"))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a schedule with uncovered hours", func(t *testing.T) {
		repo, mock, mockDB := newMockFacilityRepository(t)
		defer mockDB.Close()

		schedule := tariff.NewTariffSchedule("pf001",
			[]tariff.RateBand{{StartHour: 0, EndHour: 12, PricePerHour: decimal.NewFromInt(1)}},
			[]tariff.RateBand{{StartHour: 0, EndHour: 24, PricePerHour: decimal.NewFromInt(1)}},
		)

		err := repo.SaveSchedule(context.Background(), schedule)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MALFORMED_TARIFF_SCHEDULE", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
