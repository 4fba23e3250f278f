package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockSessionRepository creates a GormSessionRepository with a mocked SQL connection
func newMockSessionRepository(t *testing.T) (*GormSessionRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormSessionRepository(gormDB), mock, mockDB
}

func TestGormSessionRepository_GetSessions(t *testing.T) {
	t.Run("finds sessions for facility", func(t *testing.T) {
		repo, mock, mockDB := newMockSessionRepository(t)
		defer mockDB.Close()

		sessionID := uuid.New()
		start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
		end := start.Add(2 * time.Hour)

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "customer_id", "facility_id", "start_time", "end_time"}).
			AddRow(sessionID, start, start, "c001", "pf001", start, end)

		mock.ExpectQuery(`SELECT \* FROM "parking_sessions" WHERE facility_id = \$1 ORDER BY start_time ASC, id ASC`).
			WithArgs("pf001").
			WillReturnRows(rows)

		sessions, err := repo.GetSessions(context.Background(), "pf001")

		assert.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, sessionID, sessions[0].ID)
		assert.Equal(t, "c001", sessions[0].CustomerID)
		assert.Equal(t, "pf001", sessions[0].FacilityID)
		assert.True(t, end.Equal(sessions[0].EndTime))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for unknown facility", func(t *testing.T) {
		repo, mock, mockDB := newMockSessionRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "customer_id", "facility_id", "start_time", "end_time"})

		mock.ExpectQuery(`SELECT \* FROM "parking_sessions" WHERE facility_id = \$1 ORDER BY start_time ASC, id ASC`).
			WithArgs("pf999").
			WillReturnRows(rows)

		sessions, err := repo.GetSessions(context.Background(), "pf999")

		assert.NoError(t, err)
		assert.Empty(t, sessions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSessionRepository_AddSession(t *testing.T) {
	t.Run("inserts session", func(t *testing.T) {
		repo, mock, mockDB := newMockSessionRepository(t)
		defer mockDB.Close()

		start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
		session := parking.NewSession("c001", "pf001", start, start.Add(time.Hour))

		mock.ExpectExec(`INSERT INTO "parking_sessions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddSession(context.Background(), session)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
