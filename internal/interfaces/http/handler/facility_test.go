package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	apptariff "github.com/mobilitree/backend/internal/application/tariff"
	"github.com/mobilitree/backend/internal/infrastructure/persistence/memory"
	"github.com/mobilitree/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFacilityRouter(t *testing.T) *gin.Engine {
	t.Helper()

	service := apptariff.NewScheduleService(memory.SeedFacilityStore(), zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	NewFacilityHandler(service).RegisterRoutes(api)
	return router
}

func TestFacilityHandler_Get(t *testing.T) {
	t.Run("returns schedule", func(t *testing.T) {
		router := newFacilityRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/pf001/tariff", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool             `json:"success"`
			Data    ScheduleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "pf001", resp.Data.FacilityID)
		assert.NotEmpty(t, resp.Data.WeekdayBands)
		assert.NotEmpty(t, resp.Data.WeekendBands)
		assert.Equal(t, 0, resp.Data.WeekdayBands[0].StartHour)
	})

	t.Run("unknown facility returns 404", func(t *testing.T) {
		router := newFacilityRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/bogus/tariff", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFacilityHandler_Upsert(t *testing.T) {
	t.Run("accepts full-day schedule", func(t *testing.T) {
		router := newFacilityRouter(t)

		body := `{
			"weekday_bands": [
				{"start_hour": 0, "end_hour": 12, "price_per_hour": 1.0},
				{"start_hour": 12, "end_hour": 24, "price_per_hour": 2.0}
			],
			"weekend_bands": [
				{"start_hour": 0, "end_hour": 24, "price_per_hour": 1.5}
			]
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/facilities/pf009/tariff", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		// The schedule is now readable
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/v1/facilities/pf009/tariff", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects schedule with a gap", func(t *testing.T) {
		router := newFacilityRouter(t)

		body := `{
			"weekday_bands": [
				{"start_hour": 0, "end_hour": 12, "price_per_hour": 1.0}
			],
			"weekend_bands": [
				{"start_hour": 0, "end_hour": 24, "price_per_hour": 1.5}
			]
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/facilities/pf009/tariff", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		router := newFacilityRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/facilities/pf009/tariff", strings.NewReader(`{"weekday_bands": []}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
