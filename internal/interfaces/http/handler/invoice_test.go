package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appinvoicing "github.com/mobilitree/backend/internal/application/invoicing"
	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/infrastructure/persistence/memory"
	"github.com/mobilitree/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newInvoiceRouter(t *testing.T, sessions ...*parking.Session) *gin.Engine {
	t.Helper()

	sessionStore := memory.NewSessionStore()
	for _, s := range sessions {
		require.NoError(t, sessionStore.AddSession(context.Background(), s))
	}

	service := appinvoicing.NewInvoiceService(
		sessionStore,
		memory.SeedFacilityStore(),
		memory.SeedCustomerStore(),
		zap.NewNop(),
	)

	router := gin.New()
	api := router.Group("/api/v1")
	NewInvoiceHandler(service).RegisterRoutes(api)
	return router
}

func decodeResponse(t *testing.T, body []byte) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestInvoiceHandler_List(t *testing.T) {
	t.Run("unknown facility returns 400 with verbatim message", func(t *testing.T) {
		router := newInvoiceRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/bogus/invoices", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
		assert.Equal(t, "Invalid parking facility id 'bogus'", resp.Error.Message)
	})

	t.Run("facility without sessions returns empty list", func(t *testing.T) {
		router := newInvoiceRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/pf001/invoices", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		assert.True(t, resp.Success)

		invoices, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Empty(t, invoices)
	})

	t.Run("one invoice per customer", func(t *testing.T) {
		// Monday 2024-03-04, weekday rate 2.5 from 07:00
		start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
		router := newInvoiceRouter(t,
			parking.NewSession("c001", "pf001", start, start.Add(time.Hour)),
			parking.NewSession("c001", "pf001", start.Add(3*time.Hour), start.Add(4*time.Hour)),
			parking.NewSession("c002", "pf001", start, start.Add(time.Hour)),
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/pf001/invoices", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    []InvoiceResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)

		byCustomer := make(map[string]InvoiceResponse)
		for _, inv := range resp.Data {
			byCustomer[inv.CustomerID] = inv
		}
		assert.Equal(t, "5.00", byCustomer["c001"].Amount)
		assert.Equal(t, "2.50", byCustomer["c002"].Amount)
		assert.Equal(t, "EUR", byCustomer["c001"].Currency)
	})
}

func TestInvoiceHandler_Get(t *testing.T) {
	t.Run("returns single customer invoice", func(t *testing.T) {
		start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
		router := newInvoiceRouter(t,
			parking.NewSession("c001", "pf001", start, start.Add(time.Hour)),
			parking.NewSession("c002", "pf001", start, start.Add(2*time.Hour)),
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/pf001/invoices/c002", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool            `json:"success"`
			Data    InvoiceResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "c002", resp.Data.CustomerID)
		assert.Equal(t, "5.00", resp.Data.Amount)
	})

	t.Run("customer without sessions returns 404", func(t *testing.T) {
		router := newInvoiceRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/pf001/invoices/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})
}
