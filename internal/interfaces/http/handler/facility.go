package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apptariff "github.com/mobilitree/backend/internal/application/tariff"
	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/mobilitree/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// FacilityHandler handles facility tariff API endpoints
type FacilityHandler struct {
	BaseHandler
	scheduleService *apptariff.ScheduleService
}

// NewFacilityHandler creates a new FacilityHandler
func NewFacilityHandler(scheduleService *apptariff.ScheduleService) *FacilityHandler {
	return &FacilityHandler{
		scheduleService: scheduleService,
	}
}

// RegisterRoutes registers facility tariff routes
func (h *FacilityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	facilities := rg.Group("/facilities")
	{
		facilities.GET("/:facilityId/tariff", h.Get)
		facilities.PUT("/:facilityId/tariff", h.Upsert)
	}
}

// RateBandRequest represents one rate band in a tariff schedule
type RateBandRequest struct {
	StartHour    int     `json:"start_hour" binding:"min=0,max=23"`
	EndHour      int     `json:"end_hour" binding:"required,min=1,max=24"`
	PricePerHour float64 `json:"price_per_hour" binding:"min=0"`
}

// UpsertScheduleRequest represents a request to replace a facility's tariff schedule
type UpsertScheduleRequest struct {
	WeekdayBands []RateBandRequest `json:"weekday_bands" binding:"required,min=1,dive"`
	WeekendBands []RateBandRequest `json:"weekend_bands" binding:"required,min=1,dive"`
}

// RateBandResponse represents one rate band in a schedule response
type RateBandResponse struct {
	StartHour    int    `json:"start_hour"`
	EndHour      int    `json:"end_hour"`
	PricePerHour string `json:"price_per_hour"`
}

// ScheduleResponse represents a facility's active tariff schedule
type ScheduleResponse struct {
	FacilityID   string             `json:"facility_id"`
	WeekdayBands []RateBandResponse `json:"weekday_bands"`
	WeekendBands []RateBandResponse `json:"weekend_bands"`
}

func toBands(reqs []RateBandRequest) []tariff.RateBand {
	bands := make([]tariff.RateBand, len(reqs))
	for i, r := range reqs {
		bands[i] = tariff.RateBand{
			StartHour:    r.StartHour,
			EndHour:      r.EndHour,
			PricePerHour: decimal.NewFromFloat(r.PricePerHour),
		}
	}
	return bands
}

func toBandResponses(bands []tariff.RateBand) []RateBandResponse {
	responses := make([]RateBandResponse, len(bands))
	for i, b := range bands {
		responses[i] = RateBandResponse{
			StartHour:    b.StartHour,
			EndHour:      b.EndHour,
			PricePerHour: b.PricePerHour.String(),
		}
	}
	return responses
}

// Get returns the facility's active tariff schedule
func (h *FacilityHandler) Get(c *gin.Context) {
	facilityID := c.Param("facilityId")

	schedule, err := h.scheduleService.GetSchedule(c.Request.Context(), facilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ScheduleResponse{
		FacilityID:   schedule.FacilityID,
		WeekdayBands: toBandResponses(schedule.WeekdayBands),
		WeekendBands: toBandResponses(schedule.WeekendBands),
	})
}

// Upsert validates and replaces the facility's tariff schedule
func (h *FacilityHandler) Upsert(c *gin.Context) {
	facilityID := c.Param("facilityId")

	var req UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	schedule := tariff.NewTariffSchedule(facilityID, toBands(req.WeekdayBands), toBands(req.WeekendBands))
	if err := h.scheduleService.UpsertSchedule(c.Request.Context(), schedule); err != nil {
		// On upsert a malformed schedule is bad input, not a server fault
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "MALFORMED_TARIFF_SCHEDULE" {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, domainErr.Message)
			return
		}
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
