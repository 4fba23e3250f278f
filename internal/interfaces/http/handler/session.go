package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	appparking "github.com/mobilitree/backend/internal/application/parking"
	"github.com/mobilitree/backend/internal/domain/parking"
)

// SessionHandler handles parking session API endpoints
type SessionHandler struct {
	BaseHandler
	sessionService *appparking.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *appparking.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	facilities := rg.Group("/facilities")
	{
		facilities.GET("/:facilityId/sessions", h.List)
		facilities.POST("/:facilityId/sessions", h.Create)
	}
}

// CreateSessionRequest represents a completed session reported by the gate system
type CreateSessionRequest struct {
	CustomerID string    `json:"customer_id" binding:"required,min=1,max=64"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

// SessionResponse represents a recorded session
type SessionResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	FacilityID string    `json:"facility_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

func toSessionResponse(s *parking.Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID.String(),
		CustomerID: s.CustomerID,
		FacilityID: s.FacilityID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

// Create records a completed session at the facility
func (h *SessionHandler) Create(c *gin.Context) {
	facilityID := c.Param("facilityId")

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	session, err := h.sessionService.RecordSession(c.Request.Context(), req.CustomerID, facilityID, req.StartTime, req.EndTime)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toSessionResponse(session))
}

// List returns all sessions recorded at the facility
func (h *SessionHandler) List(c *gin.Context) {
	facilityID := c.Param("facilityId")

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), facilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = toSessionResponse(&sessions[i])
	}
	h.Success(c, responses)
}
