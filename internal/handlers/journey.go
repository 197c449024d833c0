package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/journey-backend/internal/services"
)

type JourneyHandler struct {
	svc services.JourneyService
}

func NewJourneyHandler(svc services.JourneyService) *JourneyHandler {
	return &JourneyHandler{svc: svc}
}

// GET /api/journeys/:id
func (h *JourneyHandler) GetJourney(c *gin.Context) {
	journey, err := h.svc.GetJourney(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, journey)
}
