package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/journey-backend/internal/services"
)

type StageHandler struct {
	svc services.JourneyService
}

func NewStageHandler(svc services.JourneyService) *StageHandler {
	return &StageHandler{svc: svc}
}

type addStageRequest struct {
	Name string `json:"name"`
}

// POST /api/journeys/:id/stages
func (h *StageHandler) AddStage(c *gin.Context) {
	var req addStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", fmt.Errorf("invalid request body: %w", err))
		return
	}
	stageID, err := h.svc.AddStage(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"ok": true, "stage_id": stageID})
}

// DELETE /api/stages/:id
func (h *StageHandler) DeleteStage(c *gin.Context) {
	if err := h.svc.DeleteStage(c.Request.Context(), c.Param("id")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"ok": true})
}
