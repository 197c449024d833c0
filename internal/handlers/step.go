package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/journey-backend/internal/services"
)

type StepHandler struct {
	svc services.JourneyService
}

func NewStepHandler(svc services.JourneyService) *StepHandler {
	return &StepHandler{svc: svc}
}

type updateStepRequest struct {
	Status string `json:"status"`
}

type addStepRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PATCH /api/steps/:id
func (h *StepHandler) UpdateStepStatus(c *gin.Context) {
	var req updateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := h.svc.UpdateStepStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"ok": true})
}

// POST /api/stages/:id/steps
func (h *StepHandler) AddStep(c *gin.Context) {
	var req addStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", fmt.Errorf("invalid request body: %w", err))
		return
	}
	stepID, err := h.svc.AddStep(c.Request.Context(), c.Param("id"), req.Name, req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"ok": true, "step_id": stepID})
}

// DELETE /api/steps/:id
func (h *StepHandler) DeleteStep(c *gin.Context) {
	if err := h.svc.DeleteStep(c.Request.Context(), c.Param("id")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"ok": true})
}
