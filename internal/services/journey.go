package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/journey-backend/internal/logger"
	apperrors "github.com/yungbote/journey-backend/internal/pkg/errors"
	"github.com/yungbote/journey-backend/internal/store"
	"github.com/yungbote/journey-backend/internal/types"
)

type JourneyService interface {
	GetJourney(ctx context.Context, journeyID string) (*types.Journey, error)
	UpdateStepStatus(ctx context.Context, stepID, status string) error
	AddStage(ctx context.Context, journeyID, name string) (string, error)
	DeleteStage(ctx context.Context, stageID string) error
	AddStep(ctx context.Context, stageID, name, status string) (string, error)
	DeleteStep(ctx context.Context, stepID string) error
}

type journeyService struct {
	store *store.JourneyStore
	log   *logger.Logger
}

func NewJourneyService(st *store.JourneyStore, baseLog *logger.Logger) JourneyService {
	return &journeyService{
		store: st,
		log:   baseLog.With("service", "JourneyService"),
	}
}

func (s *journeyService) GetJourney(ctx context.Context, journeyID string) (*types.Journey, error) {
	return s.store.GetJourney(journeyID)
}

func (s *journeyService) UpdateStepStatus(ctx context.Context, stepID, status string) error {
	parsed := types.StepStatus(status)
	if !parsed.Valid() {
		return fmt.Errorf("status %q: %w", status, apperrors.ErrInvalidArgument)
	}
	if err := s.store.UpdateStepStatus(stepID, parsed); err != nil {
		return err
	}
	s.log.Info("step status updated", "step_id", stepID, "status", status)
	return nil
}

func (s *journeyService) AddStage(ctx context.Context, journeyID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("stage name required: %w", apperrors.ErrInvalidArgument)
	}
	stageID, err := s.store.AddStage(journeyID, name)
	if err != nil {
		return "", err
	}
	s.log.Info("stage added", "journey_id", journeyID, "stage_id", stageID)
	return stageID, nil
}

func (s *journeyService) DeleteStage(ctx context.Context, stageID string) error {
	if err := s.store.DeleteStage(stageID); err != nil {
		return err
	}
	s.log.Info("stage deleted", "stage_id", stageID)
	return nil
}

func (s *journeyService) AddStep(ctx context.Context, stageID, name, status string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("step name required: %w", apperrors.ErrInvalidArgument)
	}
	// Omitted status defaults to NOT_STARTED.
	if status == "" {
		status = string(types.StatusNotStarted)
	}
	parsed := types.StepStatus(status)
	if !parsed.Valid() {
		return "", fmt.Errorf("status %q: %w", status, apperrors.ErrInvalidArgument)
	}
	stepID, err := s.store.AddStep(stageID, name, parsed)
	if err != nil {
		return "", err
	}
	s.log.Info("step added", "stage_id", stageID, "step_id", stepID)
	return stepID, nil
}

func (s *journeyService) DeleteStep(ctx context.Context, stepID string) error {
	if err := s.store.DeleteStep(stepID); err != nil {
		return err
	}
	s.log.Info("step deleted", "step_id", stepID)
	return nil
}
