package store

import (
	"fmt"
	"sync"

	"github.com/yungbote/journey-backend/internal/logger"
	apperrors "github.com/yungbote/journey-backend/internal/pkg/errors"
	"github.com/yungbote/journey-backend/internal/types"
)

// JourneyStore is the in-memory repository of journeys. A single mutex covers
// every operation end to end (locate, mutate, recompute): identifier
// allocation is check-then-act and is not safe without exclusion.
type JourneyStore struct {
	mu       sync.Mutex
	log      *logger.Logger
	journeys map[string]*types.Journey
	order    []string
}

func New(baseLog *logger.Logger) *JourneyStore {
	return &JourneyStore{
		log:      baseLog.With("component", "JourneyStore"),
		journeys: make(map[string]*types.Journey),
	}
}

// Put inserts or replaces a journey and recomputes its percentages. This is
// the seed path; there is no journey creation endpoint.
func (s *JourneyStore) Put(journey *types.Journey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if journey.Stages == nil {
		journey.Stages = []*types.Stage{}
	}
	for _, stage := range journey.Stages {
		if stage.Steps == nil {
			stage.Steps = []*types.Step{}
		}
	}
	if _, exists := s.journeys[journey.JourneyID]; !exists {
		s.order = append(s.order, journey.JourneyID)
	}
	s.journeys[journey.JourneyID] = journey
	Recompute(journey)
}

// GetJourney returns a deep copy of the journey with freshly recomputed
// percentages.
func (s *JourneyStore) GetJourney(journeyID string) (*types.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journey, ok := s.journeys[journeyID]
	if !ok {
		return nil, fmt.Errorf("journey %q: %w", journeyID, apperrors.ErrNotFound)
	}
	Recompute(journey)
	return journey.Clone(), nil
}

func (s *JourneyStore) UpdateStepStatus(stepID string, status types.StepStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	journey, _, step := s.locateStep(stepID)
	if step == nil {
		return fmt.Errorf("step %q: %w", stepID, apperrors.ErrNotFound)
	}
	step.Status = status
	Recompute(journey)
	return nil
}

// AddStage appends a stage with an empty step list and returns its new
// identifier. Allocation scans stage ids across all journeys.
func (s *JourneyStore) AddStage(journeyID, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journey, ok := s.journeys[journeyID]
	if !ok {
		return "", fmt.Errorf("journey %q: %w", journeyID, apperrors.ErrNotFound)
	}
	stageID := newID(stageIDPrefix, s.stageIDs())
	journey.Stages = append(journey.Stages, &types.Stage{
		StageID: stageID,
		Name:    name,
		Steps:   []*types.Step{},
	})
	Recompute(journey)
	s.log.Debug("stage added", "journey_id", journeyID, "stage_id", stageID)
	return stageID, nil
}

// DeleteStage removes the stage and every step it owns.
func (s *JourneyStore) DeleteStage(stageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	journey, stage := s.locateStage(stageID)
	if stage == nil {
		return fmt.Errorf("stage %q: %w", stageID, apperrors.ErrNotFound)
	}
	kept := make([]*types.Stage, 0, len(journey.Stages)-1)
	for _, candidate := range journey.Stages {
		if candidate.StageID != stageID {
			kept = append(kept, candidate)
		}
	}
	journey.Stages = kept
	Recompute(journey)
	s.log.Debug("stage deleted", "journey_id", journey.JourneyID, "stage_id", stageID)
	return nil
}

func (s *JourneyStore) AddStep(stageID, name string, status types.StepStatus) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journey, stage := s.locateStage(stageID)
	if stage == nil {
		return "", fmt.Errorf("stage %q: %w", stageID, apperrors.ErrNotFound)
	}
	stepID := newID(stepIDPrefix, s.stepIDs())
	stage.Steps = append(stage.Steps, &types.Step{
		StepID: stepID,
		Name:   name,
		Status: status,
	})
	Recompute(journey)
	s.log.Debug("step added", "journey_id", journey.JourneyID, "stage_id", stageID, "step_id", stepID)
	return stepID, nil
}

func (s *JourneyStore) DeleteStep(stepID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	journey, stage, step := s.locateStep(stepID)
	if step == nil {
		return fmt.Errorf("step %q: %w", stepID, apperrors.ErrNotFound)
	}
	kept := make([]*types.Step, 0, len(stage.Steps)-1)
	for _, candidate := range stage.Steps {
		if candidate.StepID != stepID {
			kept = append(kept, candidate)
		}
	}
	stage.Steps = kept
	Recompute(journey)
	s.log.Debug("step deleted", "journey_id", journey.JourneyID, "stage_id", stage.StageID, "step_id", stepID)
	return nil
}
