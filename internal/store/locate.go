package store

import "github.com/yungbote/journey-backend/internal/types"

// The hierarchy stores no parent back-references, so ownership is resolved by
// scanning journeys in insertion order. Identifiers are unique by
// construction, so at most one match exists. Callers must hold s.mu.

func (s *JourneyStore) locateStage(stageID string) (*types.Journey, *types.Stage) {
	for _, journeyID := range s.order {
		journey := s.journeys[journeyID]
		for _, stage := range journey.Stages {
			if stage.StageID == stageID {
				return journey, stage
			}
		}
	}
	return nil, nil
}

func (s *JourneyStore) locateStep(stepID string) (*types.Journey, *types.Stage, *types.Step) {
	for _, journeyID := range s.order {
		journey := s.journeys[journeyID]
		for _, stage := range journey.Stages {
			for _, step := range stage.Steps {
				if step.StepID == stepID {
					return journey, stage, step
				}
			}
		}
	}
	return nil, nil, nil
}
