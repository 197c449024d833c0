package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/journey-backend/internal/types"
)

type seedFile struct {
	Journeys []*types.Journey `yaml:"journeys"`
}

// DefaultSeed is the demo journey the service ships with.
func DefaultSeed() []*types.Journey {
	return []*types.Journey{
		{
			JourneyID: "123",
			Name:      "ISO27001 Readiness",
			Stages: []*types.Stage{
				{
					StageID: "s1",
					Name:    "Initial Scoping",
					Steps: []*types.Step{
						{StepID: "t1", Name: "Kickoff Call", Status: types.StatusCompleted},
						{StepID: "t2", Name: "Define Scope", Status: types.StatusInProgress},
					},
				},
				{
					StageID: "s2",
					Name:    "Onboarding",
					Steps: []*types.Step{
						{StepID: "t3", Name: "Connect AWS", Status: types.StatusNotStarted},
					},
				},
			},
		},
	}
}

// LoadSeedFile parses a YAML file with a top-level `journeys` list.
func LoadSeedFile(path string) ([]*types.Journey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var parsed seedFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return parsed.Journeys, nil
}
