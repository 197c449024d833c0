package types

// StepStatus is the tri-state progress marker on a Step.
type StepStatus string

const (
	StatusNotStarted StepStatus = "NOT_STARTED"
	StatusInProgress StepStatus = "IN_PROGRESS"
	StatusCompleted  StepStatus = "COMPLETED"
)

// Valid reports whether s is one of the three recognized statuses.
func (s StepStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Weight maps a status to its contribution toward completion.
// Unrecognized statuses count as NOT_STARTED.
func (s StepStatus) Weight() float64 {
	switch s {
	case StatusInProgress:
		return 0.5
	case StatusCompleted:
		return 1.0
	}
	return 0.0
}

type Step struct {
	StepID string     `json:"step_id" yaml:"step_id"`
	Name   string     `json:"name" yaml:"name"`
	Status StepStatus `json:"status" yaml:"status"`
}

// Stage owns its steps exclusively. CompletionPct is derived from the step
// statuses and is never authoritative.
type Stage struct {
	StageID       string  `json:"stage_id" yaml:"stage_id"`
	Name          string  `json:"name" yaml:"name"`
	CompletionPct int     `json:"completion_pct" yaml:"completion_pct"`
	Steps         []*Step `json:"steps" yaml:"steps"`
}

type Journey struct {
	JourneyID     string   `json:"journey_id" yaml:"journey_id"`
	Name          string   `json:"name" yaml:"name"`
	CompletionPct int      `json:"completion_pct" yaml:"completion_pct"`
	Stages        []*Stage `json:"stages" yaml:"stages"`
}

// Clone returns a deep copy so callers can serialize a journey without
// holding the store lock.
func (j *Journey) Clone() *Journey {
	if j == nil {
		return nil
	}
	out := &Journey{
		JourneyID:     j.JourneyID,
		Name:          j.Name,
		CompletionPct: j.CompletionPct,
		Stages:        make([]*Stage, 0, len(j.Stages)),
	}
	for _, stage := range j.Stages {
		cs := &Stage{
			StageID:       stage.StageID,
			Name:          stage.Name,
			CompletionPct: stage.CompletionPct,
			Steps:         make([]*Step, 0, len(stage.Steps)),
		}
		for _, step := range stage.Steps {
			copied := *step
			cs.Steps = append(cs.Steps, &copied)
		}
		out.Stages = append(out.Stages, cs)
	}
	return out
}
