package store

import "strconv"

const (
	stageIDPrefix = "s"
	stepIDPrefix  = "t"
)

// newID probes prefix+"1", prefix+"2", ... and returns the lowest candidate
// not present in existing. It does not reserve the identifier; callers insert
// the new entity before releasing the store lock.
func newID(prefix string, existing map[string]struct{}) string {
	for i := 1; ; i++ {
		candidate := prefix + strconv.Itoa(i)
		if _, ok := existing[candidate]; !ok {
			return candidate
		}
	}
}

// stageIDs collects stage identifiers across every journey. Allocation is
// global-uniqueness-scoped, not per-parent.
func (s *JourneyStore) stageIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, journeyID := range s.order {
		for _, stage := range s.journeys[journeyID].Stages {
			ids[stage.StageID] = struct{}{}
		}
	}
	return ids
}

func (s *JourneyStore) stepIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, journeyID := range s.order {
		for _, stage := range s.journeys[journeyID].Stages {
			for _, step := range stage.Steps {
				ids[step.StepID] = struct{}{}
			}
		}
	}
	return ids
}
