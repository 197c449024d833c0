package store

import (
	"math"

	"github.com/yungbote/journey-backend/internal/types"
)

// CalcPct maps step statuses to weights, averages them, and returns the
// percentage rounded half-to-even. The rounding rule is user-visible and must
// not drift: 12.5 rounds to 12, 37.5 rounds to 38.
func CalcPct(steps []*types.Step) int {
	if len(steps) == 0 {
		return 0
	}
	var total float64
	for _, step := range steps {
		total += step.Status.Weight()
	}
	return int(math.RoundToEven(total / float64(len(steps)) * 100))
}

// Recompute refreshes the completion percentage of every stage in the
// journey, then the journey-level percentage over the concatenation of all
// steps across stages. A journey with one empty stage and one full stage is
// weighted by raw step count, not averaged per stage.
func Recompute(journey *types.Journey) {
	var all []*types.Step
	for _, stage := range journey.Stages {
		stage.CompletionPct = CalcPct(stage.Steps)
		all = append(all, stage.Steps...)
	}
	journey.CompletionPct = CalcPct(all)
}
