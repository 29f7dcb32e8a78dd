package scheduler

import "github.com/daneverett/homeslate/internal/domain"

// Thresholds shared by both passes. These define category boundaries, not
// tunable preferences, so they stay constants.
const (
	// QuickWinMaxMin is the duration at or under which an item is deferred
	// to the quick-win pass.
	QuickWinMaxMin = 20
	// MomentumMaxMin is the duration at or under which a quick item earns
	// the momentum-builder bonus in an empty slot.
	MomentumMaxMin = 15
	// LongTaskMin is the duration above which a placed item counts as
	// "long" for the break-between-long bonus.
	LongTaskMin = 45
	// GapFillWindowMin is how close remaining capacity must be to the
	// item's duration to count as a precise gap fill.
	GapFillWindowMin = 10
	// QuickWinBaseConfidence is the starting confidence for every
	// quick-win candidate.
	QuickWinBaseConfidence = 50
)

// Weights holds the tunable scoring weights. The defaults are the
// empirically chosen values from the original planner; they are persisted
// per person on the capacity profile rather than hard-coded so they can be
// adjusted without a release.
type Weights struct {
	// Placement pass. Scores are costs: lower wins.
	DayStride      float64 // cost added per weekday ordinal
	QuickPenalty   float64 // cost added to items under QuickWinMaxMin
	FlexiblePrefer float64 // cost removed when the slot is a study slot

	// Quick-win pass. Scores are confidence: higher wins.
	BreakBetweenLong float64
	GapFill          float64
	MomentumBuilder  float64
	SubjectDiversity float64
	EarlyWeek        float64
}

// DefaultWeights returns the original heuristic constants.
func DefaultWeights() Weights {
	return Weights{
		DayStride:        10,
		QuickPenalty:     5,
		FlexiblePrefer:   2,
		BreakBetweenLong: 25,
		GapFill:          30,
		MomentumBuilder:  20,
		SubjectDiversity: 15,
		EarlyWeek:        10,
	}
}

// WeightsFromProfile maps a capacity profile's persisted weight overrides
// into scheduler weights.
func WeightsFromProfile(p *domain.CapacityProfile) Weights {
	if p == nil {
		return DefaultWeights()
	}
	return Weights{
		DayStride:        p.WeightDayStride,
		QuickPenalty:     p.WeightQuickPenalty,
		FlexiblePrefer:   p.WeightFlexiblePrefer,
		BreakBetweenLong: p.WeightBreakBetweenLong,
		GapFill:          p.WeightGapFill,
		MomentumBuilder:  p.WeightMomentumBuilder,
		SubjectDiversity: p.WeightSubjectDiversity,
		EarlyWeek:        p.WeightEarlyWeek,
	}
}
