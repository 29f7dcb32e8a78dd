package domain

// CapacityProfile holds a person's per-day time ceilings and the
// heuristic weight overrides used by the allocator. The weights mirror
// the default scoring constants; they are persisted so the numbers can
// be tuned without a rebuild.
type CapacityProfile struct {
	PersonID           string
	DailyMaxMin        int
	SubjectDailyMaxMin int
	Distribution       DistributionPreference

	// Placement pass
	WeightDayStride      float64 // base score per weekday ordinal (lower total wins)
	WeightQuickPenalty   float64 // subtracted for items under the quick threshold
	WeightFlexiblePrefer float64 // subtracted when the slot is a study slot

	// Quick-win pass (higher confidence wins)
	WeightBreakBetweenLong float64
	WeightGapFill          float64
	WeightMomentumBuilder  float64
	WeightSubjectDiversity float64
	WeightEarlyWeek        float64
}

// DefaultCapacityProfile returns the profile used until a person sets
// their own ceilings.
func DefaultCapacityProfile(personID string) *CapacityProfile {
	return &CapacityProfile{
		PersonID:           personID,
		DailyMaxMin:        240,
		SubjectDailyMaxMin: 90,
		Distribution:       DistributeEven,

		WeightDayStride:      10,
		WeightQuickPenalty:   5,
		WeightFlexiblePrefer: 2,

		WeightBreakBetweenLong: 25,
		WeightGapFill:          30,
		WeightMomentumBuilder:  20,
		WeightSubjectDiversity: 15,
		WeightEarlyWeek:        10,
	}
}
