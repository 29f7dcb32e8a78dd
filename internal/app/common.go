package app

import "github.com/daneverett/homeslate/internal/domain"

type PlacementReasonCode string

const (
	ReasonEarlyWeekday     PlacementReasonCode = "EARLY_WEEKDAY"
	ReasonFlexibleSlot     PlacementReasonCode = "FLEXIBLE_SLOT"
	ReasonQuickDeferred    PlacementReasonCode = "QUICK_DEFERRED"
	ReasonBreakBetweenLong PlacementReasonCode = "BREAK_BETWEEN_LONG"
	ReasonGapFill          PlacementReasonCode = "GAP_FILL"
	ReasonMomentumBuilder  PlacementReasonCode = "MOMENTUM_BUILDER"
	ReasonSubjectDiversity PlacementReasonCode = "SUBJECT_DIVERSITY"
	ReasonEarlyWeek        PlacementReasonCode = "EARLY_WEEK"
)

type PlacementReason struct {
	Code        PlacementReasonCode
	Message     string
	WeightDelta *float64
}

// Placement is one (item, slot) assignment produced by a plan run.
type Placement struct {
	ItemID      string
	Title       string
	Subject     string
	DurationMin int
	Priority    domain.PriorityTier
	Weekday     domain.Weekday
	SlotOrdinal int
	SlotLabel   string
	StartTime   string
	EndTime     string
	Score       float64
	Reasons     []PlacementReason
}

type UnplacedCode string

const (
	// UnplacedNoSlotFits: no day had any slot large enough for the item,
	// regardless of caps.
	UnplacedNoSlotFits UnplacedCode = "NO_SLOT_OF_SUFFICIENT_SIZE"
	// UnplacedDayCap: slot space existed but every fitting day was at its
	// daily ceiling.
	UnplacedDayCap UnplacedCode = "DAILY_CAP_REACHED"
	// UnplacedSubjectCap: slot space existed but the per-subject-per-day
	// ceiling blocked every candidate.
	UnplacedSubjectCap UnplacedCode = "SUBJECT_CAP_REACHED"
	// UnplacedSlotCapacity: quick-win pass found no slot with enough
	// remaining minutes.
	UnplacedSlotCapacity UnplacedCode = "INSUFFICIENT_SLOT_CAPACITY"
)

type UnplacedItem struct {
	ItemID      string
	Title       string
	Subject     string
	DurationMin int
	Code        UnplacedCode
	Message     string
}
