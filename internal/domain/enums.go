package domain

// PriorityTier is the coarse urgency classification for a work item.
// Lower Rank() is more urgent.
type PriorityTier string

const (
	TierCritical  PriorityTier = "critical"
	TierImportant PriorityTier = "important"
	TierFlexible  PriorityTier = "flexible"
)

// Rank returns a sort priority for the tier (lower = more urgent).
func (t PriorityTier) Rank() int {
	switch t {
	case TierCritical:
		return 0
	case TierImportant:
		return 1
	default:
		return 2
	}
}

// Bump returns the next-higher tier (critical stays critical).
func (t PriorityTier) Bump() PriorityTier {
	switch t {
	case TierFlexible:
		return TierImportant
	default:
		return TierCritical
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type WorkItemStatus string

const (
	WorkItemPending   WorkItemStatus = "pending"
	WorkItemScheduled WorkItemStatus = "scheduled"
	WorkItemDone      WorkItemStatus = "done"
	WorkItemSkipped   WorkItemStatus = "skipped"
)

// SlotCategory classifies routine blocks. Only study and subject blocks
// are placeable; fixed blocks (travel, meals, classes) never receive items.
type SlotCategory string

const (
	SlotFixed   SlotCategory = "fixed"
	SlotStudy   SlotCategory = "study"
	SlotSubject SlotCategory = "subject"
)

// Placeable reports whether items may be allocated into this category.
func (c SlotCategory) Placeable() bool {
	return c == SlotStudy || c == SlotSubject
}

// DistributionPreference is advisory only; the allocator does not enforce
// it numerically.
type DistributionPreference string

const (
	DistributeEven     DistributionPreference = "even"
	DistributeFront    DistributionPreference = "front_loaded"
	DistributeLightEnd DistributionPreference = "light_end"
)

// ValidWorkItemTypes is the canonical set of accepted work item type strings.
var ValidWorkItemTypes = map[string]bool{
	"assignment": true, "worksheet": true, "reading": true, "quiz": true,
	"test": true, "project": true, "practice": true, "review": true,
	"chore": true, "task": true,
}
