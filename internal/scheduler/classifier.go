package scheduler

import (
	"sort"
	"strings"
	"time"

	"github.com/daneverett/homeslate/internal/domain"
)

// Tier derivation thresholds.
const (
	criticalDueWithinDays  = 1
	importantDueWithinDays = 7
	// tierBumpPointValue bumps an item one tier when its point value
	// signals a heavyweight grade.
	tierBumpPointValue = 100
)

// assessmentTypes are item types that always bump one tier.
var assessmentTypes = map[string]bool{"quiz": true, "test": true}

// DeriveTier resolves the priority tier for an item. An intake-provided
// tier is kept as the base; otherwise the tier comes from due-date
// proximity. High point value or assessment types bump one tier either way.
func DeriveTier(item *domain.WorkItem, now time.Time) domain.PriorityTier {
	tier := item.Priority
	if tier == "" {
		tier = tierFromDueDate(item.DueDate, now)
	}
	if item.PointValue >= tierBumpPointValue || assessmentTypes[strings.ToLower(item.Type)] {
		tier = tier.Bump()
	}
	return tier
}

func tierFromDueDate(due *time.Time, now time.Time) domain.PriorityTier {
	if due == nil {
		return domain.TierFlexible
	}
	days := int(due.Sub(now).Hours() / 24)
	switch {
	case days <= criticalDueWithinDays:
		return domain.TierCritical
	case days <= importantDueWithinDays:
		return domain.TierImportant
	default:
		return domain.TierFlexible
	}
}

// ClassifiedItem pairs a backlog item with its resolved tier for the run.
type ClassifiedItem struct {
	Item *domain.WorkItem
	Tier domain.PriorityTier
}

// ClassifyBacklog resolves each pending item's tier and returns the backlog
// in canonical scheduling order: tier severity, then title sequence, then
// due date (nil last), then ID for a stable final tie-break. The input
// slice is not mutated; each pass builds a fresh list.
func ClassifyBacklog(items []*domain.WorkItem, now time.Time) []ClassifiedItem {
	classified := make([]ClassifiedItem, 0, len(items))
	for _, it := range items {
		if it.IsTerminal() {
			continue
		}
		classified = append(classified, ClassifiedItem{Item: it, Tier: DeriveTier(it, now)})
	}

	sort.SliceStable(classified, func(i, j int) bool {
		a, b := classified[i], classified[j]

		if a.Tier.Rank() != b.Tier.Rank() {
			return a.Tier.Rank() < b.Tier.Rank()
		}

		if c := CompareSequence(a.Item.Title, b.Item.Title); c != 0 {
			return c < 0
		}

		dueA, dueB := a.Item.DueDate, b.Item.DueDate
		if (dueA == nil) != (dueB == nil) {
			return dueA != nil
		}
		if dueA != nil && dueB != nil && !dueA.Equal(*dueB) {
			return dueA.Before(*dueB)
		}

		return a.Item.ID < b.Item.ID
	})

	return classified
}

// SplitQuick partitions a classified backlog into heavy items (placed
// first) and quick items (handled by the quick-win pass), preserving order.
func SplitQuick(backlog []ClassifiedItem) (heavy, quick []ClassifiedItem) {
	for _, c := range backlog {
		if c.Item.IsQuick(QuickWinMaxMin) {
			quick = append(quick, c)
		} else {
			heavy = append(heavy, c)
		}
	}
	return heavy, quick
}
