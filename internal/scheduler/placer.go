package scheduler

import (
	"fmt"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/domain"
)

// placedEntry is what later heuristics need to know about an item already
// committed to a slot.
type placedEntry struct {
	durationMin int
	subject     string
}

// Placer runs the greedy heavy-first allocation pass over a week
// inventory. Slot state, the capacity ledger, and per-slot contents are
// shared with the quick-win pass that follows.
type Placer struct {
	inv      *WeekInventory
	ledger   *CapacityLedger
	weights  Weights
	contents map[*domain.TimeSlot][]placedEntry
}

func NewPlacer(inv *WeekInventory, ledger *CapacityLedger, weights Weights) *Placer {
	return &Placer{
		inv:      inv,
		ledger:   ledger,
		weights:  weights,
		contents: make(map[*domain.TimeSlot][]placedEntry),
	}
}

// PlaceAll allocates each item in backlog order. Placements are final once
// made; there is no backtracking. Returns fresh output lists rather than
// mutating the input.
func (p *Placer) PlaceAll(backlog []ClassifiedItem) ([]app.Placement, []app.UnplacedItem) {
	var scheduled []app.Placement
	var unscheduled []app.UnplacedItem

	for _, c := range backlog {
		placement, unplaced := p.placeOne(c)
		if unplaced != nil {
			unscheduled = append(unscheduled, *unplaced)
			continue
		}
		scheduled = append(scheduled, *placement)
	}
	return scheduled, unscheduled
}

type slotCandidate struct {
	slot    *domain.TimeSlot
	score   float64
	reasons []app.PlacementReason
}

func (p *Placer) placeOne(c ClassifiedItem) (*app.Placement, *app.UnplacedItem) {
	item := c.Item

	var best *slotCandidate
	var sawSizedSlot, sawRemainingFit, dayCapBlocked, subjectCapBlocked bool

	for _, day := range domain.WeekDays {
		for _, slot := range p.inv.SlotsFor(day) {
			if slot.TotalMin >= item.DurationMin {
				sawSizedSlot = true
			}
			if !slot.CanFit(item.DurationMin) {
				continue
			}
			sawRemainingFit = true

			if !p.ledger.FitsDay(day, item.DurationMin) {
				dayCapBlocked = true
				continue
			}
			if !p.ledger.FitsSubject(day, item.Subject, item.DurationMin) {
				subjectCapBlocked = true
				continue
			}

			cand := p.scoreCandidate(item, slot)
			// Strictly-better keeps the first slot in natural order on ties.
			if best == nil || cand.score < best.score {
				best = &cand
			}
		}
	}

	if best == nil {
		return nil, p.explainFailure(item, c.Tier, sawSizedSlot, sawRemainingFit, dayCapBlocked, subjectCapBlocked)
	}

	slot := best.slot
	if err := slot.Consume(item.DurationMin); err != nil {
		// Unreachable given the CanFit check above; surface rather than hide.
		return nil, &app.UnplacedItem{
			ItemID: item.ID, Title: item.Title, Subject: item.Subject,
			DurationMin: item.DurationMin,
			Code:        app.UnplacedSlotCapacity,
			Message:     err.Error(),
		}
	}
	p.ledger.Commit(slot.Weekday, item.Subject, item.DurationMin)
	p.contents[slot] = append(p.contents[slot], placedEntry{durationMin: item.DurationMin, subject: item.Subject})

	return &app.Placement{
		ItemID:      item.ID,
		Title:       item.Title,
		Subject:     item.Subject,
		DurationMin: item.DurationMin,
		Priority:    c.Tier,
		Weekday:     slot.Weekday,
		SlotOrdinal: slot.Ordinal,
		SlotLabel:   slot.Label,
		StartTime:   domain.FormatClock(slot.StartMin),
		EndTime:     domain.FormatClock(slot.EndMin),
		Score:       best.score,
		Reasons:     best.reasons,
	}, nil
}

func (p *Placer) scoreCandidate(item *domain.WorkItem, slot *domain.TimeSlot) slotCandidate {
	cand := slotCandidate{slot: slot}

	base := float64(slot.Weekday.Ordinal()) * p.weights.DayStride
	cand.score = base
	cand.reasons = append(cand.reasons, app.PlacementReason{
		Code:        app.ReasonEarlyWeekday,
		Message:     fmt.Sprintf("Earlier weekday preferred (%s)", slot.Weekday),
		WeightDelta: ptrFloat(base),
	})

	if item.DurationMin < QuickWinMaxMin {
		delta := -p.weights.QuickPenalty
		cand.score += delta
		cand.reasons = append(cand.reasons, app.PlacementReason{
			Code:        app.ReasonQuickDeferred,
			Message:     "Short item scored by the main pass",
			WeightDelta: ptrFloat(delta),
		})
	}

	if slot.Category == domain.SlotStudy {
		delta := -p.weights.FlexiblePrefer
		cand.score += delta
		cand.reasons = append(cand.reasons, app.PlacementReason{
			Code:        app.ReasonFlexibleSlot,
			Message:     "Flexible study slot preferred",
			WeightDelta: ptrFloat(delta),
		})
	}

	return cand
}

// explainFailure picks the most specific reason for an item that found no
// candidate slot. "No slot was ever this long" is distinguished from
// "space existed in principle but caps or consumed capacity blocked it".
func (p *Placer) explainFailure(item *domain.WorkItem, tier domain.PriorityTier, sawSizedSlot, sawRemainingFit, dayCapBlocked, subjectCapBlocked bool) *app.UnplacedItem {
	un := &app.UnplacedItem{
		ItemID:      item.ID,
		Title:       item.Title,
		Subject:     item.Subject,
		DurationMin: item.DurationMin,
	}

	switch {
	case sawRemainingFit && subjectCapBlocked:
		un.Code = app.UnplacedSubjectCap
		un.Message = fmt.Sprintf("placing %dm of %s would exceed the per-subject daily cap on every fitting day",
			item.DurationMin, domain.CoalesceStr(item.Subject, "this subject"))
	case sawRemainingFit && dayCapBlocked:
		un.Code = app.UnplacedDayCap
		un.Message = fmt.Sprintf("placing %dm would exceed the daily cap on every fitting day", item.DurationMin)
	case !sawSizedSlot:
		un.Code = app.UnplacedNoSlotFits
		un.Message = fmt.Sprintf("no slot in the week is %dm long", item.DurationMin)
	default:
		un.Code = app.UnplacedSlotCapacity
		un.Message = fmt.Sprintf("slots of %dm exist but their capacity is already consumed", item.DurationMin)
	}
	return un
}

func ptrFloat(f float64) *float64 { return &f }
