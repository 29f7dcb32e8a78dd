package scheduler

import (
	"fmt"
	"sort"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/domain"
)

// The quick-win pass runs after the heavy pass has anchored everything
// over QuickWinMaxMin. Placing short items first would fragment capacity
// and strand long items.

type quickCandidate struct {
	itemIndex  int // position in the quick backlog, for deterministic ties
	item       ClassifiedItem
	slot       *domain.TimeSlot
	confidence float64
	reasons    []app.PlacementReason
}

// PlaceQuickWins interleaves quick items into partially-filled slots by
// descending confidence, re-checking capacity at commit time since each
// commit changes state. Items that never fit are returned unscheduled.
func (p *Placer) PlaceQuickWins(quick []ClassifiedItem) ([]app.Placement, []app.UnplacedItem) {
	var candidates []quickCandidate
	for i, c := range quick {
		for _, day := range domain.WeekDays {
			for _, slot := range p.inv.SlotsFor(day) {
				if !slot.CanFit(c.Item.DurationMin) {
					continue
				}
				candidates = append(candidates, p.scoreQuickWin(i, c, slot))
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		if a.itemIndex != b.itemIndex {
			return a.itemIndex < b.itemIndex
		}
		if a.slot.Weekday.Ordinal() != b.slot.Weekday.Ordinal() {
			return a.slot.Weekday.Ordinal() < b.slot.Weekday.Ordinal()
		}
		return a.slot.Ordinal < b.slot.Ordinal
	})

	placedItems := make(map[string]bool)
	var scheduled []app.Placement

	for _, cand := range candidates {
		item := cand.item.Item
		if placedItems[item.ID] {
			continue
		}
		slot := cand.slot
		if !slot.CanFit(item.DurationMin) ||
			!p.ledger.FitsDay(slot.Weekday, item.DurationMin) ||
			!p.ledger.FitsSubject(slot.Weekday, item.Subject, item.DurationMin) {
			continue
		}

		if err := slot.Consume(item.DurationMin); err != nil {
			continue
		}
		p.ledger.Commit(slot.Weekday, item.Subject, item.DurationMin)
		p.contents[slot] = append(p.contents[slot], placedEntry{durationMin: item.DurationMin, subject: item.Subject})
		placedItems[item.ID] = true

		scheduled = append(scheduled, app.Placement{
			ItemID:      item.ID,
			Title:       item.Title,
			Subject:     item.Subject,
			DurationMin: item.DurationMin,
			Priority:    cand.item.Tier,
			Weekday:     slot.Weekday,
			SlotOrdinal: slot.Ordinal,
			SlotLabel:   slot.Label,
			StartTime:   domain.FormatClock(slot.StartMin),
			EndTime:     domain.FormatClock(slot.EndMin),
			Score:       cand.confidence,
			Reasons:     cand.reasons,
		})
	}

	var unscheduled []app.UnplacedItem
	for _, c := range quick {
		if placedItems[c.Item.ID] {
			continue
		}
		unscheduled = append(unscheduled, app.UnplacedItem{
			ItemID:      c.Item.ID,
			Title:       c.Item.Title,
			Subject:     c.Item.Subject,
			DurationMin: c.Item.DurationMin,
			Code:        app.UnplacedSlotCapacity,
			Message:     "insufficient slot capacity",
		})
	}
	return scheduled, unscheduled
}

func (p *Placer) scoreQuickWin(itemIndex int, c ClassifiedItem, slot *domain.TimeSlot) quickCandidate {
	cand := quickCandidate{
		itemIndex:  itemIndex,
		item:       c,
		slot:       slot,
		confidence: QuickWinBaseConfidence,
	}
	item := c.Item
	entries := p.contents[slot]

	hasLong := false
	sameSubject := false
	for _, e := range entries {
		if e.durationMin > LongTaskMin {
			hasLong = true
		}
		if e.subject != "" && e.subject == item.Subject {
			sameSubject = true
		}
	}

	if hasLong {
		cand.add(p.weights.BreakBetweenLong, app.ReasonBreakBetweenLong,
			"Break between long tasks")
	}
	if slot.RemainingMin()-item.DurationMin <= GapFillWindowMin {
		cand.add(p.weights.GapFill, app.ReasonGapFill,
			fmt.Sprintf("Fills a %dm gap precisely", slot.RemainingMin()))
	}
	if len(entries) == 0 && item.DurationMin <= MomentumMaxMin {
		cand.add(p.weights.MomentumBuilder, app.ReasonMomentumBuilder,
			"Momentum builder at the start of an empty slot")
	}
	if !sameSubject {
		cand.add(p.weights.SubjectDiversity, app.ReasonSubjectDiversity,
			"Adds subject diversity to the slot")
	}
	if slot.Weekday.Ordinal() <= domain.Wednesday.Ordinal() {
		cand.add(p.weights.EarlyWeek, app.ReasonEarlyWeek,
			"Earlier in the week preferred for non-urgent work")
	}

	return cand
}

func (c *quickCandidate) add(delta float64, code app.PlacementReasonCode, msg string) {
	c.confidence += delta
	c.reasons = append(c.reasons, app.PlacementReason{
		Code:        code,
		Message:     msg,
		WeightDelta: ptrFloat(delta),
	})
}
