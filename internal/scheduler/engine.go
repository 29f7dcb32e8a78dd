package scheduler

import (
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/domain"
)

// RunInput is everything a plan run reads. The engine is a pure function
// of this input: no I/O, no clock access, no state between invocations.
// Callers hold the per-(person, week) guard around the run and any
// persistence of its result.
type RunInput struct {
	Items   []*domain.WorkItem
	Blocks  []domain.RoutineBlock
	Placed  []PlacedDuration // placements persisted by a previous run, if preserved
	Profile *domain.CapacityProfile
	Weights Weights
	Now     time.Time
}

// RunResult is the scheduling outcome for one run.
type RunResult struct {
	Scheduled   []app.Placement
	Unscheduled []app.UnplacedItem
	Warnings    []string
}

// Run executes one full scheduling pass: classify and sort the backlog,
// build the slot inventory, place heavy items greedily, then interleave
// quick wins into the remaining gaps.
func Run(in RunInput) (*RunResult, error) {
	inv, err := BuildInventory(in.Blocks, in.Placed)
	if err != nil {
		return nil, err
	}

	ledger := NewCapacityLedger(in.Profile)
	placer := NewPlacer(inv, ledger, in.Weights)
	var stale []PlacedDuration
	for _, pl := range in.Placed {
		slot := inv.findSlot(pl.Weekday, pl.SlotOrdinal)
		if slot == nil {
			stale = append(stale, pl)
			continue
		}
		ledger.Commit(pl.Weekday, pl.Subject, pl.DurationMin)
		placer.contents[slot] = append(placer.contents[slot],
			placedEntry{durationMin: pl.DurationMin, subject: pl.Subject})
	}

	backlog := ClassifyBacklog(in.Items, in.Now)
	heavy, quick := SplitQuick(backlog)

	scheduled, unscheduled := placer.PlaceAll(heavy)
	quickScheduled, quickUnscheduled := placer.PlaceQuickWins(quick)
	scheduled = append(scheduled, quickScheduled...)
	unscheduled = append(unscheduled, quickUnscheduled...)

	return &RunResult{
		Scheduled:   scheduled,
		Unscheduled: unscheduled,
		Warnings:    buildWarnings(inv, backlog, unscheduled, stale),
	}, nil
}

func buildWarnings(inv *WeekInventory, backlog []ClassifiedItem, unscheduled []app.UnplacedItem, stale []PlacedDuration) []string {
	var warnings []string

	for _, pl := range stale {
		warnings = append(warnings, fmt.Sprintf(
			"an existing placement on %s slot %d references a block the routine no longer has; its capacity was not reserved",
			pl.Weekday, pl.SlotOrdinal))
	}

	for _, day := range domain.WeekDays {
		if len(inv.SlotsFor(day)) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s has no placeable slots", day))
		}
	}

	backlogMin := 0
	for _, c := range backlog {
		backlogMin += c.Item.DurationMin
	}
	weekMin := 0
	for _, slot := range inv.AllSlots() {
		weekMin += slot.TotalMin
	}
	if backlogMin > weekMin {
		warnings = append(warnings, fmt.Sprintf(
			"backlog (%dm) exceeds the week's total placeable capacity (%dm)", backlogMin, weekMin))
	}

	if n := len(unscheduled); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d item(s) could not be scheduled and need manual placement", n))
	}

	return warnings
}
