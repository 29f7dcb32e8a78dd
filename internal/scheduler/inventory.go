package scheduler

import (
	"fmt"
	"sort"

	"github.com/daneverett/homeslate/internal/domain"
)

// WeekInventory is the run-scoped slot state for one person's week. It is
// built fresh at the start of each plan run and mutated in place as items
// are committed; nothing survives between runs.
type WeekInventory struct {
	Slots map[domain.Weekday][]*domain.TimeSlot
}

// SlotsFor returns the ordered placeable slots for a weekday.
func (inv *WeekInventory) SlotsFor(day domain.Weekday) []*domain.TimeSlot {
	return inv.Slots[day]
}

// AllSlots returns every slot in weekday-then-ordinal order.
func (inv *WeekInventory) AllSlots() []*domain.TimeSlot {
	var out []*domain.TimeSlot
	for _, day := range domain.WeekDays {
		out = append(out, inv.Slots[day]...)
	}
	return out
}

// PlacedDuration is the minutes already recorded against a slot before the
// run starts (items persisted by a previous run that are still scheduled).
type PlacedDuration struct {
	Weekday     domain.Weekday
	SlotOrdinal int
	Subject     string
	DurationMin int
}

// BuildInventory converts routine blocks into placeable TimeSlots with
// computed duration and already-consumed minutes.
//
// Fixed blocks are skipped entirely: invariant 5 says they never receive
// items, so they never enter the inventory. A block with an inverted or
// unparseable time range fails the whole build; silently skipping it would
// hide a data problem and shrink the week.
//
// Blocks without a numeric slot ordinal fall back to
// domain.UnassignedOrdinal. At most one such block per day is allowed,
// since two would be indistinguishable when placements are written back.
func BuildInventory(blocks []domain.RoutineBlock, placed []PlacedDuration) (*WeekInventory, error) {
	inv := &WeekInventory{Slots: make(map[domain.Weekday][]*domain.TimeSlot)}

	unassignedSeen := make(map[domain.Weekday]bool)
	for _, b := range blocks {
		if !b.Category.Placeable() {
			continue
		}

		start, err := domain.ParseClock(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("routine block %q (%s): %w", b.Label, b.Weekday, err)
		}
		end, err := domain.ParseClock(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("routine block %q (%s): %w", b.Label, b.Weekday, err)
		}
		if end <= start {
			return nil, fmt.Errorf("routine block %q (%s): end %s is not after start %s",
				b.Label, b.Weekday, b.EndTime, b.StartTime)
		}

		ordinal := domain.UnassignedOrdinal
		if b.SlotOrdinal != nil {
			ordinal = *b.SlotOrdinal
		} else {
			if unassignedSeen[b.Weekday] {
				return nil, fmt.Errorf("routine for %s has more than one block without a slot number", b.Weekday)
			}
			unassignedSeen[b.Weekday] = true
		}

		inv.Slots[b.Weekday] = append(inv.Slots[b.Weekday], &domain.TimeSlot{
			Weekday:  b.Weekday,
			Ordinal:  ordinal,
			Category: b.Category,
			Subject:  b.Subject,
			Label:    b.Label,
			StartMin: start,
			EndMin:   end,
			TotalMin: end - start,
		})
	}

	for _, day := range domain.WeekDays {
		slots := inv.Slots[day]
		sort.SliceStable(slots, func(i, j int) bool {
			if slots[i].StartMin != slots[j].StartMin {
				return slots[i].StartMin < slots[j].StartMin
			}
			return slots[i].Ordinal < slots[j].Ordinal
		})
	}

	for _, p := range placed {
		slot := inv.findSlot(p.Weekday, p.SlotOrdinal)
		if slot == nil {
			// The routine changed since the placement was written. The
			// usage is skipped here; Run surfaces it as a warning.
			continue
		}
		slot.UsedMin += p.DurationMin
		if slot.UsedMin > slot.TotalMin {
			slot.UsedMin = slot.TotalMin
		}
	}

	return inv, nil
}

func (inv *WeekInventory) findSlot(day domain.Weekday, ordinal int) *domain.TimeSlot {
	for _, s := range inv.Slots[day] {
		if s.Ordinal == ordinal {
			return s
		}
	}
	return nil
}
