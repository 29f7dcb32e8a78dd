package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UnassignedOrdinal is the fallback slot ordinal for routine blocks that
// carry no numeric slot identifier. Their capacity is still usable; at most
// one such block per day keeps this marker.
const UnassignedOrdinal = -1

// TimeSlot is a run-scoped placeable interval built from a RoutineBlock.
// It is mutated in memory during a single plan run and discarded afterward.
type TimeSlot struct {
	Weekday  Weekday
	Ordinal  int
	Category SlotCategory
	Subject  string
	Label    string

	StartMin int // minute of day
	EndMin   int // minute of day

	TotalMin int
	UsedMin  int
}

// RemainingMin returns the unallocated minutes in the slot, never negative.
func (s *TimeSlot) RemainingMin() int {
	r := s.TotalMin - s.UsedMin
	if r < 0 {
		return 0
	}
	return r
}

// CanFit reports whether durationMin more minutes fit in the slot.
func (s *TimeSlot) CanFit(durationMin int) bool {
	return durationMin > 0 && durationMin <= s.RemainingMin()
}

// Consume records durationMin placed minutes against the slot.
func (s *TimeSlot) Consume(durationMin int) error {
	if !s.CanFit(durationMin) {
		return fmt.Errorf("slot %s/%d cannot fit %dm (%dm remaining)",
			s.Weekday, s.Ordinal, durationMin, s.RemainingMin())
	}
	s.UsedMin += durationMin
	return nil
}

// ParseClock parses an "HH:MM" time-of-day string into minutes after
// midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
