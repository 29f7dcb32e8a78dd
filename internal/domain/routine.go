package domain

import "time"

// RoutineBlock is one fixed-structure block in a person's daily routine,
// as stored. Placeable blocks become TimeSlots during a plan run.
type RoutineBlock struct {
	ID       string
	PersonID string
	Weekday  Weekday
	// SlotOrdinal is the block's numbered position within the day.
	// Nil means the block has no assigned number; the inventory builder
	// maps it to the unassigned ordinal.
	SlotOrdinal *int
	Category    SlotCategory
	Subject     string
	Label       string
	StartTime   string // "HH:MM", 24-hour
	EndTime     string // "HH:MM", 24-hour

	CreatedAt time.Time
	UpdatedAt time.Time
}
