package domain

import (
	"fmt"
	"time"
)

type WorkItem struct {
	ID          string
	PersonID    string
	Title       string
	Description string
	Subject     string
	Type        string
	Source      string
	Status      WorkItemStatus

	// Classification, resolved once at intake
	Priority    PriorityTier
	Difficulty  Difficulty
	DurationMin int
	PointValue  int
	Portable    bool

	// Constraints
	DueDate *time.Time

	// Placement, written back after a plan run
	ScheduledDay  *Weekday
	ScheduledSlot *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsQuick reports whether the item qualifies for the quick-win pass.
func (w *WorkItem) IsQuick(thresholdMin int) bool {
	return w.DurationMin <= thresholdMin
}

// IsTerminal reports whether the item can no longer be scheduled.
func (w *WorkItem) IsTerminal() bool {
	return w.Status == WorkItemDone || w.Status == WorkItemSkipped
}

// MarkDone transitions the item to done. Terminal items stay terminal.
func (w *WorkItem) MarkDone(now time.Time) error {
	if w.Status == WorkItemSkipped {
		return fmt.Errorf("work item %q is skipped and cannot be completed", w.Title)
	}
	w.Status = WorkItemDone
	w.UpdatedAt = now
	return nil
}

// MarkSkipped transitions the item to skipped.
func (w *WorkItem) MarkSkipped(now time.Time) error {
	if w.Status == WorkItemDone {
		return fmt.Errorf("work item %q is already done", w.Title)
	}
	w.Status = WorkItemSkipped
	w.UpdatedAt = now
	return nil
}

// ClearPlacement removes any recorded slot assignment and returns the item
// to the pending pool.
func (w *WorkItem) ClearPlacement(now time.Time) {
	w.ScheduledDay = nil
	w.ScheduledSlot = nil
	if w.Status == WorkItemScheduled {
		w.Status = WorkItemPending
	}
	w.UpdatedAt = now
}

// AssignPlacement records a slot assignment.
func (w *WorkItem) AssignPlacement(day Weekday, slot int, now time.Time) {
	d := day
	s := slot
	w.ScheduledDay = &d
	w.ScheduledSlot = &s
	w.Status = WorkItemScheduled
	w.UpdatedAt = now
}
