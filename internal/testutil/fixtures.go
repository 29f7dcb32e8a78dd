package testutil

import (
	"time"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/google/uuid"
)

// Person fixtures

func NewTestPerson(name string) *domain.Person {
	now := time.Now().UTC()
	return &domain.Person{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WorkItem options

type ItemOption func(*domain.WorkItem)

func WithSubject(subject string) ItemOption {
	return func(w *domain.WorkItem) {
		w.Subject = subject
	}
}

func WithType(itemType string) ItemOption {
	return func(w *domain.WorkItem) {
		w.Type = itemType
	}
}

func WithDuration(min int) ItemOption {
	return func(w *domain.WorkItem) {
		w.DurationMin = min
	}
}

func WithDueDate(d time.Time) ItemOption {
	return func(w *domain.WorkItem) {
		w.DueDate = &d
	}
}

func WithPriority(tier domain.PriorityTier) ItemOption {
	return func(w *domain.WorkItem) {
		w.Priority = tier
	}
}

func WithPoints(points int) ItemOption {
	return func(w *domain.WorkItem) {
		w.PointValue = points
	}
}

func WithStatus(status domain.WorkItemStatus) ItemOption {
	return func(w *domain.WorkItem) {
		w.Status = status
	}
}

func WithPortable(portable bool) ItemOption {
	return func(w *domain.WorkItem) {
		w.Portable = portable
	}
}

func NewTestItem(personID, title string, opts ...ItemOption) *domain.WorkItem {
	now := time.Now().UTC()
	w := &domain.WorkItem{
		ID:          uuid.New().String(),
		PersonID:    personID,
		Title:       title,
		Type:        "assignment",
		Status:      domain.WorkItemPending,
		Difficulty:  domain.DifficultyMedium,
		DurationMin: 30,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RoutineBlock options

type BlockOption func(*domain.RoutineBlock)

func WithOrdinal(n int) BlockOption {
	return func(b *domain.RoutineBlock) {
		b.SlotOrdinal = &n
	}
}

func WithCategory(c domain.SlotCategory) BlockOption {
	return func(b *domain.RoutineBlock) {
		b.Category = c
	}
}

func WithBlockSubject(subject string) BlockOption {
	return func(b *domain.RoutineBlock) {
		b.Subject = subject
	}
}

func WithLabel(label string) BlockOption {
	return func(b *domain.RoutineBlock) {
		b.Label = label
	}
}

func NewTestBlock(personID string, day domain.Weekday, start, end string, opts ...BlockOption) domain.RoutineBlock {
	b := domain.RoutineBlock{
		ID:        uuid.New().String(),
		PersonID:  personID,
		Weekday:   day,
		Category:  domain.SlotStudy,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
