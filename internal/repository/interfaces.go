package repository

import (
	"context"

	"github.com/daneverett/homeslate/internal/domain"
)

// PlacementRecord is the persisted view of one slot assignment, read back
// when a run preserves the prior week state.
type PlacementRecord struct {
	ItemID      string
	Weekday     domain.Weekday
	SlotOrdinal int
	Subject     string
	DurationMin int
}

type PersonRepo interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	GetByName(ctx context.Context, name string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Delete(ctx context.Context, id string) error
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListByPerson(ctx context.Context, personID string) ([]*domain.WorkItem, error)
	// ListBacklog returns pending and scheduled items eligible for a plan
	// run (terminal items excluded).
	ListBacklog(ctx context.Context, personID string) ([]*domain.WorkItem, error)
	// ListPlacements returns the persisted slot assignments for a person.
	ListPlacements(ctx context.Context, personID string) ([]PlacementRecord, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type RoutineRepo interface {
	Create(ctx context.Context, b *domain.RoutineBlock) error
	ListByPerson(ctx context.Context, personID string) ([]domain.RoutineBlock, error)
	ListByPersonDay(ctx context.Context, personID string, day domain.Weekday) ([]domain.RoutineBlock, error)
	// ReplacePerson swaps out a person's entire routine in one call; used
	// by routine import.
	ReplacePerson(ctx context.Context, personID string, blocks []domain.RoutineBlock) error
	Delete(ctx context.Context, id string) error
}

type CapacityProfileRepo interface {
	// Get returns the stored profile, or the defaults when none exists.
	Get(ctx context.Context, personID string) (*domain.CapacityProfile, error)
	Upsert(ctx context.Context, p *domain.CapacityProfile) error
}
