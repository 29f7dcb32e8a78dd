package service

import (
	"context"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/intake"
	"github.com/daneverett/homeslate/internal/scheduler"
)

type PersonService interface {
	Add(ctx context.Context, name string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Resolve(ctx context.Context, nameOrID string) (*domain.Person, error)
}

type ItemService interface {
	Add(ctx context.Context, personID string, raw intake.RawItem) (*domain.WorkItem, error)
	List(ctx context.Context, personID string) ([]*domain.WorkItem, error)
	// Backlog returns schedulable items in classifier order.
	Backlog(ctx context.Context, personID string) ([]scheduler.ClassifiedItem, error)
	Done(ctx context.Context, itemID string) error
	Skip(ctx context.Context, itemID string) error
	Remove(ctx context.Context, itemID string) error
}

// ImportResult summarizes a routine document import.
type ImportResult struct {
	Person     *domain.Person
	BlockCount int
	ItemCount  int
	ProfileSet bool
}

type RoutineService interface {
	Import(ctx context.Context, path string) (*ImportResult, error)
	Show(ctx context.Context, personID string) ([]domain.RoutineBlock, error)
}

type ProfileService interface {
	Get(ctx context.Context, personID string) (*domain.CapacityProfile, error)
	Set(ctx context.Context, p *domain.CapacityProfile) error
}

type PlanService interface {
	Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error)
	// Week returns the persisted placements for rendering.
	Week(ctx context.Context, personID string) ([]app.Placement, error)
}
