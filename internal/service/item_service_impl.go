package service

import (
	"context"
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/intake"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/daneverett/homeslate/internal/scheduler"
)

type itemService struct {
	items   repository.WorkItemRepo
	persons repository.PersonRepo
}

func NewItemService(items repository.WorkItemRepo, persons repository.PersonRepo) ItemService {
	return &itemService{items: items, persons: persons}
}

// Add runs intake normalization on the raw metadata and stores the result.
func (s *itemService) Add(ctx context.Context, personID string, raw intake.RawItem) (*domain.WorkItem, error) {
	if _, err := s.persons.GetByID(ctx, personID); err != nil {
		return nil, fmt.Errorf("person %s: %w", personID, err)
	}
	if raw.Title == "" {
		return nil, fmt.Errorf("item title is required")
	}

	item := intake.Normalize(personID, raw, time.Now().UTC())
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, personID string) ([]*domain.WorkItem, error) {
	return s.items.ListByPerson(ctx, personID)
}

func (s *itemService) Backlog(ctx context.Context, personID string) ([]scheduler.ClassifiedItem, error) {
	items, err := s.items.ListBacklog(ctx, personID)
	if err != nil {
		return nil, err
	}
	return scheduler.ClassifyBacklog(items, time.Now().UTC()), nil
}

func (s *itemService) Done(ctx context.Context, itemID string) error {
	return s.transition(ctx, itemID, (*domain.WorkItem).MarkDone)
}

func (s *itemService) Skip(ctx context.Context, itemID string) error {
	return s.transition(ctx, itemID, (*domain.WorkItem).MarkSkipped)
}

func (s *itemService) Remove(ctx context.Context, itemID string) error {
	return s.items.Delete(ctx, itemID)
}

func (s *itemService) transition(ctx context.Context, itemID string, fn func(*domain.WorkItem, time.Time) error) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := fn(item, time.Now().UTC()); err != nil {
		return err
	}
	return s.items.Update(ctx, item)
}
