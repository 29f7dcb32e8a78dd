package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/google/uuid"
)

type personService struct {
	persons repository.PersonRepo
}

func NewPersonService(persons repository.PersonRepo) PersonService {
	return &personService{persons: persons}
}

func (s *personService) Add(ctx context.Context, name string) (*domain.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("person name is required")
	}
	now := time.Now().UTC()
	p := &domain.Person{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.persons.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *personService) List(ctx context.Context) ([]*domain.Person, error) {
	return s.persons.List(ctx)
}

// Resolve accepts either a person name or a full ID, name first since
// that is what the CLI passes.
func (s *personService) Resolve(ctx context.Context, nameOrID string) (*domain.Person, error) {
	if p, err := s.persons.GetByName(ctx, nameOrID); err == nil {
		return p, nil
	}
	p, err := s.persons.GetByID(ctx, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("no person named %q", nameOrID)
	}
	return p, nil
}
