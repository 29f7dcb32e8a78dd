package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daneverett/homeslate/internal/db"
	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/importer"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/google/uuid"
)

type routineService struct {
	persons  repository.PersonRepo
	routines repository.RoutineRepo
	uow      db.UnitOfWork
}

func NewRoutineService(
	persons repository.PersonRepo,
	routines repository.RoutineRepo,
	uow db.UnitOfWork,
) RoutineService {
	return &routineService{persons: persons, routines: routines, uow: uow}
}

// Import loads, validates, and applies a routine document. The person is
// created if they do not exist yet; their routine is replaced wholesale,
// the profile override applied, and any seed items stored, all in one
// transaction so a half-imported document leaves no trace.
func (s *routineService) Import(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid routine document: %w", errors.Join(errs...))
	}

	now := time.Now().UTC()
	result := &ImportResult{}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPersons := repository.NewSQLitePersonRepo(tx)
		txRoutines := repository.NewSQLiteRoutineRepo(tx)
		txItems := repository.NewSQLiteWorkItemRepo(tx)
		txProfiles := repository.NewSQLiteCapacityProfileRepo(tx)

		person, err := txPersons.GetByName(ctx, strings.TrimSpace(schema.Person))
		if err != nil {
			person = &domain.Person{
				ID:        uuid.New().String(),
				Name:      strings.TrimSpace(schema.Person),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := txPersons.Create(ctx, person); err != nil {
				return err
			}
		}
		result.Person = person

		converted := importer.Convert(schema, person.ID, now)

		if err := txRoutines.ReplacePerson(ctx, person.ID, converted.Blocks); err != nil {
			return err
		}
		result.BlockCount = len(converted.Blocks)

		if converted.Profile != nil {
			if err := txProfiles.Upsert(ctx, converted.Profile); err != nil {
				return err
			}
			result.ProfileSet = true
		}

		for _, item := range converted.Items {
			if err := txItems.Create(ctx, item); err != nil {
				return err
			}
		}
		result.ItemCount = len(converted.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *routineService) Show(ctx context.Context, personID string) ([]domain.RoutineBlock, error) {
	return s.routines.ListByPerson(ctx, personID)
}
