package service

import (
	"context"
	"fmt"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/repository"
)

type profileService struct {
	profiles repository.CapacityProfileRepo
	persons  repository.PersonRepo
}

func NewProfileService(profiles repository.CapacityProfileRepo, persons repository.PersonRepo) ProfileService {
	return &profileService{profiles: profiles, persons: persons}
}

func (s *profileService) Get(ctx context.Context, personID string) (*domain.CapacityProfile, error) {
	return s.profiles.Get(ctx, personID)
}

func (s *profileService) Set(ctx context.Context, p *domain.CapacityProfile) error {
	if _, err := s.persons.GetByID(ctx, p.PersonID); err != nil {
		return fmt.Errorf("person %s: %w", p.PersonID, err)
	}
	if p.DailyMaxMin <= 0 {
		return fmt.Errorf("daily_max_min must be positive")
	}
	if p.SubjectDailyMaxMin <= 0 {
		return fmt.Errorf("subject_daily_max_min must be positive")
	}
	return s.profiles.Upsert(ctx, p)
}
