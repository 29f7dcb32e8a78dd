package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daneverett/homeslate/internal/db"
	"github.com/daneverett/homeslate/internal/domain"
)

type SQLiteCapacityProfileRepo struct {
	db db.DBTX
}

func NewSQLiteCapacityProfileRepo(dbtx db.DBTX) *SQLiteCapacityProfileRepo {
	return &SQLiteCapacityProfileRepo{db: dbtx}
}

// Get returns the stored profile for the person, falling back to the
// defaults when none has been saved yet.
func (r *SQLiteCapacityProfileRepo) Get(ctx context.Context, personID string) (*domain.CapacityProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT
		person_id, daily_max_min, subject_daily_max_min, distribution,
		w_day_stride, w_quick_penalty, w_flexible_prefer,
		w_break_between_long, w_gap_fill, w_momentum_builder,
		w_subject_diversity, w_early_week
		FROM capacity_profiles WHERE person_id = ?`, personID)

	var p domain.CapacityProfile
	var distribution string
	err := row.Scan(
		&p.PersonID, &p.DailyMaxMin, &p.SubjectDailyMaxMin, &distribution,
		&p.WeightDayStride, &p.WeightQuickPenalty, &p.WeightFlexiblePrefer,
		&p.WeightBreakBetweenLong, &p.WeightGapFill, &p.WeightMomentumBuilder,
		&p.WeightSubjectDiversity, &p.WeightEarlyWeek,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultCapacityProfile(personID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning capacity profile: %w", err)
	}
	p.Distribution = domain.DistributionPreference(distribution)
	return &p, nil
}

func (r *SQLiteCapacityProfileRepo) Upsert(ctx context.Context, p *domain.CapacityProfile) error {
	query := `INSERT INTO capacity_profiles (
		person_id, daily_max_min, subject_daily_max_min, distribution,
		w_day_stride, w_quick_penalty, w_flexible_prefer,
		w_break_between_long, w_gap_fill, w_momentum_builder,
		w_subject_diversity, w_early_week
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(person_id) DO UPDATE SET
		daily_max_min = excluded.daily_max_min,
		subject_daily_max_min = excluded.subject_daily_max_min,
		distribution = excluded.distribution,
		w_day_stride = excluded.w_day_stride,
		w_quick_penalty = excluded.w_quick_penalty,
		w_flexible_prefer = excluded.w_flexible_prefer,
		w_break_between_long = excluded.w_break_between_long,
		w_gap_fill = excluded.w_gap_fill,
		w_momentum_builder = excluded.w_momentum_builder,
		w_subject_diversity = excluded.w_subject_diversity,
		w_early_week = excluded.w_early_week`
	_, err := r.db.ExecContext(ctx, query,
		p.PersonID, p.DailyMaxMin, p.SubjectDailyMaxMin, string(p.Distribution),
		p.WeightDayStride, p.WeightQuickPenalty, p.WeightFlexiblePrefer,
		p.WeightBreakBetweenLong, p.WeightGapFill, p.WeightMomentumBuilder,
		p.WeightSubjectDiversity, p.WeightEarlyWeek,
	)
	if err != nil {
		return fmt.Errorf("upserting capacity profile: %w", err)
	}
	return nil
}
