package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/db"
	"github.com/daneverett/homeslate/internal/domain"
)

const routineColumns = `id, person_id, weekday, slot_ordinal, category, subject, label,
		start_time, end_time, created_at, updated_at`

type SQLiteRoutineRepo struct {
	db db.DBTX
}

func NewSQLiteRoutineRepo(dbtx db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: dbtx}
}

func (r *SQLiteRoutineRepo) Create(ctx context.Context, b *domain.RoutineBlock) error {
	query := `INSERT INTO routine_blocks (` + routineColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.PersonID,
		string(b.Weekday),
		nullableIntToValue(b.SlotOrdinal),
		string(b.Category),
		b.Subject,
		b.Label,
		b.StartTime,
		b.EndTime,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting routine block: %w", err)
	}
	return nil
}

func (r *SQLiteRoutineRepo) ListByPerson(ctx context.Context, personID string) ([]domain.RoutineBlock, error) {
	query := `SELECT ` + routineColumns + ` FROM routine_blocks
		WHERE person_id = ?
		ORDER BY weekday, start_time, id`
	return r.queryBlocks(ctx, query, personID)
}

func (r *SQLiteRoutineRepo) ListByPersonDay(ctx context.Context, personID string, day domain.Weekday) ([]domain.RoutineBlock, error) {
	query := `SELECT ` + routineColumns + ` FROM routine_blocks
		WHERE person_id = ? AND weekday = ?
		ORDER BY start_time, id`
	return r.queryBlocks(ctx, query, personID, string(day))
}

func (r *SQLiteRoutineRepo) ReplacePerson(ctx context.Context, personID string, blocks []domain.RoutineBlock) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM routine_blocks WHERE person_id = ?`, personID); err != nil {
		return fmt.Errorf("clearing routine: %w", err)
	}
	for i := range blocks {
		if err := r.Create(ctx, &blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM routine_blocks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting routine block: %w", err)
	}
	return nil
}

func (r *SQLiteRoutineRepo) queryBlocks(ctx context.Context, query string, args ...any) ([]domain.RoutineBlock, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing routine blocks: %w", err)
	}
	defer rows.Close()

	var out []domain.RoutineBlock
	for rows.Next() {
		var b domain.RoutineBlock
		var weekday, category string
		var ordinal sql.NullInt64
		var created, updated string
		if err := rows.Scan(
			&b.ID, &b.PersonID, &weekday, &ordinal, &category, &b.Subject, &b.Label,
			&b.StartTime, &b.EndTime, &created, &updated,
		); err != nil {
			return nil, fmt.Errorf("scanning routine block: %w", err)
		}
		b.Weekday = domain.Weekday(weekday)
		b.Category = domain.SlotCategory(category)
		if ordinal.Valid {
			o := int(ordinal.Int64)
			b.SlotOrdinal = &o
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339, created)
		b.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, b)
	}
	return out, rows.Err()
}
