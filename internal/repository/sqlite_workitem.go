package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/db"
	"github.com/daneverett/homeslate/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, person_id, title, description, subject, type, source, status,
		priority, difficulty, duration_min, point_value, portable,
		due_date, scheduled_day, scheduled_slot, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

func NewSQLiteWorkItemRepo(dbtx db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: dbtx}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (` + workItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.PersonID,
		w.Title,
		w.Description,
		w.Subject,
		w.Type,
		w.Source,
		string(w.Status),
		string(w.Priority),
		string(w.Difficulty),
		w.DurationMin,
		w.PointValue,
		boolToInt(w.Portable),
		nullableTimeToString(w.DueDate, dateLayout),
		weekdayToValue(w.ScheduledDay),
		nullableIntToValue(w.ScheduledSlot),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+workItemColumns+` FROM work_items WHERE id = ?`, id)
	w, err := scanWorkItemRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work item %s not found", id)
		}
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWorkItemRepo) ListByPerson(ctx context.Context, personID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		WHERE person_id = ? ORDER BY created_at, id`
	return r.queryItems(ctx, query, personID)
}

func (r *SQLiteWorkItemRepo) ListBacklog(ctx context.Context, personID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		WHERE person_id = ? AND status IN ('pending', 'scheduled')
		ORDER BY id`
	return r.queryItems(ctx, query, personID)
}

func (r *SQLiteWorkItemRepo) ListPlacements(ctx context.Context, personID string) ([]PlacementRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, scheduled_day, scheduled_slot, subject, duration_min
		FROM work_items
		WHERE person_id = ? AND status = 'scheduled'
		  AND scheduled_day IS NOT NULL AND scheduled_slot IS NOT NULL
		ORDER BY id`, personID)
	if err != nil {
		return nil, fmt.Errorf("listing placements: %w", err)
	}
	defer rows.Close()

	var out []PlacementRecord
	for rows.Next() {
		var rec PlacementRecord
		var day string
		if err := rows.Scan(&rec.ItemID, &day, &rec.SlotOrdinal, &rec.Subject, &rec.DurationMin); err != nil {
			return nil, fmt.Errorf("scanning placement: %w", err)
		}
		rec.Weekday = domain.Weekday(day)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET
		title = ?, description = ?, subject = ?, type = ?, source = ?, status = ?,
		priority = ?, difficulty = ?, duration_min = ?, point_value = ?, portable = ?,
		due_date = ?, scheduled_day = ?, scheduled_slot = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Title,
		w.Description,
		w.Subject,
		w.Type,
		w.Source,
		string(w.Status),
		string(w.Priority),
		string(w.Difficulty),
		w.DurationMin,
		w.PointValue,
		boolToInt(w.Portable),
		nullableTimeToString(w.DueDate, dateLayout),
		weekdayToValue(w.ScheduledDay),
		nullableIntToValue(w.ScheduledSlot),
		w.UpdatedAt.Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("work item %s not found", w.ID)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]*domain.WorkItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	var out []*domain.WorkItem
	for rows.Next() {
		w, err := scanWorkItemRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// rowScanner lets one scan routine serve *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkItemRow(row rowScanner) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var status, priority, difficulty string
	var portable int
	var dueDate, schedDay sql.NullString
	var schedSlot sql.NullInt64
	var created, updated string

	err := row.Scan(
		&w.ID, &w.PersonID, &w.Title, &w.Description, &w.Subject, &w.Type, &w.Source, &status,
		&priority, &difficulty, &w.DurationMin, &w.PointValue, &portable,
		&dueDate, &schedDay, &schedSlot, &created, &updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}

	w.Status = domain.WorkItemStatus(status)
	w.Priority = domain.PriorityTier(priority)
	w.Difficulty = domain.Difficulty(difficulty)
	w.Portable = intToBool(portable)
	w.DueDate = parseNullableTime(dueDate, dateLayout)
	if schedDay.Valid && schedDay.String != "" {
		d := domain.Weekday(schedDay.String)
		w.ScheduledDay = &d
	}
	if schedSlot.Valid {
		s := int(schedSlot.Int64)
		w.ScheduledSlot = &s
	}
	w.CreatedAt, _ = time.Parse(time.RFC3339, created)
	w.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &w, nil
}

func weekdayToValue(d *domain.Weekday) interface{} {
	if d == nil {
		return nil
	}
	return string(*d)
}
