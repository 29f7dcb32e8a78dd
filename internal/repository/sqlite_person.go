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

// SQLitePersonRepo implements PersonRepo over a DBTX, so the same type
// serves both direct and transactional access.
type SQLitePersonRepo struct {
	db db.DBTX
}

func NewSQLitePersonRepo(dbtx db.DBTX) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: dbtx}
}

func (r *SQLitePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO persons (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM persons WHERE id = ?`, id)
	return scanPerson(row)
}

func (r *SQLitePersonRepo) GetByName(ctx context.Context, name string) (*domain.Person, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM persons WHERE name = ?`, name)
	return scanPerson(row)
}

func (r *SQLitePersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM persons ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	defer rows.Close()

	var out []*domain.Person
	for rows.Next() {
		p, err := scanPersonRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLitePersonRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return nil
}

func scanPerson(row *sql.Row) (*domain.Person, error) {
	var p domain.Person
	var created, updated string
	if err := row.Scan(&p.ID, &p.Name, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person not found")
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &p, nil
}

func scanPersonRow(rows *sql.Rows) (*domain.Person, error) {
	var p domain.Person
	var created, updated string
	if err := rows.Scan(&p.ID, &p.Name, &created, &updated); err != nil {
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &p, nil
}
