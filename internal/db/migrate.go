package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered schema statement list. Statements must stay
// idempotent (CREATE IF NOT EXISTS / tolerated ALTER) because Migrate
// re-runs the full list on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_items (
		id             TEXT PRIMARY KEY,
		person_id      TEXT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		subject        TEXT NOT NULL DEFAULT '',
		type           TEXT NOT NULL DEFAULT 'task',
		source         TEXT NOT NULL DEFAULT 'manual',
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','scheduled','done','skipped')),
		priority       TEXT NOT NULL DEFAULT ''
		               CHECK(priority IN ('','critical','important','flexible')),
		difficulty     TEXT NOT NULL DEFAULT 'medium'
		               CHECK(difficulty IN ('easy','medium','hard')),
		duration_min   INTEGER NOT NULL,
		point_value    INTEGER NOT NULL DEFAULT 0,
		portable       INTEGER NOT NULL DEFAULT 0,
		due_date       TEXT,
		scheduled_day  TEXT,
		scheduled_slot INTEGER,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_person_status
		ON work_items(person_id, status)`,

	`CREATE TABLE IF NOT EXISTS routine_blocks (
		id           TEXT PRIMARY KEY,
		person_id    TEXT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
		weekday      TEXT NOT NULL
		             CHECK(weekday IN ('monday','tuesday','wednesday','thursday','friday')),
		slot_ordinal INTEGER,
		category     TEXT NOT NULL
		             CHECK(category IN ('fixed','study','subject')),
		subject      TEXT NOT NULL DEFAULT '',
		label        TEXT NOT NULL DEFAULT '',
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_routine_blocks_person_day
		ON routine_blocks(person_id, weekday)`,

	`CREATE TABLE IF NOT EXISTS capacity_profiles (
		person_id              TEXT PRIMARY KEY REFERENCES persons(id) ON DELETE CASCADE,
		daily_max_min          INTEGER NOT NULL,
		subject_daily_max_min  INTEGER NOT NULL,
		distribution           TEXT NOT NULL DEFAULT 'even'
		                       CHECK(distribution IN ('even','front_loaded','light_end')),
		w_day_stride           REAL NOT NULL,
		w_quick_penalty        REAL NOT NULL,
		w_flexible_prefer      REAL NOT NULL,
		w_break_between_long   REAL NOT NULL,
		w_gap_fill             REAL NOT NULL,
		w_momentum_builder     REAL NOT NULL,
		w_subject_diversity    REAL NOT NULL,
		w_early_week           REAL NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE re-runs hit existing columns; everything else
			// is a real failure.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
