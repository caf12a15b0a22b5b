package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore implements Repository on top of a SQLite database file (or
// ":memory:" for an ephemeral one).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens dsn and enables the pragmas the store relies on.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable foreign keys: %w", err)
	}
	if !strings.Contains(dsn, ":memory:") {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: enable WAL mode: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Migrate applies the embedded schema.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	upSQL, err := migrationsFS.ReadFile("migrations/001_initial.up.sql")
	if err != nil {
		return fmt.Errorf("history: read migration: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("history: run migration: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Store(ctx context.Context, run *SolveRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("history: marshal run: %w", err)
	}

	var removed *string
	if run.RemovedLetter != nil {
		v := string(*run.RemovedLetter)
		removed = &v
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO solve_runs (id, tiles, deadline_ms, seed, success, removed_letter, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tiles = excluded.tiles,
			deadline_ms = excluded.deadline_ms,
			seed = excluded.seed,
			success = excluded.success,
			removed_letter = excluded.removed_letter,
			payload = excluded.payload
	`, run.ID, run.Tiles, run.DeadlineMS, run.Seed, run.Success, removed, payload, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("history: store run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*SolveRun, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM solve_runs WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: get run: %w", err)
	}
	var run SolveRun
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("history: unmarshal run: %w", err)
	}
	return &run, nil
}

func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*SolveRun, error) {
	query := strings.Builder{}
	query.WriteString("SELECT payload FROM solve_runs WHERE 1=1")
	var args []any

	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}
	query.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var out []*SolveRun
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		var run SolveRun
		if err := json.Unmarshal(payload, &run); err != nil {
			return nil, fmt.Errorf("history: unmarshal run: %w", err)
		}
		out = append(out, &run)
	}
	return out, rows.Err()
}

// FormatCreatedAt renders a run's timestamp for display in a fixed UTC
// strftime layout rather than Go's reference-time format.
func FormatCreatedAt(run *SolveRun) string {
	return strftime.Format("%Y-%m-%d %H:%M:%S UTC", run.CreatedAt.UTC())
}
