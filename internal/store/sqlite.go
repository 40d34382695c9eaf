package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed width so created_at sorts as text in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id           TEXT PRIMARY KEY,
		algorithm    TEXT NOT NULL,
		time_quantum INTEGER NOT NULL DEFAULT 0,
		processes    TEXT NOT NULL,
		result       TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath. ":memory:" gives
// a private in-memory database.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// each pooled connection to :memory: would otherwise see its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) CreateRun(ctx context.Context, run *Run) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	processesJSON, err := json.Marshal(run.Processes)
	if err != nil {
		return fmt.Errorf("marshal processes: %w", err)
	}
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, time_quantum, processes, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Algorithm, run.TimeQuantum, string(processesJSON), string(resultJSON),
		run.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// GetRun returns nil, nil when no run has the id.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, algorithm, time_quantum, processes, result, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// ListRuns returns the newest runs first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	s.logger.Debug("sql", "op", "list", "table", "runs", "limit", limit)
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, algorithm, time_quantum, processes, result, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var processesJSON, resultJSON, createdAt string
	if err := row.Scan(&run.ID, &run.Algorithm, &run.TimeQuantum, &processesJSON, &resultJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(processesJSON), &run.Processes); err != nil {
		return nil, fmt.Errorf("unmarshal processes: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	createdAtTime, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = createdAtTime
	return &run, nil
}
