package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// DriverName is the database/sql driver registered by github.com/glebarez/go-sqlite.
const DriverName = "sqlite"

// ErrDriverUnavailable is returned when the SQLite driver was not linked into the binary.
var ErrDriverUnavailable = errors.New("sqlite driver not available")

// DriverAvailable reports whether the SQLite driver is registered.
func DriverAvailable() bool {
	return slices.Contains(sql.Drivers(), DriverName)
}

// Scalar is one recorded metric sample.
type Scalar struct {
	Run      string
	Tag      string
	Step     int64
	Value    float64
	WallTime int64 // Unix micros
}

// MetricStore handles persistent storage of training metrics in SQLite.
type MetricStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewMetricStore opens (or creates) a metric database with WAL mode enabled.
func NewMetricStore(dbPath string) (*MetricStore, error) {
	if !DriverAvailable() {
		return nil, fmt.Errorf("open %s: %w", dbPath, ErrDriverUnavailable)
	}

	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA cache_size=-2000;", // 2MB cache
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS scalars (
			run TEXT NOT NULL,
			tag TEXT NOT NULL,
			step INTEGER NOT NULL,
			value REAL NOT NULL,
			wall_time INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scalars_run_tag ON scalars (run, tag, step);`,
		`CREATE TABLE IF NOT EXISTS hparams (
			run TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (run, key)
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create metric schema: %w", err)
		}
	}

	return &MetricStore{db: db}, nil
}

// AddRun records the start of a training run.
func (s *MetricStore) AddRun(ctx context.Context, id string, startedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at) VALUES (?, ?) ON CONFLICT(id) DO NOTHING",
		id, startedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// AddScalar stores one metric sample.
func (s *MetricStore) AddScalar(ctx context.Context, sc Scalar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scalars (run, tag, step, value, wall_time) VALUES (?, ?, ?, ?, ?)",
		sc.Run, sc.Tag, sc.Step, sc.Value, sc.WallTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scalar: %w", err)
	}
	return nil
}

// UpsertHParams saves hyperparameters for a run, replacing earlier values.
func (s *MetricStore) UpsertHParams(ctx context.Context, run string, params map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin hparams tx: %w", err)
	}
	defer tx.Rollback()

	for k, v := range params {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO hparams (run, key, value) VALUES (?, ?, ?) ON CONFLICT(run, key) DO UPDATE SET value=excluded.value",
			run, k, v,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert hparam %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// HParams returns the hyperparameters stored for run.
func (s *MetricStore) HParams(ctx context.Context, run string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM hparams WHERE run = ?", run)
	if err != nil {
		return nil, fmt.Errorf("failed to query hparams: %w", err)
	}
	defer rows.Close()

	params := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan hparam: %w", err)
		}
		params[k] = v
	}
	return params, rows.Err()
}

// Scalars loads the samples for run and tag ordered by step.
func (s *MetricStore) Scalars(ctx context.Context, run, tag string) ([]Scalar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT step, value, wall_time FROM scalars WHERE run = ? AND tag = ? ORDER BY step ASC",
		run, tag,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query scalars: %w", err)
	}
	defer rows.Close()

	var out []Scalar
	for rows.Next() {
		sc := Scalar{Run: run, Tag: tag}
		if err := rows.Scan(&sc.Step, &sc.Value, &sc.WallTime); err != nil {
			return nil, fmt.Errorf("failed to scan scalar: %w", err)
		}
		out = append(out, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// CountScalars returns the number of samples stored for run.
func (s *MetricStore) CountScalars(ctx context.Context, run string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scalars WHERE run = ?", run).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count scalars: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *MetricStore) Close() error {
	return s.db.Close()
}
