// Package history keeps a local log of webhook deliveries. The log is
// diagnostic only; failed deliveries are recorded but never re-submitted.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Delivery statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Delivery is one recorded submission attempt.
type Delivery struct {
	ID          string
	Endpoint    string
	Channel     string
	Text        string
	Attachments int
	Payload     string // JSON as it went on the wire
	Status      string
	Error       string
	CreatedAt   time.Time
}

// Store is a SQLite-backed delivery log.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewStore(dbPath string, logger *slog.Logger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}

	// Single connection for SQLite
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db, logger: logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS deliveries (
		id          TEXT PRIMARY KEY,
		endpoint    TEXT NOT NULL,
		channel     TEXT,
		text        TEXT,
		attachments INTEGER DEFAULT 0,
		payload     TEXT,
		status      TEXT NOT NULL,
		error       TEXT,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_deliveries_time ON deliveries(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record inserts a delivery. A missing ID or timestamp is filled in.
func (s *Store) Record(ctx context.Context, d Delivery) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deliveries (id, endpoint, channel, text, attachments, payload, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Endpoint, d.Channel, d.Text, d.Attachments, d.Payload, d.Status, d.Error, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record delivery: %w", err)
	}
	return nil
}

// Recent returns the latest deliveries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Delivery, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, endpoint, channel, text, attachments, payload, status, error, created_at
		 FROM deliveries ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var out []Delivery
	for rows.Next() {
		var d Delivery
		if err := rows.Scan(&d.ID, &d.Endpoint, &d.Channel, &d.Text, &d.Attachments,
			&d.Payload, &d.Status, &d.Error, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Prune deletes deliveries older than the retention window and returns
// how many rows went away.
func (s *Store) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays < 1 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM deliveries WHERE created_at < ?`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("prune deliveries: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 && s.logger != nil {
		s.logger.Debug("pruned delivery log", "removed", n, "retention_days", retentionDays)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
