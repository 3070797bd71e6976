// Package archive provides a SQLite-backed checkpoint store for verified
// feed records.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/calliehart/blasefeed/internal/wire"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS events (
  id      TEXT PRIMARY KEY,
  sim     TEXT NOT NULL,
  season  INTEGER NOT NULL,
  day     INTEGER NOT NULL,
  type    INTEGER NOT NULL,
  created TEXT NOT NULL,
  payload BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS events_by_season ON events (sim, season, day);
`

// Store persists canonicalized feed records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite archive and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts one record, keyed by its feed id. The stored payload is the
// canonical encoding, so a later Get returns exactly what Build produced.
func (s *Store) Save(ctx context.Context, rec wire.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO events (id, sim, season, day, type, created, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload`,
		rec.ID.String(),
		rec.Sim,
		rec.Season,
		rec.Day,
		int64(rec.Type),
		rec.Created.UTC().Format(time.RFC3339Nano),
		payload,
	)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Get loads one record by feed id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (wire.Record, error) {
	var payload []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload FROM events WHERE id = ?`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return wire.Record{}, ErrNotFound
	}
	if err != nil {
		return wire.Record{}, fmt.Errorf("load record: %w", err)
	}
	rec, err := wire.Decode(payload)
	if err != nil {
		return wire.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// ListBySeason loads every archived record for one sim and season, in
// day-then-created order.
func (s *Store) ListBySeason(ctx context.Context, sim string, season int) ([]wire.Record, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT payload FROM events WHERE sim = ? AND season = ?
		 ORDER BY day, created`, sim, season)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []wire.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := wire.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}
