package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	cols       INTEGER NOT NULL,
	rows       INTEGER NOT NULL,
	generation INTEGER NOT NULL,
	payload    TEXT NOT NULL,
	saved_at   INTEGER NOT NULL
)`

// SQLiteStore keeps one save per slot in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	slot string
	now  func() time.Time
}

// OpenSQLite opens (or creates) the database at path and prepares the saves
// table. An empty slot selects "default".
func OpenSQLite(path, slot string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if strings.TrimSpace(slot) == "" {
		slot = "default"
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, ioErr("open sqlite db", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, ioErr("ping sqlite db", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, ioErr("create saves table", err)
	}
	return &SQLiteStore{db: db, slot: slot, now: time.Now}, nil
}

// Slot returns the slot this store reads and writes.
func (s *SQLiteStore) Slot() string { return s.slot }

// Save upserts rec into the store's slot.
func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	var payload strings.Builder
	if err := Encode(&payload, rec); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO saves (slot, cols, rows, generation, payload, saved_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
	cols = excluded.cols,
	rows = excluded.rows,
	generation = excluded.generation,
	payload = excluded.payload,
	saved_at = excluded.saved_at`,
		s.slot, rec.Cols, rec.Rows, rec.Generation, payload.String(), s.now().UTC().UnixMilli())
	if err != nil {
		return ioErr("upsert save", err)
	}
	return nil
}

// Load reads the record stored in the slot.
func (s *SQLiteStore) Load(ctx context.Context) (Record, error) {
	if s == nil || s.db == nil {
		return Record{}, fmt.Errorf("storage is not configured")
	}
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM saves WHERE slot = ?`, s.slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: slot %q", ErrNotFound, s.slot)
	}
	if err != nil {
		return Record{}, ioErr("query save", err)
	}
	return Decode(strings.NewReader(payload))
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
