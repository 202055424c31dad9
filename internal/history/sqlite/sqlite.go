package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements history.Store using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite history backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", history.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "datepick.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", history.ErrStorage, err)
	}

	// The pragma reports the resulting mode as a row.
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", history.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS picks (
			id        TEXT PRIMARY KEY,
			date      TEXT NOT NULL CHECK(length(date) = 10),
			picked_at TEXT NOT NULL,
			source    TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_picks_picked_at ON picks(picked_at DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", history.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a pick.
func (s *Store) Record(p history.Pick) error {
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT INTO picks (id, date, picked_at, source) VALUES (?, ?, ?, ?)",
		p.ID,
		calendar.Format(p.Date),
		p.PickedAt.UTC().Format(history.TimeLayout),
		p.Source,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return fmt.Errorf("%w: %s", history.ErrConflict, p.ID)
		}
		return fmt.Errorf("%w: inserting pick: %v", history.ErrStorage, err)
	}
	return nil
}

// Recent returns up to limit picks, newest first.
func (s *Store) Recent(limit int) ([]history.Pick, error) {
	query := "SELECT id, date, picked_at, source FROM picks ORDER BY picked_at DESC, id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing picks: %v", history.ErrStorage, err)
	}
	defer rows.Close()

	picks := []history.Pick{}
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, err
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating picks: %v", history.ErrStorage, err)
	}
	return picks, nil
}

// Last returns the newest pick.
func (s *Store) Last() (history.Pick, error) {
	row := s.db.QueryRow("SELECT id, date, picked_at, source FROM picks ORDER BY picked_at DESC, id DESC LIMIT 1")
	p, err := scanPick(row)
	if errors.Is(err, sql.ErrNoRows) {
		return history.Pick{}, history.ErrNotFound
	}
	return p, err
}

// Clear deletes every pick.
func (s *Store) Clear() (int, error) {
	result, err := s.db.Exec("DELETE FROM picks")
	if err != nil {
		return 0, fmt.Errorf("%w: clearing picks: %v", history.ErrStorage, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: checking rows affected: %v", history.ErrStorage, err)
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPick(row scanner) (history.Pick, error) {
	var p history.Pick
	var dateStr, pickedStr string
	if err := row.Scan(&p.ID, &dateStr, &pickedStr, &p.Source); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return history.Pick{}, err
		}
		return history.Pick{}, fmt.Errorf("%w: scanning pick: %v", history.ErrStorage, err)
	}

	var err error
	if p.Date, err = calendar.Parse(dateStr); err != nil {
		return history.Pick{}, fmt.Errorf("%w: parsing date: %v", history.ErrStorage, err)
	}
	if p.PickedAt, err = time.Parse(history.TimeLayout, pickedStr); err != nil {
		return history.Pick{}, fmt.Errorf("%w: parsing picked_at: %v", history.ErrStorage, err)
	}
	return p, nil
}
