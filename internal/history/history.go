// Package history records the dates committed by the picker so a later
// session can resume from the last one.
package history

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Sentinel errors for history operations.
var (
	ErrNotFound   = errors.New("pick not found")
	ErrConflict   = errors.New("pick already recorded")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// TimeLayout is the stored form of PickedAt. The fraction is fixed width
// so stored timestamps sort as text.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Where a pick came from.
const (
	SourceTUI   = "tui"
	SourceFlag  = "flag"
	SourcePipe  = "pipe"
	SourceMCP   = "mcp"
	SourceParse = "parse"
)

// Pick is one committed selection.
type Pick struct {
	ID       string        `json:"id"`
	Date     calendar.Date `json:"date"`
	PickedAt time.Time     `json:"picked_at"`
	Source   string        `json:"source"`
}

// NewID generates a new nanoid for a pick.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// NewPick stamps d with a fresh ID and the given time in UTC. Sub-second
// precision is kept so picks made within one second stay ordered.
func NewPick(d calendar.Date, source string, at time.Time) (Pick, error) {
	id, err := NewID()
	if err != nil {
		return Pick{}, fmt.Errorf("%w: generating id: %v", ErrStorage, err)
	}
	p := Pick{
		ID:       id,
		Date:     d,
		PickedAt: at.UTC().Round(0),
		Source:   source,
	}
	return p, p.Validate()
}

// Validate checks that a pick can be stored.
func (p Pick) Validate() error {
	if !idPattern.MatchString(p.ID) {
		return fmt.Errorf("%w: invalid pick ID %q (must be 8 lowercase alphanumeric characters)", ErrValidation, p.ID)
	}
	if _, err := calendar.Parse(calendar.Format(p.Date)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if p.PickedAt.IsZero() {
		return fmt.Errorf("%w: pick %s has no timestamp", ErrValidation, p.ID)
	}
	if p.Source == "" {
		return fmt.Errorf("%w: pick %s has no source", ErrValidation, p.ID)
	}
	return nil
}

// Store persists picks.
type Store interface {
	// Record appends a pick. Recording the same ID twice fails with ErrConflict.
	Record(p Pick) error
	// Recent returns up to limit picks, newest first. A limit <= 0 returns all.
	Recent(limit int) ([]Pick, error)
	// Last returns the newest pick or ErrNotFound.
	Last() (Pick, error)
	// Clear removes every pick and reports how many were removed.
	Clear() (int, error)
	Close() error
}
