package history_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
	"github.com/chris-regnier/datepick/internal/history/markdown"
	"github.com/chris-regnier/datepick/internal/history/sqlite"
)

type storeFactory func(t *testing.T) history.Store

func markdownFactory(t *testing.T) history.Store {
	t.Helper()
	s, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating markdown store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(t *testing.T) history.Store {
	t.Helper()
	s, err := sqlite.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makePick(t *testing.T, date string, at time.Time) history.Pick {
	t.Helper()
	p, err := history.NewPick(calendar.MustParse(date), history.SourceTUI, at)
	if err != nil {
		t.Fatalf("NewPick: %v", err)
	}
	return p
}

func base() time.Time {
	return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
}

func runContractTests(t *testing.T, name string, factory storeFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Record and Last", func(t *testing.T) {
			s := factory(t)
			p := makePick(t, "2024-06-15", base())
			if err := s.Record(p); err != nil {
				t.Fatalf("Record: %v", err)
			}

			got, err := s.Last()
			if err != nil {
				t.Fatalf("Last: %v", err)
			}
			if got.ID != p.ID || !got.Date.Equal(p.Date) || got.Source != p.Source {
				t.Errorf("Last = %+v, want %+v", got, p)
			}
			if !got.PickedAt.Equal(p.PickedAt) {
				t.Errorf("PickedAt = %v, want %v", got.PickedAt, p.PickedAt)
			}
		})

		t.Run("Last on empty store", func(t *testing.T) {
			s := factory(t)
			if _, err := s.Last(); !errors.Is(err, history.ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})

		t.Run("Recent is newest first", func(t *testing.T) {
			s := factory(t)
			dates := []string{"2024-01-01", "2024-02-29", "1999-12-31"}
			for i, d := range dates {
				if err := s.Record(makePick(t, d, base().Add(time.Duration(i)*time.Minute))); err != nil {
					t.Fatalf("Record %s: %v", d, err)
				}
			}

			picks, err := s.Recent(0)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(picks) != 3 {
				t.Fatalf("got %d picks, want 3", len(picks))
			}
			want := []string{"1999-12-31", "2024-02-29", "2024-01-01"}
			for i, p := range picks {
				if p.Date.String() != want[i] {
					t.Errorf("picks[%d] = %s, want %s", i, p.Date, want[i])
				}
			}
		})

		t.Run("Recent honours limit", func(t *testing.T) {
			s := factory(t)
			for i := range 5 {
				if err := s.Record(makePick(t, "2024-06-15", base().Add(time.Duration(i)*time.Hour))); err != nil {
					t.Fatalf("Record: %v", err)
				}
			}
			picks, err := s.Recent(2)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(picks) != 2 {
				t.Errorf("got %d picks, want 2", len(picks))
			}
		})

		t.Run("Recent on empty store", func(t *testing.T) {
			s := factory(t)
			picks, err := s.Recent(10)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if picks == nil || len(picks) != 0 {
				t.Errorf("Recent = %v, want empty non-nil slice", picks)
			}
		})

		t.Run("Record rejects duplicates", func(t *testing.T) {
			s := factory(t)
			p := makePick(t, "2024-06-15", base())
			if err := s.Record(p); err != nil {
				t.Fatalf("Record: %v", err)
			}
			if err := s.Record(p); !errors.Is(err, history.ErrConflict) {
				t.Errorf("second Record err = %v, want ErrConflict", err)
			}
		})

		t.Run("Record rejects invalid picks", func(t *testing.T) {
			s := factory(t)
			p := makePick(t, "2024-06-15", base())
			p.ID = "NOT-AN-ID"
			if err := s.Record(p); !errors.Is(err, history.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})

		t.Run("Last orders picks within one second", func(t *testing.T) {
			s := factory(t)
			first := makePick(t, "2024-01-01", base().Add(100*time.Millisecond))
			second := makePick(t, "2024-06-15", base().Add(900*time.Millisecond))
			// Make the older pick win any tie-break on ID.
			first.ID, second.ID = "zzzzzzzz", "aaaaaaaa"
			for _, p := range []history.Pick{first, second} {
				if err := s.Record(p); err != nil {
					t.Fatalf("Record: %v", err)
				}
			}

			got, err := s.Last()
			if err != nil {
				t.Fatalf("Last: %v", err)
			}
			if got.ID != second.ID {
				t.Errorf("Last = %s (%s), want %s", got.ID, got.Date, second.ID)
			}
			if !got.PickedAt.Equal(second.PickedAt) {
				t.Errorf("PickedAt = %v, want %v", got.PickedAt, second.PickedAt)
			}
		})

		t.Run("Clear", func(t *testing.T) {
			s := factory(t)
			for i := range 3 {
				if err := s.Record(makePick(t, "2024-06-15", base().Add(time.Duration(i)*time.Second))); err != nil {
					t.Fatalf("Record: %v", err)
				}
			}
			n, err := s.Clear()
			if err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if n != 3 {
				t.Errorf("Clear removed %d, want 3", n)
			}
			if _, err := s.Last(); !errors.Is(err, history.ErrNotFound) {
				t.Errorf("Last after Clear err = %v", err)
			}
		})
	})
}

func TestMarkdownContract(t *testing.T) {
	runContractTests(t, "markdown", markdownFactory)
}

func TestSQLiteContract(t *testing.T) {
	runContractTests(t, "sqlite", sqliteFactory)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	p := makePick(t, "2024-06-15", base())

	s, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("sqlite.New: %v", err)
	}
	if err := s.Record(p); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s.Close()

	reopened, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("Last = %s, want %s", got.ID, p.ID)
	}
}
