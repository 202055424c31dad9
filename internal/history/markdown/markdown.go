package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/history"
)

// Store implements history.Store using Markdown files with YAML front-matter.
type Store struct {
	baseDir string // e.g. ~/.datepick/picks/
}

// New creates a new Markdown file history backend.
func New(dataDir string) (*Store, error) {
	dir := filepath.Join(dataDir, "picks")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating picks directory: %v", history.ErrStorage, err)
	}
	return &Store{baseDir: dir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) pickPath(p history.Pick) string {
	t := p.PickedAt.UTC()
	return filepath.Join(s.baseDir, t.Format("2006"), t.Format("01"), p.ID+".md")
}

func marshal(p history.Pick) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "id: %s\n", p.ID)
	fmt.Fprintf(&b, "date: %q\n", calendar.Format(p.Date))
	fmt.Fprintf(&b, "picked_at: %q\n", p.PickedAt.UTC().Format(history.TimeLayout))
	fmt.Fprintf(&b, "source: %s\n", p.Source)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "Picked %s (%s).\n", calendar.Format(p.Date), p.Date.Time().Weekday())
	return []byte(b.String())
}

type frontMatter struct {
	ID       string `yaml:"id"`
	Date     string `yaml:"date"`
	PickedAt string `yaml:"picked_at"`
	Source   string `yaml:"source"`
}

func unmarshal(data []byte) (history.Pick, error) {
	var fm frontMatter
	if _, err := frontmatter.Parse(strings.NewReader(string(data)), &fm); err != nil {
		return history.Pick{}, fmt.Errorf("%w: parsing front-matter: %v", history.ErrStorage, err)
	}

	d, err := calendar.Parse(fm.Date)
	if err != nil {
		return history.Pick{}, fmt.Errorf("%w: parsing date: %v", history.ErrStorage, err)
	}
	pickedAt, err := time.Parse(history.TimeLayout, fm.PickedAt)
	if err != nil {
		return history.Pick{}, fmt.Errorf("%w: parsing picked_at: %v", history.ErrStorage, err)
	}

	return history.Pick{
		ID:       fm.ID,
		Date:     d,
		PickedAt: pickedAt,
		Source:   fm.Source,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", history.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", history.ErrStorage, err)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", history.ErrStorage, step, err)
	}

	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		return fail("acquiring lock", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("writing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", history.ErrStorage, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", history.ErrStorage, err)
	}
	return nil
}

// Record writes the pick to its own file.
func (s *Store) Record(p history.Pick) error {
	if err := p.Validate(); err != nil {
		return err
	}

	path := s.pickPath(p)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", history.ErrConflict, p.ID)
	}
	return atomicWrite(path, marshal(p))
}

// walk calls fn for every pick file under the base directory. Unreadable
// and malformed files are skipped.
func (s *Store) walk(fn func(path string, p history.Pick)) error {
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		p, err := unmarshal(data)
		if err != nil {
			return nil
		}
		fn(path, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: scanning picks: %v", history.ErrStorage, err)
	}
	return nil
}

// Recent returns up to limit picks, newest first.
func (s *Store) Recent(limit int) ([]history.Pick, error) {
	picks := []history.Pick{}
	if err := s.walk(func(_ string, p history.Pick) {
		picks = append(picks, p)
	}); err != nil {
		return nil, err
	}

	slices.SortFunc(picks, func(a, b history.Pick) int {
		if c := b.PickedAt.Compare(a.PickedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})

	if limit > 0 && limit < len(picks) {
		picks = picks[:limit]
	}
	return picks, nil
}

// Last returns the newest pick.
func (s *Store) Last() (history.Pick, error) {
	picks, err := s.Recent(1)
	if err != nil {
		return history.Pick{}, err
	}
	if len(picks) == 0 {
		return history.Pick{}, history.ErrNotFound
	}
	return picks[0], nil
}

// Clear deletes every pick file.
func (s *Store) Clear() (int, error) {
	var paths []string
	if err := s.walk(func(path string, _ history.Pick) {
		paths = append(paths, path)
	}); err != nil {
		return 0, err
	}

	for i, path := range paths {
		if err := os.Remove(path); err != nil {
			return i, fmt.Errorf("%w: removing %s: %v", history.ErrStorage, filepath.Base(path), err)
		}
	}
	return len(paths), nil
}
