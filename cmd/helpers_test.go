package cmd

import (
	"regexp"
	"testing"
	"time"

	"github.com/chris-regnier/datepick/internal/config"
	"github.com/chris-regnier/datepick/internal/history"
	"github.com/chris-regnier/datepick/internal/history/markdown"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func testClock() time.Time {
	return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
}

func setupTestStore(t *testing.T) history.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{
		Storage:       "markdown",
		Locale:        "en",
		YearSelect:    "months",
		RecordHistory: true,
		HistoryLimit:  20,
	}
	jsonOutput = false
	initialDate = ""
	resumeLast = false
	parseRecord = false
	historyLimit = 0
	now = testClock
	t.Cleanup(func() { now = time.Now })
}
