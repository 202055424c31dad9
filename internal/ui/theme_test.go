package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/config"
)

func TestResolveThemeDefaultDark(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	if string(theme.Primary) == "" {
		t.Error("expected primary color to be set")
	}
	if theme.MarkdownStyle != "dark" {
		t.Errorf("expected markdown_style 'dark', got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset:        "default-dark",
		Primary:       "#FF0000",
		Accent:        "#00FF00",
		MarkdownStyle: "notty",
	})

	if string(theme.Primary) != "#FF0000" {
		t.Errorf("expected primary '#FF0000', got %q", string(theme.Primary))
	}
	if string(theme.Accent) != "#00FF00" {
		t.Errorf("expected accent '#00FF00', got %q", string(theme.Accent))
	}
	if theme.MarkdownStyle != "notty" {
		t.Errorf("expected markdown_style 'notty', got %q", theme.MarkdownStyle)
	}
	if theme.Danger != presets["default-dark"].Danger {
		t.Errorf("unset override changed danger to %q", theme.Danger)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	for _, preset := range []string{"", "nonexistent"} {
		theme := ResolveTheme(config.ThemeConfig{Preset: preset})
		if theme != presets["default-dark"] {
			t.Errorf("preset %q: expected default-dark, got %+v", preset, theme)
		}
	}
}

func TestResolveThemeAllPresets(t *testing.T) {
	cases := []struct {
		preset        string
		markdownStyle string
	}{
		{"default-dark", "dark"},
		{"default-light", "light"},
		{"dracula", "dark"},
		{"catppuccin-mocha", "dark"},
		{"catppuccin-latte", "light"},
		{"gruvbox-dark", "dark"},
	}

	if got := len(Presets()); got != len(cases) {
		t.Fatalf("Presets() returned %d names, want %d", got, len(cases))
	}

	for _, tc := range cases {
		t.Run(tc.preset, func(t *testing.T) {
			theme := ResolveTheme(config.ThemeConfig{Preset: tc.preset})

			if string(theme.Accent) == "" || string(theme.Danger) == "" || string(theme.Background) == "" {
				t.Errorf("expected all colors set, got %+v", theme)
			}
			if theme.MarkdownStyle != tc.markdownStyle {
				t.Errorf("expected markdown_style %q, got %q", tc.markdownStyle, theme.MarkdownStyle)
			}
		})
	}
}

func TestAllStylesIncludeBackground(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	styles := map[string]lipgloss.Style{
		"HelpStyle":   theme.HelpStyle(),
		"HeaderStyle": theme.HeaderStyle(),
		"AccentStyle": theme.AccentStyle(),
		"DangerStyle": theme.DangerStyle(),
		"BorderStyle": theme.BorderStyle(),
		"Normal":      theme.CellStyle(calendar.Normal),
		"Today":       theme.CellStyle(calendar.TodayCell),
		"Inactive":    theme.CellStyle(calendar.Inactive),
	}

	for name, style := range styles {
		if style.GetBackground() != theme.Background {
			t.Errorf("%s: expected background %v, got %v", name, theme.Background, style.GetBackground())
		}
	}
}

func TestCellStyleVariants(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dracula"})

	if got := theme.CellStyle(calendar.Selected).GetBackground(); got != theme.Accent {
		t.Errorf("selected background = %v, want accent", got)
	}
	if got := theme.CellStyle(calendar.TodayCell).GetForeground(); got != theme.Accent {
		t.Errorf("today foreground = %v, want accent", got)
	}
	if got := theme.CellStyle(calendar.Inactive).GetForeground(); got != theme.Muted {
		t.Errorf("inactive foreground = %v, want muted", got)
	}
	if got := theme.CellStyle(calendar.Normal).GetForeground(); got != theme.Primary {
		t.Errorf("normal foreground = %v, want primary", got)
	}
}

func TestPaintScreenDimensions(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	output := theme.PaintScreen("line1\nline2", 40, 10, 40)

	lines := strings.Split(stripANSI(output), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) < 40 {
			t.Errorf("line %d: expected min width 40, got %d", i, len(line))
		}
	}
}

func TestPaintScreenCentering(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	// termWidth=100, contentWidth=60 => leftPad=20
	output := theme.PaintScreen("hello", 100, 5, 60)

	first := strings.Split(stripANSI(output), "\n")[0]
	if !strings.HasPrefix(first, strings.Repeat(" ", 20)+"hello") {
		t.Errorf("expected 20 chars of left padding, got %q", first)
	}
}

func TestPaintScreenTruncatesHeight(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	output := theme.PaintScreen("a\nb\nc\nd", 10, 2, 10)
	if got := countLines(output); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}
