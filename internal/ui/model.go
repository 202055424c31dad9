package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/picker"
)

// gridWidth is the inner width of every calendar page: seven two-digit
// days with single spaces, or four five-column month and year cells.
const gridWidth = 20

// RunOptions configure an interactive picker session.
type RunOptions struct {
	Picker picker.Options
	Theme  Theme
	// QuitOnSelect ends the session as soon as a day is picked.
	QuitOnSelect bool
	// Output receives the UI; nil means stderr so stdout stays free for the result.
	Output io.Writer
}

// Result is the outcome of an interactive session.
type Result struct {
	Date      calendar.Date
	Committed bool
}

// Model is the Bubble Tea model for one date field with its calendar.
type Model struct {
	state        picker.State
	input        textinput.Model
	keys         keyMap
	help         help.Model
	theme        Theme
	cursor       int // day in Days, grid index in Months and Years
	showHelp     bool
	quitOnSelect bool
	done         bool
	cancelled    bool
	width        int
}

// NewModel builds a picker model. The calendar starts closed with the
// field focused.
func NewModel(opts RunOptions) Model {
	st := picker.New(opts.Picker)

	ti := textinput.New()
	ti.Prompt = "Date: "
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 32
	ti.Width = gridWidth
	ti.PromptStyle = opts.Theme.HeaderStyle()
	ti.TextStyle = lipgloss.NewStyle().Foreground(opts.Theme.Primary)
	ti.PlaceholderStyle = opts.Theme.HelpStyle()
	ti.SetValue(st.InputText())
	ti.CursorEnd()
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = opts.Theme.AccentStyle()
	h.Styles.ShortDesc = opts.Theme.HelpStyle()
	h.Styles.ShortSeparator = opts.Theme.HelpStyle()
	h.Styles.FullKey = opts.Theme.AccentStyle()
	h.Styles.FullDesc = opts.Theme.HelpStyle()
	h.Styles.FullSeparator = opts.Theme.HelpStyle()

	m := Model{
		state:        *st,
		input:        ti,
		keys:         defaultKeyMap(),
		help:         h,
		theme:        opts.Theme,
		quitOnSelect: opts.QuitOnSelect,
	}
	m.syncCursor()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Help overlay swallows everything but its own close keys
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m.cancel()
			case key.Matches(msg, m.keys.Help, m.keys.Close):
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.cancel()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.state.Toggle()
			m.syncCursor()
			return m, nil
		}

		if m.state.IsOpen() {
			return m.updateCalendar(msg)
		}
		return m.updateField(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.cancel()
	case key.Matches(msg, m.keys.Open):
		m.state.Open()
		m.syncCursor()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.accept()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.InputText() {
		m.state.SetInput(v)
		m.syncCursor()
	}
	return m, cmd
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.state.Close()
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
	case key.Matches(msg, m.keys.Prev):
		m.state.Prev()
		m.syncCursor()
	case key.Matches(msg, m.keys.Next):
		m.state.Next()
		m.syncCursor()
	case key.Matches(msg, m.keys.DrillUp):
		m.state.DrillUp()
		m.syncCursor()
	case key.Matches(msg, m.keys.Today):
		m.state.GoToToday()
		m.syncCursor()
	case key.Matches(msg, m.keys.Pick):
		return m.pick()
	}
	return m, nil
}

// pick activates the cell under the cursor.
func (m Model) pick() (tea.Model, tea.Cmd) {
	switch m.state.View() {
	case picker.Days:
		if err := m.state.SelectDay(m.cursor); err != nil {
			return m, nil
		}
		m.input.SetValue(m.state.InputText())
		m.input.CursorEnd()
		if m.quitOnSelect {
			m.done = true
			return m, tea.Quit
		}
	case picker.Months:
		if err := m.state.SelectMonth(time.Month(m.cursor + 1)); err != nil {
			return m, nil
		}
	case picker.Years:
		if err := m.state.SelectYear(m.windowStart() + m.cursor); err != nil {
			return m, nil
		}
	}
	m.syncCursor()
	return m, nil
}

// accept finishes the session when the field holds a valid date.
func (m Model) accept() (tea.Model, tea.Cmd) {
	if m.state.InputError() != nil {
		return m, nil
	}
	if _, ok := m.state.Selected(); !ok {
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.cancelled = true
	return m, tea.Quit
}

func (m Model) columns() int {
	if m.state.View() == picker.Days {
		return 7
	}
	return 4
}

func (m Model) windowStart() int {
	return calendar.DecadeStart(m.state.Anchor().Year) - 1
}

// syncCursor puts the cursor on the anchor cell of the active view.
func (m *Model) syncCursor() {
	a := m.state.Anchor()
	switch m.state.View() {
	case picker.Days:
		m.cursor = min(max(a.Day, 1), calendar.DaysInMonth(a.Year, a.Month))
	case picker.Months:
		m.cursor = int(a.Month) - 1
	case picker.Years:
		m.cursor = a.Year - m.windowStart()
	}
}

// moveCursor shifts the cursor by delta cells, paging when it leaves the
// visible month, year or decade.
func (m *Model) moveCursor(delta int) {
	switch m.state.View() {
	case picker.Days:
		a := m.state.Anchor()
		target := m.cursor + delta
		dim := calendar.DaysInMonth(a.Year, a.Month)
		switch {
		case target < 1:
			m.state.Prev()
			if b := m.state.Anchor(); b != a {
				target += calendar.DaysInMonth(b.Year, b.Month)
			}
		case target > dim:
			m.state.Next()
			if m.state.Anchor() != a {
				target -= dim
			}
		}
		b := m.state.Anchor()
		m.cursor = min(max(target, 1), calendar.DaysInMonth(b.Year, b.Month))

	case picker.Months:
		target := m.cursor + delta
		switch {
		case target < 0:
			m.state.Prev()
			target += 12
		case target > 11:
			m.state.Next()
			target -= 12
		}
		m.cursor = min(max(target, 0), 11)

	case picker.Years:
		year := m.windowStart() + m.cursor + delta
		if year < m.windowStart() {
			m.state.Prev()
		} else if year >= m.windowStart()+calendar.YearCells {
			m.state.Next()
		}
		m.cursor = min(max(year-m.windowStart(), 0), calendar.YearCells-1)
	}
}

// Result reports the committed date once the session has ended.
func (m Model) Result() Result {
	if !m.done {
		return Result{}
	}
	d, ok := m.state.Selected()
	return Result{Date: d, Committed: ok}
}

// Snapshot returns the render contract of the underlying picker.
func (m Model) Snapshot() picker.Snapshot {
	return m.state.Snapshot()
}

func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	sections := []string{m.input.View()}
	if msg := m.state.InputMessage(); msg != "" {
		sections = append(sections, m.theme.DangerStyle().Render(msg))
	}

	switch {
	case m.showHelp:
		sections = append(sections, m.helpOverlay())
	case m.state.IsOpen():
		sections = append(sections, m.theme.BorderStyle().Padding(0, 1).Render(m.renderGrid()))
	}

	keys := m.keys
	keys.calendarOpen = m.state.IsOpen()
	sections = append(sections, m.help.View(keys))

	return strings.Join(sections, "\n")
}

func (m Model) renderGrid() string {
	snap := m.state.Snapshot()
	bg := lipgloss.NewStyle().Background(m.theme.Background)
	header := m.theme.HeaderStyle().Width(gridWidth).Align(lipgloss.Center).
		Render("‹ " + snap.Header + " ›")
	lines := []string{header}

	switch snap.View {
	case picker.Days:
		names := make([]string, len(snap.Weekdays))
		for i, wd := range snap.Weekdays {
			names[i] = m.theme.HelpStyle().Width(2).Render(wd)
		}
		lines = append(lines, strings.Join(names, bg.Render(" ")))

		for row := 0; row < calendar.GridCells/7; row++ {
			cells := make([]string, 7)
			for col := range cells {
				c := snap.Days[row*7+col]
				style := m.theme.CellStyle(c.Variant)
				if c.Selectable() && c.Value == m.cursor {
					style = m.theme.CursorStyle()
				}
				cells[col] = style.Width(2).Align(lipgloss.Right).Render(strconv.Itoa(c.Value))
			}
			lines = append(lines, strings.Join(cells, bg.Render(" ")))
		}

	case picker.Months:
		for row := 0; row < 3; row++ {
			var b strings.Builder
			for _, c := range snap.Months[row*4 : row*4+4] {
				style := m.theme.CellStyle(c.Variant)
				if c.Index == m.cursor {
					style = m.theme.CursorStyle()
				}
				b.WriteString(style.Width(5).Align(lipgloss.Center).Render(c.Name))
			}
			lines = append(lines, b.String())
		}

	case picker.Years:
		for row := 0; row < calendar.YearCells/4; row++ {
			var b strings.Builder
			for i, c := range snap.Years[row*4 : row*4+4] {
				style := m.theme.CellStyle(c.Variant)
				if row*4+i == m.cursor {
					style = m.theme.CursorStyle()
				}
				b.WriteString(style.Width(5).Align(lipgloss.Center).Render(fmt.Sprintf("%04d", c.Year)))
			}
			lines = append(lines, b.String())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts an interactive session and blocks until the user accepts a
// date, cancels, or ctx is done.
func Run(ctx context.Context, opts RunOptions) (Result, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	p := tea.NewProgram(NewModel(opts), tea.WithContext(ctx), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result(), nil
}
