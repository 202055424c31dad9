package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const (
	pagerFooter   = "↑/↓ scroll • q quit"
	pagerMaxWidth = 100
	// title and footer
	pagerChrome = 2
)

// pagerModel scrolls long listings in the alternate screen.
type pagerModel struct {
	viewport viewport.Model
	title    string
	content  string
	ready    bool
	maxWidth int // 0 means the full terminal width
	width    int
	height   int
	theme    Theme
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(msg.Height-pagerChrome, 1)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), h)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = m.contentWidth(), h
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := m.theme.HeaderStyle().Render(m.title)
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("%s • %3.0f%%", pagerFooter, m.viewport.ScrollPercent()*100))
	return m.theme.PaintScreen(title+"\n"+m.viewport.View()+"\n"+footer, m.width, m.height, m.contentWidth())
}

// PageOutput shows content in a pager when stdout is a terminal too short
// to hold it. Otherwise it prints content as is.
func PageOutput(content, title string, theme Theme) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(content)
		return nil
	}

	_, height, err := term.GetSize(fd)
	if err != nil || strings.Count(content, "\n")+1 <= height-pagerChrome {
		fmt.Print(content)
		return nil
	}

	m := pagerModel{title: title, content: content, maxWidth: pagerMaxWidth, theme: theme}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// OutputOrPage pages content bound for the terminal and writes everything
// else, including JSON, straight to w.
func OutputOrPage(w io.Writer, content, title string, jsonOutput bool, theme Theme) error {
	if !jsonOutput && w == os.Stdout {
		return PageOutput(content, title, theme)
	}
	_, err := fmt.Fprint(w, content)
	return err
}
