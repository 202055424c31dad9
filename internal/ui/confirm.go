package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "ctrl+c"))
)

// confirmModel is a single y/N question. It defaults to no.
type confirmModel struct {
	prompt    string
	detail    string
	theme     Theme
	confirmed bool
	done      bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, confirmYes):
		m.confirmed = true
	case key.Matches(k, confirmNo):
		m.confirmed = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	question := m.theme.HeaderStyle().Render(m.prompt) + " " + m.theme.DangerStyle().Render("[y/N]") + " "
	if m.detail == "" {
		return question
	}
	return m.theme.HelpStyle().Render(m.detail) + "\n" + question
}

// Confirm asks a yes/no question on stderr. detail, when set, is shown
// above the question. Anything but "y" declines.
func Confirm(prompt, detail string, theme Theme) (bool, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, detail: detail, theme: theme}, tea.WithOutput(os.Stderr))
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
