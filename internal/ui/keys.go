package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle  key.Binding
	Open    key.Binding
	Confirm key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pick    key.Binding
	Prev    key.Binding
	Next    key.Binding
	DrillUp key.Binding
	Today   key.Binding
	Help    key.Binding
	Close   key.Binding
	Quit    key.Binding

	calendarOpen bool
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "calendar"),
		),
		Open: key.NewBinding(
			key.WithKeys("down", "alt+down"),
			key.WithHelp("↓", "open"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Prev: key.NewBinding(
			key.WithKeys("[", "pgup", "<"),
			key.WithHelp("[", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "pgdown", ">"),
			key.WithHelp("]", "next"),
		),
		DrillUp: key.NewBinding(
			key.WithKeys("u", "backspace"),
			key.WithHelp("u", "zoom out"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap. The footer follows whichever of the
// field or the calendar has the keyboard.
func (k keyMap) ShortHelp() []key.Binding {
	if k.calendarOpen {
		return []key.Binding{k.Pick, k.Prev, k.Next, k.DrillUp, k.Today, k.Close, k.Help}
	}
	return []key.Binding{k.Confirm, k.Toggle, k.Close, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pick, k.Prev, k.Next, k.DrillUp, k.Today},
		{k.Toggle, k.Confirm, k.Close, k.Quit, k.Help},
	}
}
