package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderer caches one glamour renderer per width and style.
var renderer struct {
	sync.Mutex
	r     *glamour.TermRenderer
	width int
	style string
}

func termRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	if renderer.r != nil && renderer.width == width && renderer.style == style {
		return renderer.r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderer.r, renderer.width, renderer.style = r, width, style
	return r, nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour
// style. The content is returned unchanged if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	renderer.Lock()
	defer renderer.Unlock()

	r, err := termRenderer(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

const helpMarkdown = `## Field

- **enter** accept the typed date
- **tab** or **↓** open the calendar
- **esc** cancel

## Calendar

- **arrows** or **h j k l** move
- **enter** pick the day, month or year
- **[ ]** previous or next page
- **u** zoom out to months, then years
- **t** jump to today
- **esc** close the calendar

Press **?** to close this help.`

func (m Model) helpOverlay() string {
	width := 48
	if m.width > 0 && m.width < width+4 {
		width = m.width - 4
	}
	body := RenderMarkdownWithStyle(helpMarkdown, width, m.theme.MarkdownStyle)
	return m.theme.BorderStyle().Padding(0, 1).Render(body)
}
