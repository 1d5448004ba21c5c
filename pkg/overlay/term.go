package overlay

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bastiangx/typeahead/pkg/editable"
)

// TermRenderer draws the suggestion box as a bordered lipgloss list on a
// line-oriented terminal, indented to the anchor column. Used by the CLI
// demo mode.
type TermRenderer struct {
	w     io.Writer
	frame lipgloss.Style
	word  lipgloss.Style
}

// NewTermRenderer returns a renderer writing to w.
func NewTermRenderer(w io.Writer) *TermRenderer {
	return &TermRenderer{
		w: w,
		frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#907aa9", Dark: "#c4a7e7"}).
			Padding(0, 1),
		word: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
	}
}

func (r *TermRenderer) Show(origin editable.Rect, rows []Row) {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = fmt.Sprintf("%d. %s", row.Index+1, r.word.Render(row.Text))
	}

	indent := ""
	if origin.X > 0 {
		indent = strings.Repeat(" ", int(origin.X))
	}
	for _, line := range strings.Split(r.frame.Render(strings.Join(lines, "\n")), "\n") {
		fmt.Fprintln(r.w, indent+line)
	}
}

// Hide is a no-op: line-oriented output leaves nothing persistent to clear.
func (r *TermRenderer) Hide() {}
