package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

// anyLabel is shown for the empty selection.
const anyLabel = "All"

// Selector cycles through a fixed list of values with left/right. The first
// position is always the empty value, rendered as "All".
type Selector struct {
	Label   string
	values  []string // values[0] == ""
	index   int
	Focused bool
}

// NewSelector creates a selector over the given values plus the leading
// "any" position.
func NewSelector(label string, values []string) Selector {
	all := make([]string, 0, len(values)+1)
	all = append(all, "")
	all = append(all, values...)
	return Selector{Label: label, values: all}
}

// Value returns the selected value; empty string means "any".
func (s Selector) Value() string {
	return s.values[s.index]
}

// Changed reports whether the message moved the selection.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	switch kmsg.String() {
	case "left", "h":
		s.index--
		if s.index < 0 {
			s.index = len(s.values) - 1
		}
		return s, true
	case "right", "l":
		s.index = (s.index + 1) % len(s.values)
		return s, true
	}
	return s, false
}

// View renders one selector row.
func (s Selector) View(th theme.Theme) string {
	value := s.Value()
	if value == "" {
		value = anyLabel
	}

	label := lipgloss.NewStyle().Foreground(th.TextDim).Width(12).Render(s.Label)
	display := fmt.Sprintf("◂ %-36s ▸", value)

	if s.Focused {
		return label + lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Render(display)
	}
	return label + lipgloss.NewStyle().Foreground(th.Text).Render(display)
}
