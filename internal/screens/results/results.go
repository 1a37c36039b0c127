// Package results shows the final score once a session's question list is
// exhausted.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/quiz"
	"github.com/rishikadhanawade/pg-az900-quest/internal/router"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screen"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screens/review"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/components"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/layout"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

// ResultsScreen displays a completed session's score.
type ResultsScreen struct {
	th     theme.Theme
	result quiz.Result
	menu   components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a finished session.
func New(th theme.Theme, result quiz.Result) *ResultsScreen {
	s := &ResultsScreen{th: th, result: result}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "REVIEW ANSWERS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(th, result.History)}
			}
		}},
		{Label: "BACK TO HOME", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	contentWidth := min(width-4, 64)
	res := s.result

	var b strings.Builder

	b.WriteString(s.th.Title().Width(contentWidth).Render("Quiz complete!"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d correct", res.Score, res.Total)
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Foreground(s.th.Text).
		Bold(true).
		Render(score))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", res.Accuracy(), true, contentWidth)
	b.WriteString(bar.View(s.th))
	b.WriteString("\n\n\n")

	b.WriteString(s.menu.View(s.th))

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(contentWidth).Render(b.String()))
}
