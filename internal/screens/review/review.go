// Package review renders the answered-question history of a finished
// session. Read-only: nothing here mutates session data.
package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/quiz"
	"github.com/rishikadhanawade/pg-az900-quest/internal/router"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screen"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/layout"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

// ReviewScreen walks the session history entry by entry.
type ReviewScreen struct {
	th       theme.Theme
	history  []quiz.Answer
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates the review screen over a session history.
func New(th theme.Theme, history []quiz.Answer) *ReviewScreen {
	return &ReviewScreen{
		th:       th,
		history:  history,
		expanded: make(map[int]bool),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Explanation"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.history)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.history) == 0 {
		return s.th.Dim().Render("\n\n  Nothing to review.")
	}

	contentWidth := min(width-4, 76)

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selected entry visible on small terminals by windowing
	// around it.
	const entryBudget = 3
	visible := max(height/entryBudget, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.history) && i-start < visible; i++ {
		b.WriteString(s.renderEntry(i, contentWidth))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(contentWidth).Render(b.String()))
}

func (s *ReviewScreen) renderEntry(i int, width int) string {
	a := s.history[i]

	verdict := s.th.Correct().Render("✓")
	if !a.Correct {
		verdict = s.th.Incorrect().Render("✗")
	}

	cursor := "  "
	questionStyle := s.th.Body()
	if i == s.selected {
		cursor = "▸ "
		questionStyle = questionStyle.Bold(true)
	}

	header := fmt.Sprintf("%s%s %2d. %s", cursor, verdict, i+1,
		questionStyle.Render(truncate(a.Question.Question, width-12)))

	yours := strings.Join(a.Selected, ", ")
	correct := strings.Join(correctLetters(a), ", ")
	detail := s.th.Dim().Render(fmt.Sprintf("      yours: %s    correct: %s", yours, correct))

	out := header + "\n" + detail
	if s.expanded[i] && a.Question.Explanation != "" {
		out += "\n" + s.th.Dim().Italic(true).Render("      "+a.Question.Explanation)
	}
	return out
}

func correctLetters(a quiz.Answer) []string {
	set := a.Question.CorrectSet()
	var letters []string
	for _, l := range []string{"A", "B", "C", "D", "E", "F"} {
		if _, ok := set[l]; ok {
			letters = append(letters, l)
		}
	}
	return letters
}

func truncate(s string, limit int) string {
	if limit <= 3 || len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
