package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/components"
)

func (s *QuizScreen) View(width, height int) string {
	if s.quitConfirm {
		return s.renderQuitConfirm(width)
	}

	contentWidth := min(width-4, 76)
	q := s.session.Current()

	var sections []string
	sections = append(sections, s.renderProgress(contentWidth))
	sections = append(sections, s.renderQuestion(q, contentWidth))
	sections = append(sections, s.renderChoices(q))

	if s.session.Revealed() {
		sections = append(sections, s.renderFeedback(q, contentWidth))
	} else if s.notice != "" {
		sections = append(sections, s.th.Alert().Render("  "+s.notice))
	}

	content := strings.Join(sections, "\n\n")
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(contentWidth).Render(content))
}

func (s *QuizScreen) renderProgress(width int) string {
	index := s.session.Index()
	total := s.session.Total()

	line := s.th.Dim().Render(fmt.Sprintf("Question %d of %d", index+1, total)) +
		strings.Repeat(" ", 4) +
		s.th.Body().Render(fmt.Sprintf("Score: %d", s.session.Score()))

	bar := components.NewProgressBar("", float64(index)/float64(total), false, width)
	return line + "\n" + bar.View(s.th)
}

func (s *QuizScreen) renderQuestion(q dataset.Record, width int) string {
	meta := s.th.Dim().Render(fmt.Sprintf("%s · %s · %s", q.Domain, q.Difficulty, q.Type))
	text := s.th.Body().Bold(true).Render(q.Question)
	body := meta + "\n\n" + text
	if q.IsMulti() {
		body += "\n" + s.th.Dim().Italic(true).Render("Select all that apply.")
	}
	return s.th.Card().Width(width).Render(body)
}

func (s *QuizScreen) renderChoices(q dataset.Record) string {
	correct := q.CorrectSet()
	revealed := s.session.Revealed()

	var b strings.Builder
	for i, c := range q.Choices() {
		cursor := "  "
		if i == s.cursor && !revealed {
			cursor = "▸ "
		}

		marker := s.marker(q, c.Letter)
		line := fmt.Sprintf("%s%s %s)  %s", cursor, marker, c.Letter, c.Text)

		style := s.th.Body()
		switch {
		case revealed:
			_, isCorrect := correct[c.Letter]
			selected := s.session.Selected(c.Letter) || answeredWith(s, c.Letter)
			switch {
			case isCorrect:
				style = s.th.Correct()
			case selected:
				style = s.th.Incorrect()
			default:
				style = s.th.Dim()
			}
		case s.session.Selected(c.Letter):
			style = lipgloss.NewStyle().Foreground(s.th.Secondary).Bold(true)
		case i == s.cursor:
			style = lipgloss.NewStyle().Foreground(s.th.Primary).Bold(true)
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// marker renders the selection box for an option: radio for single-typed
// questions, checkbox for multi.
func (s *QuizScreen) marker(q dataset.Record, letter string) string {
	selected := s.session.Selected(letter) || answeredWith(s, letter)
	if q.IsMulti() {
		if selected {
			return "[x]"
		}
		return "[ ]"
	}
	if selected {
		return "(•)"
	}
	return "( )"
}

// answeredWith reports whether the revealed answer included the letter.
// After Submit the live selection still holds it, but this keeps the view
// honest if reveal rendering ever outlives the selection.
func answeredWith(s *QuizScreen, letter string) bool {
	if !s.session.Revealed() {
		return false
	}
	last, ok := s.session.LastAnswer()
	if !ok {
		return false
	}
	for _, l := range last.Selected {
		if l == letter {
			return true
		}
	}
	return false
}

func (s *QuizScreen) renderFeedback(q dataset.Record, width int) string {
	last, ok := s.session.LastAnswer()
	if !ok {
		return ""
	}

	var verdict string
	if last.Correct {
		verdict = s.th.Correct().Render("✓ Correct!")
	} else {
		verdict = s.th.Incorrect().Render("✗ Incorrect") +
			s.th.Dim().Render("  — correct: "+strings.Join(sortedSet(q.CorrectSet()), ", "))
	}

	body := verdict
	if q.Explanation != "" {
		body += "\n\n" + s.th.Body().Render(q.Explanation)
	}
	body += "\n\n" + s.th.Dim().Italic(true).Render("Press enter for the next question.")
	return s.th.Card().Width(width).Render(body)
}

func (s *QuizScreen) renderQuitConfirm(width int) string {
	body := s.th.Body().Bold(true).Render("Quit this quiz?") + "\n\n" +
		s.th.Dim().Render("Progress for this session will be discarded.") + "\n\n" +
		s.th.Body().Render("y — quit to home    n — keep going")
	card := s.th.Card().Width(min(width-4, 48)).Render(body)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func sortedSet(set map[string]struct{}) []string {
	letters := make([]string, 0, len(set))
	for _, l := range []string{"A", "B", "C", "D", "E", "F"} {
		if _, ok := set[l]; ok {
			letters = append(letters, l)
		}
	}
	return letters
}
