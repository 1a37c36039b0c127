// Package quiz is the active-session screen: one question at a time,
// selection, submission feedback, and advancement through the list.
package quiz

import (
	tea "charm.land/bubbletea/v2"

	sess "github.com/rishikadhanawade/pg-az900-quest/internal/quiz"
	"github.com/rishikadhanawade/pg-az900-quest/internal/router"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screen"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screens/results"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/layout"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

// QuizScreen drives a quiz session.
type QuizScreen struct {
	th          theme.Theme
	session     *sess.Session
	cursor      int
	quitConfirm bool
	notice      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for an already-started session.
func New(th theme.Theme, session *sess.Session) *QuizScreen {
	return &QuizScreen{th: th, session: session}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit to home"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.session.Revealed() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			// Dropping the session is the "go home" reset: filters and the
			// dataset stay, everything session-scoped is gone.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.session.Revealed() {
		if key == "enter" || key == "n" || key == "space" || key == " " {
			return s.advance()
		}
		return s, nil
	}

	choices := s.session.Current().Choices()

	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(choices)-1 {
			s.cursor++
		}
	case "space", " ":
		if s.cursor < len(choices) {
			if err := s.session.Toggle(choices[s.cursor].Letter); err == nil {
				s.notice = ""
			}
		}
	case "enter":
		if err := s.session.Submit(); err != nil {
			s.notice = "Select an answer first."
			return s, nil
		}
		s.notice = ""
	default:
		// Letter keys toggle the matching option directly.
		if len(key) == 1 && key[0] >= 'a' && key[0] <= 'f' {
			if err := s.session.Toggle(key); err == nil {
				s.notice = ""
			}
		}
	}

	return s, nil
}

// advance moves past a revealed question, or replaces this screen with the
// results once the list is exhausted.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	done, err := s.session.Next()
	if err != nil {
		return s, nil
	}
	if !done {
		s.cursor = 0
		return s, nil
	}

	result, err := s.session.Result()
	if err != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	th := s.th
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(th, result)}
	}
}
