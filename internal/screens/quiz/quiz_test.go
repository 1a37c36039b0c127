package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
	sess "github.com/rishikadhanawade/pg-az900-quest/internal/quiz"
	"github.com/rishikadhanawade/pg-az900-quest/internal/router"
	"github.com/rishikadhanawade/pg-az900-quest/internal/screens/results"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []dataset.Record {
	return []dataset.Record{
		{
			QuestionID: "q1",
			Type:       dataset.TypeSingle,
			Question:   "Pick A",
			Options:    [6]string{"one", "two", "three"},
			Correct:    "A",
		},
		{
			QuestionID: "q2",
			Type:       dataset.TypeMulti,
			Question:   "Pick B and C",
			Options:    [6]string{"one", "two", "three"},
			Correct:    "B;C",
		},
	}
}

func testScreen(t *testing.T) (*QuizScreen, *sess.Session) {
	t.Helper()
	session, err := sess.NewSession(testQuestions(), sess.Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return New(theme.Dark(), session), session
}

func TestLetterKeyTogglesOption(t *testing.T) {
	s, session := testScreen(t)

	s.Update(keyPress('a'))

	if !session.Selected("A") {
		t.Error("expected 'a' to select option A")
	}
}

func TestSubmitWithoutSelectionShowsNotice(t *testing.T) {
	s, session := testScreen(t)

	s.Update(specialKey(tea.KeyEnter))

	if session.Revealed() {
		t.Error("submit with empty selection must not reveal")
	}
	if s.notice == "" {
		t.Error("expected a blocking notice")
	}
}

func TestSubmitRevealsAndScores(t *testing.T) {
	s, session := testScreen(t)

	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter))

	if !session.Revealed() {
		t.Fatal("expected reveal after submit")
	}
	if session.Score() != 1 {
		t.Errorf("Score = %d, want 1", session.Score())
	}
	// Index does not advance on submit.
	if session.Index() != 0 {
		t.Errorf("Index = %d, want 0", session.Index())
	}
}

func TestAdvanceMovesToNextQuestion(t *testing.T) {
	s, session := testScreen(t)

	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter)) // submit
	s.Update(specialKey(tea.KeyEnter)) // next

	if session.Index() != 1 {
		t.Errorf("Index = %d, want 1", session.Index())
	}
	if session.Revealed() {
		t.Error("reveal flag should clear on advance")
	}
}

func TestFinishingReplacesWithResults(t *testing.T) {
	s, session := testScreen(t)

	// First question.
	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	// Second (multi) question: B only is wrong, but still submits.
	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command at session end")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("replacement screen = %T, want *results.ResultsScreen", replace.Screen)
	}
	if !session.Finished() {
		t.Error("session should be finished")
	}
	if session.Score() != 1 {
		t.Errorf("Score = %d, want 1", session.Score())
	}
}

func TestQuitConfirmPopsToHome(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected router.PopScreenMsg")
	}
}

func TestQuitConfirmCancel(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	updated, _ := s.Update(keyPress('n'))

	if updated.(*QuizScreen).quitConfirm {
		t.Error("expected quit confirmation to cancel")
	}
}
