package quiz

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

func singleQuestion() dataset.Record {
	return dataset.Record{
		SetID:      "PT-1",
		QuestionID: "q1",
		Domain:     "Core",
		Difficulty: dataset.DifficultyEasy,
		Type:       dataset.TypeSingle,
		Question:   "Pick A",
		Options:    [6]string{"first", "second", "third"},
		Correct:    "A",
	}
}

func multiQuestion() dataset.Record {
	return dataset.Record{
		SetID:      "PT-1",
		QuestionID: "q2",
		Domain:     "Core",
		Difficulty: dataset.DifficultyHard,
		Type:       dataset.TypeMulti,
		Question:   "Pick B and C",
		Options:    [6]string{"first", "second", "third", "fourth"},
		Correct:    "B;C",
	}
}

func mustSession(t *testing.T, questions ...dataset.Record) *Session {
	t.Helper()
	s, err := NewSession(questions, Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionEmptyList(t *testing.T) {
	if _, err := NewSession(nil, Options{}); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("NewSession(nil) err = %v, want ErrNoQuestions", err)
	}
}

func TestSingleQuestionFlow(t *testing.T) {
	s := mustSession(t, singleQuestion())

	if err := s.Toggle("A"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	if len(s.History()) != 1 || !s.History()[0].Correct {
		t.Errorf("History = %+v, want one correct entry", s.History())
	}

	done, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !done {
		t.Error("Next on last question should finish the session")
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if res.Score != 1 || res.Total != 1 {
		t.Errorf("Result = %d/%d, want 1/1", res.Score, res.Total)
	}
	if res.Accuracy() != 1.0 {
		t.Errorf("Accuracy = %f, want 1.0", res.Accuracy())
	}
}

func TestSingleTypeReplacesSelection(t *testing.T) {
	s := mustSession(t, singleQuestion())

	if err := s.Toggle("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Toggle("B"); err != nil {
		t.Fatal(err)
	}
	if s.SelectionCount() != 1 {
		t.Errorf("SelectionCount = %d, want 1 (single-type replaces)", s.SelectionCount())
	}
	if !s.Selected("B") || s.Selected("A") {
		t.Errorf("selection = %v, want exactly {B}", s.SelectedLetters())
	}
}

func TestMultiTypeTogglesMembership(t *testing.T) {
	s := mustSession(t, multiQuestion())

	for _, letter := range []string{"B", "C"} {
		if err := s.Toggle(letter); err != nil {
			t.Fatal(err)
		}
	}
	if s.SelectionCount() != 2 {
		t.Errorf("SelectionCount = %d, want 2", s.SelectionCount())
	}

	// Toggling again removes.
	if err := s.Toggle("C"); err != nil {
		t.Fatal(err)
	}
	if s.Selected("C") {
		t.Error("expected C to be toggled off")
	}
}

func TestMultiExactSetRequired(t *testing.T) {
	tests := []struct {
		name    string
		letters []string
		correct bool
	}{
		{"exact set", []string{"B", "C"}, true},
		{"proper subset", []string{"B"}, false},
		{"proper superset", []string{"A", "B", "C"}, false},
		{"disjoint", []string{"A", "D"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSession(t, multiQuestion())
			for _, letter := range tt.letters {
				if err := s.Toggle(letter); err != nil {
					t.Fatal(err)
				}
			}
			if err := s.Submit(); err != nil {
				t.Fatal(err)
			}
			last, ok := s.LastAnswer()
			if !ok {
				t.Fatal("expected a history entry")
			}
			if last.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", last.Correct, tt.correct)
			}
		})
	}
}

func TestSingleTypedRowWithMultiCorrectSpec(t *testing.T) {
	// Scoring is still exact set equality, so a single selection can never
	// match a two-letter correct spec.
	q := singleQuestion()
	q.Correct = "A;B"
	s := mustSession(t, q)

	if err := s.Toggle("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if last, _ := s.LastAnswer(); last.Correct {
		t.Error("partial match must not score on single-typed rows either")
	}
}

func TestTransitionGuards(t *testing.T) {
	s := mustSession(t, singleQuestion(), multiQuestion())

	if _, err := s.Next(); !errors.Is(err, ErrNotRevealed) {
		t.Errorf("Next before submit err = %v, want ErrNotRevealed", err)
	}
	if err := s.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Submit without selection err = %v, want ErrNoSelection", err)
	}
	if err := s.Toggle("Z"); !errors.Is(err, ErrUnknownLetter) {
		t.Errorf("Toggle(Z) err = %v, want ErrUnknownLetter", err)
	}
	if _, err := s.Result(); !errors.Is(err, ErrNotFinished) {
		t.Errorf("Result mid-session err = %v, want ErrNotFinished", err)
	}

	if err := s.Toggle("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if err := s.Toggle("B"); !errors.Is(err, ErrRevealed) {
		t.Errorf("Toggle after reveal err = %v, want ErrRevealed", err)
	}
	if err := s.Submit(); !errors.Is(err, ErrRevealed) {
		t.Errorf("double Submit err = %v, want ErrRevealed", err)
	}
}

func TestNextClearsSelectionAndReveal(t *testing.T) {
	s := mustSession(t, singleQuestion(), multiQuestion())

	if err := s.Toggle("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	done, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("session should not be done after first of two questions")
	}
	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
	if s.Revealed() {
		t.Error("reveal flag should clear on Next")
	}
	if s.SelectionCount() != 0 {
		t.Error("selection should clear on Next")
	}
}

func TestScoreMatchesHistory(t *testing.T) {
	s := mustSession(t, singleQuestion(), multiQuestion(), singleQuestion())

	answers := [][]string{{"A"}, {"B"}, {"C"}} // correct, wrong, wrong
	for _, letters := range answers {
		for _, letter := range letters {
			if err := s.Toggle(letter); err != nil {
				t.Fatal(err)
			}
		}
		if err := s.Submit(); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Next(); err != nil {
			t.Fatal(err)
		}
	}

	if len(s.History()) != len(answers) {
		t.Fatalf("history length = %d, want %d (one per submit)", len(s.History()), len(answers))
	}
	correct := 0
	for _, a := range s.History() {
		if a.Correct {
			correct++
		}
	}
	if s.Score() != correct {
		t.Errorf("Score = %d, want %d (count of correct history entries)", s.Score(), correct)
	}
}

func TestFilteredScenario(t *testing.T) {
	// One easy single question survives the filter; answering A scores 1
	// and the session completes after one question.
	s := mustSession(t, singleQuestion())

	if err := s.Toggle("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	done, err := s.Next()
	if err != nil || !done {
		t.Fatalf("Next = (%v, %v), want (true, nil)", done, err)
	}
	res, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 1 || len(res.History) != 1 || !res.History[0].Correct {
		t.Errorf("Result = %+v, want score 1 with one correct entry", res)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	questions := []dataset.Record{
		{QuestionID: "q1", Question: "a", Options: [6]string{"x"}},
		{QuestionID: "q2", Question: "b", Options: [6]string{"x"}},
		{QuestionID: "q3", Question: "c", Options: [6]string{"x"}},
		{QuestionID: "q4", Question: "d", Options: [6]string{"x"}},
	}

	a, err := NewSession(questions, Options{Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSession(questions, Options{Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatal(err)
	}

	if a.Total() != len(questions) {
		t.Fatalf("Total = %d, want %d", a.Total(), len(questions))
	}
	for i := 0; i < a.Total(); i++ {
		if a.questions[i].QuestionID != b.questions[i].QuestionID {
			t.Fatal("same seed must give the same order")
		}
	}

	// The input slice is untouched.
	if questions[0].QuestionID != "q1" || questions[3].QuestionID != "q4" {
		t.Error("shuffle must operate on a copy")
	}
}
