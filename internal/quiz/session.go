// Package quiz implements the linear quiz session: one pass over an ordered
// question list with per-question selection, exact-set scoring, and an
// immutable answer history. Every transition is guarded; invalid calls
// return an error instead of corrupting state.
package quiz

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

var (
	// ErrNoQuestions rejects starting a session over an empty question list.
	ErrNoQuestions = errors.New("no questions match the current filters")

	// ErrRevealed rejects selection changes and re-submission after reveal.
	ErrRevealed = errors.New("answer already submitted")

	// ErrNotRevealed rejects advancing before the current answer is submitted.
	ErrNotRevealed = errors.New("submit an answer first")

	// ErrNoSelection rejects submitting with nothing selected.
	ErrNoSelection = errors.New("no option selected")

	// ErrUnknownLetter rejects toggling a letter the question does not offer.
	ErrUnknownLetter = errors.New("option letter not available")

	// ErrFinished rejects question operations on an exhausted session.
	ErrFinished = errors.New("session already finished")

	// ErrNotFinished rejects reading the result of a session still running.
	ErrNotFinished = errors.New("session still in progress")
)

// Answer records one submitted question: the question itself, the sorted
// selected letters, and whether the selection exactly matched the correct
// set. Appended to the session history at submit time, immutable thereafter.
type Answer struct {
	Question dataset.Record
	Selected []string
	Correct  bool
}

// Result carries the data valid once a session is complete.
type Result struct {
	SessionID string
	Score     int
	Total     int
	History   []Answer
}

// Accuracy returns the fraction of correct answers, 0 for an empty session.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// Options configures session construction.
type Options struct {
	// Shuffle randomizes question order over a copy of the input list.
	Shuffle bool

	// Rand overrides the shuffle source, for deterministic tests.
	Rand *rand.Rand
}

// Session is an active quiz run. The zero value is not usable; NewSession is
// the only constructor, so index/score/selection/history always start fresh.
type Session struct {
	id        string
	questions []dataset.Record
	index     int
	selection map[string]struct{}
	revealed  bool
	finished  bool
	score     int
	history   []Answer
}

// NewSession starts a session over the given questions. The list is copied;
// order is preserved unless opts.Shuffle is set.
func NewSession(questions []dataset.Record, opts Options) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	qs := make([]dataset.Record, len(questions))
	copy(qs, questions)
	if opts.Shuffle {
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		r.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}

	return &Session{
		id:        uuid.New().String(),
		questions: qs,
		selection: make(map[string]struct{}),
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Revealed reports whether the current question's answer has been submitted.
func (s *Session) Revealed() bool { return s.revealed }

// Finished reports whether the question list has been exhausted.
func (s *Session) Finished() bool { return s.finished }

// Current returns the question at the current index. The zero Record is
// returned once the session has finished.
func (s *Session) Current() dataset.Record {
	if s.finished {
		return dataset.Record{}
	}
	return s.questions[s.index]
}

// Selected reports whether the given letter is in the current selection.
func (s *Session) Selected(letter string) bool {
	_, ok := s.selection[normalize(letter)]
	return ok
}

// SelectionCount returns the number of currently selected letters.
func (s *Session) SelectionCount() int { return len(s.selection) }

// SelectedLetters returns the current selection in letter order.
func (s *Session) SelectedLetters() []string { return sortedLetters(s.selection) }

// History returns the answers submitted so far, in submission order.
func (s *Session) History() []Answer { return s.history }

// LastAnswer returns the most recent history entry, if any.
func (s *Session) LastAnswer() (Answer, bool) {
	if len(s.history) == 0 {
		return Answer{}, false
	}
	return s.history[len(s.history)-1], true
}

// Toggle updates the selection with the given option letter. Single-typed
// questions replace the whole selection; multi-typed questions toggle the
// letter's membership. Not permitted after the answer is revealed.
func (s *Session) Toggle(letter string) error {
	if s.finished {
		return ErrFinished
	}
	if s.revealed {
		return ErrRevealed
	}

	letter = normalize(letter)
	q := s.questions[s.index]
	if !q.HasChoice(letter) {
		return ErrUnknownLetter
	}

	if !q.IsMulti() {
		s.selection = map[string]struct{}{letter: {}}
		return nil
	}

	if _, ok := s.selection[letter]; ok {
		delete(s.selection, letter)
	} else {
		s.selection[letter] = struct{}{}
	}
	return nil
}

// Submit scores the current selection against the question's correct set.
// Correct means exact set equality, no partial credit for subsets or
// supersets. The answer is appended to history, the score updated, and the
// question revealed. The index does not advance.
func (s *Session) Submit() error {
	if s.finished {
		return ErrFinished
	}
	if s.revealed {
		return ErrRevealed
	}
	if len(s.selection) == 0 {
		return ErrNoSelection
	}

	q := s.questions[s.index]
	correct := setsEqual(s.selection, q.CorrectSet())

	s.history = append(s.history, Answer{
		Question: q,
		Selected: sortedLetters(s.selection),
		Correct:  correct,
	})
	if correct {
		s.score++
	}
	s.revealed = true
	return nil
}

// Next advances past a revealed question. It reports done=true when the
// list is exhausted; otherwise the index moves on and selection and reveal
// are cleared.
func (s *Session) Next() (done bool, err error) {
	if s.finished {
		return true, ErrFinished
	}
	if !s.revealed {
		return false, ErrNotRevealed
	}

	if s.index+1 >= len(s.questions) {
		s.finished = true
		s.revealed = false
		s.selection = make(map[string]struct{})
		return true, nil
	}

	s.index++
	s.selection = make(map[string]struct{})
	s.revealed = false
	return false, nil
}

// Result returns the final score and history. Only valid once the session
// has finished.
func (s *Session) Result() (Result, error) {
	if !s.finished {
		return Result{}, ErrNotFinished
	}
	return Result{
		SessionID: s.id,
		Score:     s.score,
		Total:     len(s.questions),
		History:   s.history,
	}, nil
}

func normalize(letter string) string {
	return strings.ToUpper(strings.TrimSpace(letter))
}

func setsEqual(a map[string]struct{}, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func sortedLetters(set map[string]struct{}) []string {
	letters := make([]string, 0, len(set))
	for letter := range set {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}
