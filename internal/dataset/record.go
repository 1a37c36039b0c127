package dataset

import "strings"

// Question types.
const (
	TypeSingle = "single"
	TypeMulti  = "multi"
)

// Difficulty levels as they appear in the dataset.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// CorrectDelimiter separates option letters in a multi-answer correct spec.
const CorrectDelimiter = ";"

// optionLetters are the labels for the six option columns, in column order.
var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

// Record is a single question row. Loaded once, never mutated.
type Record struct {
	SetID       string
	QuestionID  string
	Domain      string
	Objective   string
	Difficulty  string
	Type        string
	Question    string
	Options     [6]string
	Correct     string
	Explanation string
	ImageURL    string
	Tags        string
}

// Choice is a non-empty option paired with its letter.
type Choice struct {
	Letter string
	Text   string
}

// Choices returns the record's non-empty options in column order.
func (r Record) Choices() []Choice {
	choices := make([]Choice, 0, len(r.Options))
	for i, text := range r.Options {
		if strings.TrimSpace(text) == "" {
			continue
		}
		choices = append(choices, Choice{Letter: optionLetters[i], Text: text})
	}
	return choices
}

// HasChoice reports whether the record has a non-empty option for the letter.
func (r Record) HasChoice(letter string) bool {
	for _, c := range r.Choices() {
		if c.Letter == letter {
			return true
		}
	}
	return false
}

// IsMulti reports whether the record expects more than one selected answer.
func (r Record) IsMulti() bool {
	return r.Type == TypeMulti
}

// CorrectSet returns the normalized set of correct option letters: the raw
// spec split on the delimiter, trimmed and uppercased, empties dropped.
func (r Record) CorrectSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(r.Correct, CorrectDelimiter) {
		letter := strings.ToUpper(strings.TrimSpace(part))
		if letter == "" {
			continue
		}
		set[letter] = struct{}{}
	}
	return set
}
