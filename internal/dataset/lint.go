package dataset

import "fmt"

// Issue is an advisory finding about a loaded record. Lint never rejects
// rows; the player scores whatever the dataset says.
type Issue struct {
	QuestionID string
	Message    string
}

// Lint inspects records for data problems worth reporting to a dataset
// author: correct letters that point at empty options, unknown difficulty or
// type values, and single-typed rows carrying multi-letter answer specs.
func Lint(records []Record) []Issue {
	var issues []Issue
	add := func(r Record, format string, args ...any) {
		issues = append(issues, Issue{
			QuestionID: r.QuestionID,
			Message:    fmt.Sprintf(format, args...),
		})
	}

	for _, r := range records {
		correct := r.CorrectSet()
		if len(correct) == 0 {
			add(r, "no correct answer specified")
		}
		for letter := range correct {
			if !r.HasChoice(letter) {
				add(r, "correct letter %s has no option text", letter)
			}
		}

		switch r.Difficulty {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			add(r, "unknown difficulty %q", r.Difficulty)
		}

		switch r.Type {
		case TypeSingle, TypeMulti:
		default:
			add(r, "unknown type %q", r.Type)
		}

		if r.Type == TypeSingle && len(correct) > 1 {
			add(r, "single-typed question lists %d correct letters", len(correct))
		}
	}
	return issues
}
