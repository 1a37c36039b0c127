// Package coverage aggregates the full question dataset into per-domain and
// per-difficulty counts for the analysis view. Filters never apply here.
package coverage

import (
	"sort"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

// Group is one bar in a coverage breakdown.
type Group struct {
	Label string
	Count int
	Share float64 // Count / Total, 0 for an empty dataset
}

// Report holds both groupings plus the total record count.
type Report struct {
	Total        int
	Domains      []Group
	Difficulties []Group
}

// Compute builds the coverage report over the full dataset. Domains come out
// alphabetically; difficulties in easy/medium/hard order with unknown values
// appended alphabetically.
func Compute(records []dataset.Record) Report {
	domains := make(map[string]int)
	difficulties := make(map[string]int)
	for _, r := range records {
		domains[r.Domain]++
		difficulties[r.Difficulty]++
	}

	total := len(records)
	return Report{
		Total:        total,
		Domains:      groups(domains, total, nil),
		Difficulties: groups(difficulties, total, []string{dataset.DifficultyEasy, dataset.DifficultyMedium, dataset.DifficultyHard}),
	}
}

// groups converts a count map into sorted Group slices. Labels in the
// preferred list come first, in that order; the rest follow alphabetically.
func groups(counts map[string]int, total int, preferred []string) []Group {
	var out []Group
	used := make(map[string]bool)

	add := func(label string) {
		count, ok := counts[label]
		if !ok {
			return
		}
		var share float64
		if total > 0 {
			share = float64(count) / float64(total)
		}
		out = append(out, Group{Label: label, Count: count, Share: share})
		used[label] = true
	}

	for _, label := range preferred {
		add(label)
	}

	var rest []string
	for label := range counts {
		if !used[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	for _, label := range rest {
		add(label)
	}
	return out
}
