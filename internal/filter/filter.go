// Package filter derives filter dimension options from a question dataset
// and applies a user selection to it. Everything here is pure.
package filter

import (
	"sort"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

// Selection holds one optional value per filter dimension. An empty string
// means "any".
type Selection struct {
	Set        string
	Domain     string
	Difficulty string
}

// Options are the distinct values per dimension across the full dataset,
// sorted. They never come from a filtered subset.
type Options struct {
	Sets         []string
	Domains      []string
	Difficulties []string
}

// Apply returns the records matching the selection, preserving dataset
// order. Matching is exact, case-sensitive string equality on each dimension
// with a non-empty selection.
func Apply(records []dataset.Record, sel Selection) []dataset.Record {
	var matched []dataset.Record
	for _, r := range records {
		if sel.Set != "" && r.SetID != sel.Set {
			continue
		}
		if sel.Domain != "" && r.Domain != sel.Domain {
			continue
		}
		if sel.Difficulty != "" && r.Difficulty != sel.Difficulty {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// DeriveOptions collects the sorted distinct values of each filter dimension.
func DeriveOptions(records []dataset.Record) Options {
	return Options{
		Sets:         distinct(records, func(r dataset.Record) string { return r.SetID }),
		Domains:      distinct(records, func(r dataset.Record) string { return r.Domain }),
		Difficulties: distinct(records, func(r dataset.Record) string { return r.Difficulty }),
	}
}

func distinct(records []dataset.Record, field func(dataset.Record) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
