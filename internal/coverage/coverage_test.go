package coverage

import (
	"testing"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

func testRecords() []dataset.Record {
	return []dataset.Record{
		{Domain: "Security", Difficulty: "hard"},
		{Domain: "Cloud Concepts", Difficulty: "easy"},
		{Domain: "Cloud Concepts", Difficulty: "medium"},
		{Domain: "Cloud Concepts", Difficulty: "easy"},
		{Domain: "Security", Difficulty: "brutal"},
	}
}

func sumCounts(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

func TestComputeCountsSumToTotal(t *testing.T) {
	report := Compute(testRecords())

	if report.Total != 5 {
		t.Fatalf("Total = %d, want 5", report.Total)
	}
	if got := sumCounts(report.Domains); got != report.Total {
		t.Errorf("domain counts sum to %d, want %d", got, report.Total)
	}
	if got := sumCounts(report.Difficulties); got != report.Total {
		t.Errorf("difficulty counts sum to %d, want %d", got, report.Total)
	}
}

func TestComputeOrdering(t *testing.T) {
	report := Compute(testRecords())

	if report.Domains[0].Label != "Cloud Concepts" || report.Domains[1].Label != "Security" {
		t.Errorf("domains = %+v, want alphabetical order", report.Domains)
	}

	wantDifficulties := []string{"easy", "medium", "hard", "brutal"}
	if len(report.Difficulties) != len(wantDifficulties) {
		t.Fatalf("difficulties = %+v, want %v", report.Difficulties, wantDifficulties)
	}
	for i, want := range wantDifficulties {
		if report.Difficulties[i].Label != want {
			t.Errorf("difficulties[%d] = %s, want %s", i, report.Difficulties[i].Label, want)
		}
	}
}

func TestComputeShares(t *testing.T) {
	report := Compute(testRecords())

	for _, g := range report.Domains {
		want := float64(g.Count) / float64(report.Total)
		if g.Share != want {
			t.Errorf("share for %s = %f, want %f", g.Label, g.Share, want)
		}
	}
}

func TestComputeEmptyDataset(t *testing.T) {
	report := Compute(nil)

	if report.Total != 0 {
		t.Errorf("Total = %d, want 0", report.Total)
	}
	if len(report.Domains) != 0 || len(report.Difficulties) != 0 {
		t.Errorf("expected no groups for empty dataset, got %+v", report)
	}
}
