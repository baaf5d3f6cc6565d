package pipeline_test

import (
	"math"
	"testing"

	"github.com/careerpathways/job-board/internal/pipeline"
)

func TestAggregate_EmptyInputIsValid(t *testing.T) {
	stats := pipeline.Aggregate(nil)
	if stats.Count != 0 {
		t.Errorf("Count = %d, want 0", stats.Count)
	}
	if stats.Salary.HasData {
		t.Error("empty input must report no salary data, not zeros or infinities")
	}
	if len(stats.Languages) != 0 || len(stats.Locations) != 0 {
		t.Errorf("empty input should yield empty tables: %+v", stats)
	}
}

func TestAggregate_AllMissingSalary(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.Employer = "A" }),
		recordWith(func(r *record) { r.Employer = "B" }),
	}
	stats := pipeline.Aggregate(records)
	if stats.Count != 2 {
		t.Errorf("Count = %d, want 2", stats.Count)
	}
	if stats.Salary.HasData {
		t.Error("records without parsed salaries must not produce a range")
	}
}

func TestAggregate_SalaryRangeExcludesMissing(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.Salary = salary(60000, 80000) }),
		recordWith(func(r *record) {}), // no salary; must not drag min to zero
		recordWith(func(r *record) { r.Salary = salary(45000, 55000) }),
	}
	stats := pipeline.Aggregate(records)
	if !stats.Salary.HasData {
		t.Fatal("expected salary data")
	}
	if stats.Salary.Min != 45000 || stats.Salary.Max != 80000 {
		t.Errorf("range = [%v, %v], want [45000, 80000]", stats.Salary.Min, stats.Salary.Max)
	}
}

func TestAggregate_MinOnlySalaryUsesMinAsMax(t *testing.T) {
	min := 50000.0
	records := []record{
		recordWith(func(r *record) {
			r.Salary.Min = &min
			r.Salary.Avg = &min
		}),
	}
	stats := pipeline.Aggregate(records)
	if stats.Salary.Min != 50000 || stats.Salary.Max != 50000 {
		t.Errorf("range = [%v, %v], want [50000, 50000]", stats.Salary.Min, stats.Salary.Max)
	}
}

func TestAggregate_LanguageFrequencyFirstAppearanceOrder(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.Languages = []string{"Python", "JS"} }),
		recordWith(func(r *record) { r.Languages = []string{"Go", "Python"} }),
	}
	stats := pipeline.Aggregate(records)
	if len(stats.Languages) != 3 {
		t.Fatalf("expected 3 languages, got %v", stats.Languages)
	}
	order := []string{"Python", "JS", "Go"}
	counts := []int{2, 1, 1}
	for i, lc := range stats.Languages {
		if lc.Language != order[i] || lc.Count != counts[i] {
			t.Errorf("Languages[%d] = %+v, want {%s %d}", i, lc, order[i], counts[i])
		}
	}
}

func TestAggregate_LocationShares(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.Location = "Remote"; r.Salary = salary(60000, 60000) }),
		recordWith(func(r *record) { r.Location = "Duluth"; r.Salary = salary(30000, 30000) }),
		recordWith(func(r *record) { r.Location = "Remote"; r.Salary = salary(30000, 30000) }),
	}
	stats := pipeline.Aggregate(records)
	if len(stats.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %v", stats.Locations)
	}
	remote := stats.Locations[0]
	if remote.Location != "Remote" || remote.Count != 2 || remote.SalaryTotal != 90000 {
		t.Errorf("Remote stat = %+v", remote)
	}
	if math.Abs(remote.SalaryShare-0.75) > 1e-9 {
		t.Errorf("Remote share = %v, want 0.75", remote.SalaryShare)
	}
	total := 0.0
	for _, l := range stats.Locations {
		total += l.SalaryShare
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("shares sum to %v, want 1", total)
	}
}

func TestAggregate_MissingSalaryStillCountedInLocation(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.Location = "Remote" }),
	}
	stats := pipeline.Aggregate(records)
	if len(stats.Locations) != 1 || stats.Locations[0].Count != 1 {
		t.Fatalf("location frequency should not require a salary: %+v", stats.Locations)
	}
	if stats.Locations[0].SalaryShare != 0 {
		t.Errorf("share without any salary data = %v, want 0", stats.Locations[0].SalaryShare)
	}
}
