package pipeline_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/careerpathways/job-board/internal/pipeline"
)

func titles(records []record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.JobTitle
	}
	return out
}

func TestSort_NumericAwareStrings(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.JobTitle = "Job 10" }),
		recordWith(func(r *record) { r.JobTitle = "Job 2" }),
		recordWith(func(r *record) { r.JobTitle = "Job 1" }),
	}
	got := pipeline.Sort(records, pipeline.FieldTitle, pipeline.Ascending)
	want := []string{"Job 1", "Job 2", "Job 10"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("numeric-aware sort = %v, want %v", titles(got), want)
	}
}

func TestSort_ByDate(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.JobTitle = "mid"; r.PostedDate = date(2025, time.February, 1) }),
		recordWith(func(r *record) { r.JobTitle = "none" }),
		recordWith(func(r *record) { r.JobTitle = "new"; r.PostedDate = date(2025, time.March, 1) }),
		recordWith(func(r *record) { r.JobTitle = "old"; r.PostedDate = date(2025, time.January, 1) }),
	}
	got := pipeline.Sort(records, pipeline.FieldDate, pipeline.Ascending)
	want := []string{"none", "old", "mid", "new"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("date sort = %v, want %v", titles(got), want)
	}

	got = pipeline.Sort(records, pipeline.FieldDate, pipeline.Descending)
	want = []string{"new", "mid", "old", "none"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("descending date sort = %v, want %v", titles(got), want)
	}
}

func TestSort_BySalaryAvg(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.JobTitle = "high"; r.Salary = salary(90000, 110000) }),
		recordWith(func(r *record) { r.JobTitle = "missing" }),
		recordWith(func(r *record) { r.JobTitle = "low"; r.Salary = salary(40000, 50000) }),
	}
	got := pipeline.Sort(records, pipeline.FieldSalary, pipeline.Ascending)
	want := []string{"missing", "low", "high"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("salary sort = %v, want %v", titles(got), want)
	}
}

func TestSort_ByLanguagesJoinedText(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.JobTitle = "b"; r.Languages = []string{"Python"} }),
		recordWith(func(r *record) { r.JobTitle = "a"; r.Languages = []string{"Go", "Rust"} }),
	}
	got := pipeline.Sort(records, pipeline.FieldLanguages, pipeline.Ascending)
	want := []string{"a", "b"} // "Go, Rust" < "Python"
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("language sort = %v, want %v", titles(got), want)
	}
}

func TestSort_Stable(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.Employer = "Same"; r.JobTitle = "first" }),
		recordWith(func(r *record) { r.Employer = "Same"; r.JobTitle = "second" }),
		recordWith(func(r *record) { r.Employer = "Same"; r.JobTitle = "third" }),
	}
	once := pipeline.Sort(records, pipeline.FieldEmployer, pipeline.Ascending)
	twice := pipeline.Sort(once, pipeline.FieldEmployer, pipeline.Ascending)

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(titles(once), want) {
		t.Errorf("equal keys must keep input order, got %v", titles(once))
	}
	if !reflect.DeepEqual(titles(once), titles(twice)) {
		t.Errorf("sorting twice changed the order: %v vs %v", titles(once), titles(twice))
	}
}

func TestSort_ConcurrentCallsStayConsistent(t *testing.T) {
	records := make([]record, 50)
	for i := range records {
		i := i
		records[i] = recordWith(func(r *record) { r.JobTitle = fmt.Sprintf("Job %d", 50-i) })
	}
	want := titles(pipeline.Sort(records, pipeline.FieldTitle, pipeline.Ascending))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := pipeline.Sort(records, pipeline.FieldTitle, pipeline.Ascending)
				if !reflect.DeepEqual(titles(got), want) {
					t.Errorf("concurrent sort returned a corrupted ordering: %v", titles(got))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"date", "employer", "title", "pathway", "languages", "salary", "contact", "location"} {
		got, err := pipeline.ParseField(s)
		if err != nil || string(got) != s {
			t.Errorf("ParseField(%q) = %v, %v", s, got, err)
		}
	}
	if got, err := pipeline.ParseField(""); err != nil || got != pipeline.FieldDate {
		t.Errorf("ParseField(\"\") = %v, %v, want the default date field", got, err)
	}
	if _, err := pipeline.ParseField("bogus"); err == nil {
		t.Error("unknown sort field accepted")
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []record{
		recordWith(func(r *record) { r.JobTitle = "b" }),
		recordWith(func(r *record) { r.JobTitle = "a" }),
	}
	pipeline.Sort(records, pipeline.FieldTitle, pipeline.Ascending)
	if records[0].JobTitle != "b" {
		t.Error("sort mutated its input")
	}
}
