package pipeline_test

import (
	"time"

	"github.com/careerpathways/job-board/internal/models"
)

type record = models.JobRecord

func recordWith(mut func(*record)) record {
	r := record{Languages: []string{}}
	mut(&r)
	return r
}

func f64(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// salary builds a parsed range the way the normalizer would.
func salary(min, max float64) models.SalaryRange {
	avg := (min + max) / 2
	return models.SalaryRange{Min: &min, Max: &max, Avg: &avg}
}
