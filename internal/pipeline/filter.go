package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpathways/job-board/internal/models"
)

// AllSentinel is the reserved multi-select value meaning "apply no filter
// on this dimension".
const AllSentinel = "All"

// SalaryBucket is a fixed band over the record's average salary.
type SalaryBucket string

const (
	BucketAll      SalaryBucket = "all"
	BucketBelow50K SalaryBucket = "below-50k"
	Bucket50To75K  SalaryBucket = "50k-75k"
	Bucket75To100K SalaryBucket = "75k-100k"
	BucketAbove100 SalaryBucket = "above-100k"
)

// ParseSalaryBucket validates a bucket name; "" means all.
func ParseSalaryBucket(s string) (SalaryBucket, error) {
	switch SalaryBucket(s) {
	case "", BucketAll:
		return BucketAll, nil
	case BucketBelow50K, Bucket50To75K, Bucket75To100K, BucketAbove100:
		return SalaryBucket(s), nil
	}
	return "", fmt.Errorf("unknown salary bucket %q", s)
}

// bucketFor classifies an average salary. Records without a computed
// average are not classifiable: they match only the "all" bucket.
func bucketFor(avg float64) SalaryBucket {
	switch {
	case avg < 50_000:
		return BucketBelow50K
	case avg < 75_000:
		return Bucket50To75K
	case avg <= 100_000:
		return Bucket75To100K
	default:
		return BucketAbove100
	}
}

// ErrInvalidDateRange marks user date-range input the filter refuses to
// apply. Callers surface the message and keep the previous view state.
var ErrInvalidDateRange = errors.New("invalid date range")

// ValidateDateRange enforces the date-range rules: both endpoints present
// and parseable, "from" strictly before "to", and a span of at least two
// calendar days.
func ValidateDateRange(from, to *time.Time) error {
	if from == nil || to == nil {
		return fmt.Errorf("%w: both a from and a to date are required", ErrInvalidDateRange)
	}
	if !from.Before(*to) {
		return fmt.Errorf("%w: the from date must come before the to date", ErrInvalidDateRange)
	}
	if to.Sub(*from) < 48*time.Hour {
		return fmt.Errorf("%w: the range must span at least two days", ErrInvalidDateRange)
	}
	return nil
}

// Criteria is one view's active filter set. Zero values mean "no filter";
// multi-select slices honor the AllSentinel pass-through.
type Criteria struct {
	Search       string
	Pathway      string
	Locations    []string
	Languages    []string
	SalaryBucket SalaryBucket
	DateFrom     *time.Time
	DateTo       *time.Time
}

// normalizeSelection collapses a multi-select to nil when it means "match
// everything". Selecting a specific value alongside the sentinel implicitly
// deselects the sentinel.
func normalizeSelection(values []string) []string {
	specific := make([]string, 0, len(values))
	for _, v := range values {
		if v != AllSentinel {
			specific = append(specific, v)
		}
	}
	if len(specific) == 0 {
		return nil
	}
	return specific
}

// Filter applies the criteria as AND-composed predicates. Pure: the input
// slice is never mutated, and applying the same criteria twice is a no-op.
func Filter(records []models.JobRecord, c Criteria) []models.JobRecord {
	locations := normalizeSelection(c.Locations)
	languages := normalizeSelection(c.Languages)
	term := strings.ToLower(strings.TrimSpace(c.Search))
	pathway := strings.TrimSpace(c.Pathway)

	out := make([]models.JobRecord, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if pathway != "" && pathway != AllSentinel && r.Pathway != pathway {
			continue
		}
		if locations != nil && !containsString(locations, r.Location) {
			continue
		}
		if languages != nil && !overlaps(languages, r.Languages) {
			continue
		}
		if !matchesBucket(r, c.SalaryBucket) {
			continue
		}
		if c.DateFrom != nil && c.DateTo != nil && !withinRange(r.PostedDate, *c.DateFrom, *c.DateTo) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch reports whether the lowercased term appears in the
// employer, the title, or any language token.
func matchesSearch(r models.JobRecord, term string) bool {
	if strings.Contains(strings.ToLower(r.Employer), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.JobTitle), term) {
		return true
	}
	for _, lang := range r.Languages {
		if strings.Contains(strings.ToLower(lang), term) {
			return true
		}
	}
	return false
}

func matchesBucket(r models.JobRecord, bucket SalaryBucket) bool {
	if bucket == "" || bucket == BucketAll {
		return true
	}
	// No computed average means the record cannot be classified, so it is
	// excluded from every specific bucket.
	if r.Salary.Avg == nil {
		return false
	}
	return bucketFor(*r.Salary.Avg) == bucket
}

func withinRange(d *time.Time, from, to time.Time) bool {
	if d == nil {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func overlaps(set []string, values []string) bool {
	for _, v := range values {
		if containsString(set, v) {
			return true
		}
	}
	return false
}
