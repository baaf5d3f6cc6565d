package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/careerpathways/job-board/internal/models"
)

// Field names a sortable column of the job table.
type Field string

const (
	FieldDate      Field = "date"
	FieldEmployer  Field = "employer"
	FieldTitle     Field = "title"
	FieldPathway   Field = "pathway"
	FieldLanguages Field = "languages"
	FieldSalary    Field = "salary"
	FieldContact   Field = "contact"
	FieldLocation  Field = "location"
)

// ParseField validates a sort-field name; "" means the default date field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case "":
		return FieldDate, nil
	case FieldDate, FieldEmployer, FieldTitle, FieldPathway, FieldLanguages, FieldSalary, FieldContact, FieldLocation:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// Direction of a sort pass.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort returns a new slice ordered by the given field. The sort is stable:
// equal-key records keep their relative input order, so repeated sorts are
// deterministic. Dates compare by instant (missing dates first ascending);
// salary compares by the computed average, matching what the bucket filter
// partitions on; languages compare by their comma-joined text.
func Sort(records []models.JobRecord, field Field, dir Direction) []models.JobRecord {
	out := make([]models.JobRecord, len(records))
	copy(out, records)

	// Collators mutate internal buffers on every compare and are not safe
	// to share across goroutines, so each sort pass gets its own.
	// Numeric-aware so "Job 2" orders before "Job 10".
	collator := collate.New(language.English, collate.Numeric)

	less := lessFunc(field, collator)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field Field, collator *collate.Collator) func(a, b models.JobRecord) bool {
	switch field {
	case FieldDate:
		return func(a, b models.JobRecord) bool {
			switch {
			case a.PostedDate == nil:
				return b.PostedDate != nil
			case b.PostedDate == nil:
				return false
			default:
				return a.PostedDate.Before(*b.PostedDate)
			}
		}
	case FieldSalary:
		return func(a, b models.JobRecord) bool {
			switch {
			case a.Salary.Avg == nil:
				return b.Salary.Avg != nil
			case b.Salary.Avg == nil:
				return false
			default:
				return *a.Salary.Avg < *b.Salary.Avg
			}
		}
	case FieldLanguages:
		return textLess(collator, func(r models.JobRecord) string { return strings.Join(r.Languages, ", ") })
	case FieldEmployer:
		return textLess(collator, func(r models.JobRecord) string { return r.Employer })
	case FieldPathway:
		return textLess(collator, func(r models.JobRecord) string { return r.Pathway })
	case FieldContact:
		return textLess(collator, func(r models.JobRecord) string { return r.ContactPerson })
	case FieldLocation:
		return textLess(collator, func(r models.JobRecord) string { return r.Location })
	default:
		return textLess(collator, func(r models.JobRecord) string { return r.JobTitle })
	}
}

func textLess(collator *collate.Collator, key func(models.JobRecord) string) func(a, b models.JobRecord) bool {
	return func(a, b models.JobRecord) bool {
		return collator.CompareString(key(a), key(b)) < 0
	}
}
