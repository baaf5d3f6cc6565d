// Package pipeline implements the shared presentation pipeline: raw table →
// typed records → filter → sort → paginate, plus aggregate statistics. Each
// view supplies its own ViewState; the functions here never mutate their
// inputs.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/careerpathways/job-board/internal/models"
	"github.com/careerpathways/job-board/internal/source"
)

// Diagnostic records a recoverable problem with one source row. Diagnostics
// never abort the batch; callers log them for operator visibility.
type Diagnostic struct {
	Row    int    `json:"row"` // 1-based data-row position, header excluded
	Reason string `json:"reason"`
}

const dateLayout = "01/02/2006"

// ParseDate parses a strict, zero-padded MM/DD/YYYY date. Impossible
// calendar dates (02/30/2024) and any other shape yield nil — missing dates
// are data, not errors.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	// time.Parse normalizes overflowing days; a round-trip catches that
	// along with non-padded input.
	if t.Format(dateLayout) != s {
		return nil
	}
	return &t
}

// ParseSalaryRange parses a "$60,000 - $80,000" style cell. Unparsable
// segments become nil rather than NaN; the average is the midpoint, with
// Min standing in for a missing Max, and is only present when Min is.
func ParseSalaryRange(s string) models.SalaryRange {
	s = strings.NewReplacer("$", "", ",", "").Replace(s)
	parts := strings.SplitN(s, "-", 2)

	var out models.SalaryRange
	out.Min = parseAmount(parts[0])
	if len(parts) == 2 {
		out.Max = parseAmount(parts[1])
	}
	if out.Min != nil {
		effectiveMax := *out.Min
		if out.Max != nil {
			effectiveMax = *out.Max
		}
		avg := (*out.Min + effectiveMax) / 2
		out.Avg = &avg
	}
	return out
}

func parseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseDeactivated maps the "Deactivate?" cell to a flag. Only a
// case-insensitive "false" yields false; every other value, empty included,
// deactivates the row so ambiguous data is hidden rather than shown.
func ParseDeactivated(s string) bool {
	return !strings.EqualFold(strings.TrimSpace(s), "false")
}

// SplitLanguages splits a comma list into trimmed, non-empty tokens,
// preserving source order (and duplicates, since the source may repeat).
func SplitLanguages(s string) []string {
	out := []string{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// columnRule coerces one cell into its record field, reporting whether the
// field was populated.
type columnRule func(rec *models.JobRecord, cell string) bool

// ruleForHeader resolves a header cell to a coercion rule. Lookup is by
// normalized header text, so extra or reordered columns degrade gracefully;
// unrecognized headers fall through to text with nowhere to land and are
// ignored.
func ruleForHeader(header string) columnRule {
	h := strings.ToLower(strings.TrimSpace(header))
	switch {
	case h == "date":
		return func(rec *models.JobRecord, cell string) bool {
			rec.PostedDate = ParseDate(cell)
			return rec.PostedDate != nil
		}
	case h == "deactivate?":
		return func(rec *models.JobRecord, cell string) bool {
			rec.Deactivated = ParseDeactivated(cell)
			return strings.TrimSpace(cell) != ""
		}
	case strings.Contains(h, "salary"):
		return func(rec *models.JobRecord, cell string) bool {
			rec.Salary = ParseSalaryRange(cell)
			return rec.Salary.Min != nil
		}
	case h == "language":
		return func(rec *models.JobRecord, cell string) bool {
			rec.Languages = SplitLanguages(cell)
			return len(rec.Languages) > 0
		}
	case h == "employer":
		return textRule(func(rec *models.JobRecord, v string) { rec.Employer = v })
	case h == "job title":
		return textRule(func(rec *models.JobRecord, v string) { rec.JobTitle = v })
	case h == "pathway":
		return textRule(func(rec *models.JobRecord, v string) { rec.Pathway = v })
	case h == "contact person":
		return textRule(func(rec *models.JobRecord, v string) { rec.ContactPerson = v })
	case h == "location":
		return textRule(func(rec *models.JobRecord, v string) { rec.Location = v })
	case h == "apply":
		return textRule(func(rec *models.JobRecord, v string) { rec.ApplyLink = v })
	default:
		return func(*models.JobRecord, string) bool { return false }
	}
}

func textRule(set func(rec *models.JobRecord, v string)) columnRule {
	return func(rec *models.JobRecord, cell string) bool {
		v := strings.TrimSpace(cell)
		set(rec, v)
		return v != ""
	}
}

// Normalize maps a header row plus data rows into typed records. Rows
// shorter than the header are rejected, rows with zero populated fields
// after coercion are dropped, and both are reported as diagnostics;
// normalization always completes with whatever valid records it could
// build.
func Normalize(table source.TableData) ([]models.JobRecord, []Diagnostic) {
	rules := make([]columnRule, len(table.Header))
	for i, h := range table.Header {
		rules[i] = ruleForHeader(h)
	}

	records := make([]models.JobRecord, 0, len(table.Rows))
	var diags []Diagnostic
	for i, row := range table.Rows {
		pos := i + 1
		if len(row) < len(table.Header) {
			diags = append(diags, Diagnostic{
				Row:    pos,
				Reason: fmt.Sprintf("expected %d columns, got %d", len(table.Header), len(row)),
			})
			continue
		}
		rec := models.JobRecord{Languages: []string{}, Deactivated: true}
		populated := 0
		for col, rule := range rules {
			if rule(&rec, row[col]) {
				populated++
			}
		}
		if populated == 0 {
			diags = append(diags, Diagnostic{Row: pos, Reason: "no populated fields"})
			continue
		}
		records = append(records, rec)
	}
	return records, diags
}

// ActiveJobs strips deactivated records. Every active-jobs view filters
// through here first, so a deactivated record can never reappear in a later
// filter, sort, or page pass.
func ActiveJobs(records []models.JobRecord) []models.JobRecord {
	out := make([]models.JobRecord, 0, len(records))
	for _, r := range records {
		if !r.Deactivated {
			out = append(out, r)
		}
	}
	return out
}
