package pipeline

import "github.com/careerpathways/job-board/internal/models"

// Dimension names a multi-select filter a chart click can toggle.
type Dimension string

const (
	DimensionLanguage Dimension = "language"
	DimensionLocation Dimension = "location"
)

// ViewState is one view's current filter, sort, and page selection. It is
// owned by a single controller and passed through the pipeline explicitly;
// the pipeline keeps no ambient state of its own.
type ViewState struct {
	Criteria Criteria
	Field    Field
	Dir      Direction
	Page     int
	PageSize int
}

// NewViewState returns the default view: active jobs, newest first, page 1.
func NewViewState(pageSize int) ViewState {
	return ViewState{
		Field:    FieldDate,
		Dir:      Descending,
		Page:     1,
		PageSize: pageSize,
	}
}

// SetCriteria replaces the active filters and resets to the first page.
// Criteria is expected to be validated (see ValidateDateRange) before it
// gets this far; invalid input never replaces the current state.
func (v *ViewState) SetCriteria(c Criteria) {
	v.Criteria = c
	v.Page = 1
}

// ToggleSort applies the sort-header click semantics: a repeat click on the
// current field flips the direction, a click on a different field resets to
// ascending. Only a field change resets the page; flipping direction keeps
// it.
func (v *ViewState) ToggleSort(field Field) {
	if field == v.Field {
		if v.Dir == Ascending {
			v.Dir = Descending
		} else {
			v.Dir = Ascending
		}
		return
	}
	v.Field = field
	v.Dir = Ascending
	v.Page = 1
}

// SetPage moves to the requested page, clamped into range against the given
// record count. Changing only the page never re-filters or re-sorts.
func (v *ViewState) SetPage(page, recordCount int) {
	v.Page = ClampPage(page, TotalPages(recordCount, v.PageSize))
}

// ToggleMultiSelect applies the chart-click semantics for a dimension:
// clicking a value selects exactly that value; clicking the value already
// selected clears the dimension back to "match everything".
func (v *ViewState) ToggleMultiSelect(dim Dimension, value string) {
	target := &v.Criteria.Locations
	if dim == DimensionLanguage {
		target = &v.Criteria.Languages
	}
	if len(*target) == 1 && (*target)[0] == value {
		*target = nil
	} else {
		*target = []string{value}
	}
	v.Page = 1
}

// ClearFilters restores every filter to its pass-through state and returns
// to the first page. Sort selection is left alone.
func (v *ViewState) ClearFilters() {
	v.Criteria = Criteria{}
	v.Page = 1
}

// Apply runs filter → sort → paginate over the record collection and also
// reports the filtered count so callers can aggregate over the same set.
func (v ViewState) Apply(records []models.JobRecord) (Page, []models.JobRecord) {
	filtered := Filter(records, v.Criteria)
	ordered := Sort(filtered, v.Field, v.Dir)
	return Paginate(ordered, v.Page, v.PageSize), filtered
}
