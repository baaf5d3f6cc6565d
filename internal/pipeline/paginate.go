package pipeline

import "github.com/careerpathways/job-board/internal/models"

// Page is one slice of an ordered collection.
type Page struct {
	Items      []models.JobRecord
	TotalPages int
}

// Ellipsis is the page-index token standing in for a collapsed gap.
const Ellipsis = -1

// TotalPages is ceil(count / pageSize) with a floor of one: an empty
// collection is a single empty page, never zero pages.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	total := (count + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// ClampPage clamps a requested page number into [1, totalPages]. Typed
// page targets are clamped silently rather than rejected.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices the collection into the requested fixed-size page. The
// page number is clamped, so the result never exceeds pageSize items.
func Paginate(records []models.JobRecord, page, pageSize int) Page {
	total := TotalPages(len(records), pageSize)
	page = ClampPage(page, total)

	start := (page - 1) * pageSize
	if start >= len(records) {
		return Page{Items: []models.JobRecord{}, TotalPages: total}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return Page{Items: records[start:end], TotalPages: total}
}

// PageIndex builds the compact page-number strip: always the first and
// last page, up to neighbors pages on each side of the current one. A gap
// of exactly one page is shown as that page number; any larger gap
// collapses to a single Ellipsis token.
func PageIndex(current, totalPages, neighbors int) []int {
	current = ClampPage(current, totalPages)

	show := func(p int) bool {
		if p == 1 || p == totalPages {
			return true
		}
		return p >= current-neighbors && p <= current+neighbors
	}

	var out []int
	prev := 0
	for p := 1; p <= totalPages; p++ {
		if !show(p) {
			continue
		}
		switch gap := p - prev; {
		case gap == 2:
			out = append(out, p-1)
		case gap > 2:
			out = append(out, Ellipsis)
		}
		out = append(out, p)
		prev = p
	}
	return out
}
