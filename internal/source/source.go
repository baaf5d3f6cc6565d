// Package source fetches raw job-listing tables. Every variant (CSV export,
// Google Sheet, stored listings) reduces to the same shape: a header row
// followed by data rows of string cells.
package source

import (
	"context"
	"fmt"
	"strings"
)

// RawRow is an ordered sequence of string cells in source column order.
type RawRow = []string

// TableData is a rectangular snapshot of the data source.
type TableData struct {
	Header RawRow
	Rows   []RawRow
}

// RowSource is anything that can yield a header row plus data rows.
type RowSource interface {
	Fetch(ctx context.Context) (TableData, error)
}

// TableFromValues converts a Sheets-style array-of-arrays payload into a
// TableData. Cells are stringified and trimmed; rows left with no non-empty
// cell are dropped.
func TableFromValues(values [][]interface{}) (TableData, error) {
	var rows []RawRow
	for _, raw := range values {
		row := make(RawRow, 0, len(raw))
		blank := true
		for _, cell := range raw {
			s := strings.TrimSpace(fmt.Sprint(cell))
			if s != "" {
				blank = false
			}
			row = append(row, s)
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return TableData{}, fmt.Errorf("source payload contains no rows")
	}
	return TableData{Header: rows[0], Rows: rows[1:]}, nil
}
