package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ParseDelimited turns raw comma-delimited text into rows of trimmed cells.
// Commas inside double-quoted spans do not split; a doubled quote inside a
// quoted span is a literal quote. Blank lines and rows whose cells are all
// empty after trimming produce no row.
func ParseDelimited(text string) []RawRow {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var rows []RawRow
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := splitLine(line)
		blank := true
		for _, cell := range row {
			if cell != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func splitLine(line string) RawRow {
	var row RawRow
	var cell strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			cell.WriteRune('"')
			i++
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			row = append(row, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	row = append(row, strings.TrimSpace(cell.String()))
	return row
}

// CSVSource fetches a delimited-text export over HTTP. The first
// non-blank line is the header.
type CSVSource struct {
	URL    string
	Client *http.Client
}

func NewCSVSource(url string) *CSVSource {
	return &CSVSource{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *CSVSource) Fetch(ctx context.Context) (TableData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return TableData{}, fmt.Errorf("building export request: %w", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return TableData{}, fmt.Errorf("fetching export: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return TableData{}, fmt.Errorf("fetching export: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return TableData{}, fmt.Errorf("reading export body: %w", err)
	}
	rows := ParseDelimited(string(body))
	if len(rows) == 0 {
		return TableData{}, fmt.Errorf("export payload is empty")
	}
	return TableData{Header: rows[0], Rows: rows[1:]}, nil
}
