package source

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetSource reads a Google Sheet range through the Sheets API. The
// ValueRange response carries the same array-of-arrays shape the rest of
// the pipeline expects.
type SheetSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

func NewSheetSource(ctx context.Context, apiKey, spreadsheetID, readRange string) (*SheetSource, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return &SheetSource{
		service:       svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

func (s *SheetSource) Fetch(ctx context.Context) (TableData, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return TableData{}, fmt.Errorf("reading sheet %s: %w", s.spreadsheetID, err)
	}
	table, err := TableFromValues(resp.Values)
	if err != nil {
		return TableData{}, fmt.Errorf("reading sheet %s: %w", s.spreadsheetID, err)
	}
	return table, nil
}
