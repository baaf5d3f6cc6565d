package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/careerpathways/job-board/internal/models"
	"github.com/careerpathways/job-board/internal/pipeline"
	"github.com/careerpathways/job-board/internal/source"
)

// ErrNoData means no snapshot has been loaded yet (or every load so far
// has failed). Handlers surface it as "could not load data" rather than
// serving a partial view.
var ErrNoData = errors.New("job data not loaded")

// ListingService owns the normalized record snapshot. A refresh fully
// replaces the previous snapshot; records are never merged or deduplicated
// across loads.
type ListingService struct {
	src source.RowSource

	mu      sync.RWMutex
	records []models.JobRecord
	loaded  bool
}

func NewListingService(src source.RowSource) *ListingService {
	return &ListingService{src: src}
}

// Refresh fetches the source and rebuilds the snapshot. Row-level problems
// are logged and skipped; only a source failure aborts the load, and a
// failed load leaves the previous snapshot in place.
func (s *ListingService) Refresh(ctx context.Context) error {
	table, err := s.src.Fetch(ctx)
	if err != nil {
		return err
	}
	records, diags := pipeline.Normalize(table)
	for _, d := range diags {
		log.Printf("skipping row %d: %s", d.Row, d.Reason)
	}
	if len(diags) > 0 {
		log.Printf("normalization dropped %d of %d rows", len(diags), len(table.Rows))
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Records returns the full snapshot, deactivated records included.
func (s *ListingService) Records() ([]models.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrNoData
	}
	out := make([]models.JobRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// ActiveRecords returns the snapshot with deactivated records stripped.
// Every job-board view reads through here, so a deactivated record never
// reaches a filter, sort, or page pass.
func (s *ListingService) ActiveRecords() ([]models.JobRecord, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	return pipeline.ActiveJobs(records), nil
}
