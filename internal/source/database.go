package source

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/careerpathways/job-board/internal/models"
)

// canonicalHeader mirrors the spreadsheet export's column order so stored
// listings flow through the same normalizer as the other sources.
var canonicalHeader = RawRow{
	"Date", "Employer", "Job Title", "Pathway", "Language",
	"Salary Range", "Contact Person", "Location", "Deactivate?", "Apply",
}

// DatabaseSource reads stored listings and re-shapes them as raw rows.
type DatabaseSource struct {
	DB *gorm.DB
}

func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{DB: db}
}

func (s *DatabaseSource) Fetch(ctx context.Context) (TableData, error) {
	var listings []models.Listing
	if err := s.DB.WithContext(ctx).Order("id").Find(&listings).Error; err != nil {
		return TableData{}, fmt.Errorf("loading stored listings: %w", err)
	}
	rows := make([]RawRow, 0, len(listings))
	for _, l := range listings {
		deactivated := "TRUE"
		if !l.Deactivated {
			deactivated = "FALSE"
		}
		rows = append(rows, RawRow{
			l.PostedDate, l.Employer, l.JobTitle, l.Pathway, l.Languages,
			l.SalaryRange, l.ContactPerson, l.Location, deactivated, l.ApplyLink,
		})
	}
	return TableData{Header: canonicalHeader, Rows: rows}, nil
}
