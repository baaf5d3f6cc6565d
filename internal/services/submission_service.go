package services

import (
	"github.com/careerpathways/job-board/internal/dtos"
	"github.com/careerpathways/job-board/internal/models"
	"gorm.io/gorm"
)

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// ListingFromRequest maps a submission onto a stored row. The row keeps the
// raw submitted text and is deactivated until reviewed, mirroring the
// normalizer's hide-on-ambiguity polarity.
func ListingFromRequest(req *dtos.JobSubmissionRequest) *models.Listing {
	return &models.Listing{
		PostedDate:    req.PostedDate,
		Employer:      req.Employer,
		JobTitle:      req.JobTitle,
		Pathway:       req.Pathway,
		Languages:     req.Languages,
		SalaryRange:   req.SalaryRange,
		ContactPerson: req.ContactPerson,
		Location:      req.Location,
		ApplyLink:     req.ApplyLink,
		Deactivated:   true,
	}
}

// CreateListing stores one submitted posting.
func (s *SubmissionService) CreateListing(req *dtos.JobSubmissionRequest) (*models.Listing, error) {
	listing := ListingFromRequest(req)
	if err := s.DB.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}
