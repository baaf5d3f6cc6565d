package dtos

import (
	"github.com/careerpathways/job-board/internal/models"
	"github.com/careerpathways/job-board/internal/pipeline"
)

// JobSubmissionRequest is the write-path payload: one new listing row.
// Salary range and languages arrive as the same free text the spreadsheet
// columns hold; they are normalized on the way back out, not on the way in.
type JobSubmissionRequest struct {
	Employer      string `json:"employer" binding:"required"`
	JobTitle      string `json:"job_title" binding:"required"`
	Pathway       string `json:"pathway"`
	Languages     string `json:"languages"`
	SalaryRange   string `json:"salary_range"`
	ContactPerson string `json:"contact_person"`
	Location      string `json:"location"`
	ApplyLink     string `json:"apply_link"`
	PostedDate    string `json:"posted_date"`
}

// JobListResponse is one view refresh: the current page slice, the paging
// pair plus the compact page index, and the aggregate over the filtered
// set.
type JobListResponse struct {
	Jobs       []models.JobRecord `json:"jobs"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	PageIndex  []int              `json:"page_index"`
	Stats      pipeline.Stats     `json:"stats"`
}
