package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// SalaryRange holds the parsed form of a "$60,000 - $80,000" style cell.
// Avg is the midpoint of Min and Max (Min stands in for a missing Max) and
// is nil whenever Min could not be parsed. A nil Min renders as
// "not provided" and never participates in numeric aggregation.
type SalaryRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
	Avg *float64 `json:"avg"`
}

// JobRecord is the normalized representation of one job listing row.
// Header-to-field mapping happens once at normalization time; downstream
// code only ever sees this closed shape.
type JobRecord struct {
	PostedDate    *time.Time  `json:"posted_date"`
	Employer      string      `json:"employer"`
	JobTitle      string      `json:"job_title"`
	Pathway       string      `json:"pathway"`
	Languages     []string    `json:"languages"`
	Salary        SalaryRange `json:"salary_range"`
	ContactPerson string      `json:"contact_person"`
	Location      string      `json:"location"`
	ApplyLink     string      `json:"apply_link"`
	Deactivated   bool        `json:"deactivated"`
}

// ApplyURL returns the trimmed apply link when it looks like a URL ("http"
// within the first few characters), otherwise "" so callers render plain
// text.
func (r JobRecord) ApplyURL() string {
	link := strings.TrimSpace(r.ApplyLink)
	idx := strings.Index(link, "http")
	if idx >= 0 && idx < 4 {
		return link
	}
	return ""
}

// Listing is the stored form of a submitted job posting. Fields are kept as
// the raw submitted text so reads flow through the same normalizer as the
// spreadsheet sources.
type Listing struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PostedDate    string `json:"posted_date"`
	Employer      string `gorm:"not null" json:"employer"`
	JobTitle      string `gorm:"not null" json:"job_title"`
	Pathway       string `json:"pathway"`
	Languages     string `json:"languages"`
	SalaryRange   string `json:"salary_range"`
	ContactPerson string `json:"contact_person"`
	Location      string `json:"location"`
	ApplyLink     string `json:"apply_link"`
	// New submissions stay hidden until reviewed.
	Deactivated bool `gorm:"default:true" json:"deactivated"`
}
