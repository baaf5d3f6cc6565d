package pipeline

import "github.com/careerpathways/job-board/internal/models"

// SalarySummary is the min/max over every record with a parsed salary.
// HasData is false when no record contributed — presentation renders a
// "no data" state instead of infinities.
type SalarySummary struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	HasData bool    `json:"has_data"`
}

// LanguageCount is one entry of the language frequency table.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// LocationStat groups records by location: how many, their summed average
// salary, and that sum's share of the grand total across locations.
type LocationStat struct {
	Location    string  `json:"location"`
	Count       int     `json:"count"`
	SalaryTotal float64 `json:"salary_total"`
	SalaryShare float64 `json:"salary_share"`
}

// Stats is the aggregate view over one record set, feeding both the stats
// panel and the chart series.
type Stats struct {
	Count     int             `json:"count"`
	Salary    SalarySummary   `json:"salary"`
	Languages []LanguageCount `json:"languages"`
	Locations []LocationStat  `json:"locations"`
}

// Aggregate computes summary statistics over the record set. Records with
// no parsed salary are excluded from the numeric summaries, never treated
// as zero. An empty input is a valid case and yields zero values. Frequency
// tables keep first-appearance order; consumers re-sort if they want rank.
func Aggregate(records []models.JobRecord) Stats {
	stats := Stats{
		Count:     len(records),
		Languages: []LanguageCount{},
		Locations: []LocationStat{},
	}

	langIndex := map[string]int{}
	locIndex := map[string]int{}
	grandTotal := 0.0

	for _, r := range records {
		if r.Salary.Min != nil {
			effectiveMax := *r.Salary.Min
			if r.Salary.Max != nil {
				effectiveMax = *r.Salary.Max
			}
			if !stats.Salary.HasData || *r.Salary.Min < stats.Salary.Min {
				stats.Salary.Min = *r.Salary.Min
			}
			if !stats.Salary.HasData || effectiveMax > stats.Salary.Max {
				stats.Salary.Max = effectiveMax
			}
			stats.Salary.HasData = true
		}

		for _, lang := range r.Languages {
			i, ok := langIndex[lang]
			if !ok {
				i = len(stats.Languages)
				langIndex[lang] = i
				stats.Languages = append(stats.Languages, LanguageCount{Language: lang})
			}
			stats.Languages[i].Count++
		}

		if r.Location != "" {
			i, ok := locIndex[r.Location]
			if !ok {
				i = len(stats.Locations)
				locIndex[r.Location] = i
				stats.Locations = append(stats.Locations, LocationStat{Location: r.Location})
			}
			stats.Locations[i].Count++
			if r.Salary.Avg != nil {
				stats.Locations[i].SalaryTotal += *r.Salary.Avg
				grandTotal += *r.Salary.Avg
			}
		}
	}

	if grandTotal > 0 {
		for i := range stats.Locations {
			stats.Locations[i].SalaryShare = stats.Locations[i].SalaryTotal / grandTotal
		}
	}
	return stats
}
