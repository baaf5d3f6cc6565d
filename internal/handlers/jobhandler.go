package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careerpathways/job-board/internal/dtos"
	"github.com/careerpathways/job-board/internal/pipeline"
	"github.com/careerpathways/job-board/internal/services"
)

type JobHandler struct {
	Listings    *services.ListingService
	Submissions *services.SubmissionService

	PageSize      int
	PageNeighbors int
}

func NewJobHandler(listings *services.ListingService, submissions *services.SubmissionService, pageSize, pageNeighbors int) *JobHandler {
	return &JobHandler{
		Listings:      listings,
		Submissions:   submissions,
		PageSize:      pageSize,
		PageNeighbors: pageNeighbors,
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is the GET /jobs endpoint: active jobs through
// filter → sort → paginate, with stats aggregated over the filtered set.
func (h *JobHandler) ListJobs(c *gin.Context) {
	records, err := h.Listings.ActiveRecords()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load job data"})
		return
	}

	view, err := h.viewFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, filtered := view.Apply(records)
	c.JSON(http.StatusOK, dtos.JobListResponse{
		Jobs:       page.Items,
		Page:       pipeline.ClampPage(view.Page, page.TotalPages),
		TotalPages: page.TotalPages,
		PageIndex:  pipeline.PageIndex(view.Page, page.TotalPages, h.PageNeighbors),
		Stats:      pipeline.Aggregate(filtered),
	})
}

// JobStats is the dashboard aggregation over every active record,
// independent of any list-view filters.
func (h *JobHandler) JobStats(c *gin.Context) {
	records, err := h.Listings.ActiveRecords()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load job data"})
		return
	}
	c.JSON(http.StatusOK, pipeline.Aggregate(records))
}

// RefreshJobs re-fetches the source and fully replaces the snapshot — the
// server-side equivalent of a page reload.
func (h *JobHandler) RefreshJobs(c *gin.Context) {
	if err := h.Listings.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not load job data: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitJob is the write path: one new stored listing row.
func (h *JobHandler) SubmitJob(c *gin.Context) {
	var req dtos.JobSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	listing, err := h.Submissions.CreateListing(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// viewFromQuery builds a per-request ViewState from the query string.
// Invalid date-range input rejects the request without touching any state;
// an out-of-range page is clamped later instead of rejected.
func (h *JobHandler) viewFromQuery(c *gin.Context) (pipeline.ViewState, error) {
	view := pipeline.NewViewState(h.PageSize)

	criteria := pipeline.Criteria{
		Search:    c.Query("search"),
		Pathway:   c.Query("pathway"),
		Locations: splitMulti(c.Query("locations")),
		Languages: splitMulti(c.Query("languages")),
	}

	bucket, err := pipeline.ParseSalaryBucket(c.Query("bucket"))
	if err != nil {
		return view, err
	}
	criteria.SalaryBucket = bucket

	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		criteria.DateFrom = pipeline.ParseDate(from)
		criteria.DateTo = pipeline.ParseDate(to)
		if err := pipeline.ValidateDateRange(criteria.DateFrom, criteria.DateTo); err != nil {
			return view, err
		}
	}
	view.SetCriteria(criteria)

	if sortField := c.Query("sort"); sortField != "" {
		field, err := pipeline.ParseField(sortField)
		if err != nil {
			return view, err
		}
		view.Field = field
	}
	if c.Query("dir") == string(pipeline.Ascending) {
		view.Dir = pipeline.Ascending
	} else if c.Query("dir") == string(pipeline.Descending) {
		view.Dir = pipeline.Descending
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		view.Page = page
	}
	return view, nil
}

func splitMulti(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
