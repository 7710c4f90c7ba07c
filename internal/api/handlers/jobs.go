package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sale-prospector/internal/engine"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// GeocodeRunner runs the coordinate backfill on demand.
type GeocodeRunner interface {
	RunGeocodeBackfill(ctx context.Context) (*engine.BackfillResult, error)
}

// JobsHandler handles background job history and manual runs.
type JobsHandler struct {
	store   JobsProvider
	geocode GeocodeRunner
}

// NewJobsHandler creates a new JobsHandler. The geocode runner may be nil
// when geocoding is disabled.
func NewJobsHandler(s JobsProvider, g GeocodeRunner) *JobsHandler {
	return &JobsHandler{store: s, geocode: g}
}

// ListJobsOutput is the response body for listing the latest job runs.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// GetJobHistoryInput is the request path for job history.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" doc:"Job name (e.g. geocode_backfill)"`
	Limit   int    `query:"limit"   doc:"Number of runs (default 20)"       minimum:"1" maximum:"200"`
}

// GetJobHistoryOutput is the response body for a single job's history.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

// GeocodeOutput summarises a manual backfill run.
type GeocodeOutput struct {
	Body struct {
		Status           string `json:"status"            example:"geocode backfill completed"`
		SalesGeocoded    int    `json:"sales_geocoded"`
		ContactsGeocoded int    `json:"contacts_geocoded"`
		Failures         int    `json:"failures"`
		DailyLimitHit    bool   `json:"daily_limit_hit"`
	}
}

const defaultJobHistoryLimit = 20

// ListJobs returns the most recent run for each distinct job.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}
	if runs == nil {
		runs = []domain.JobRun{}
	}
	return &ListJobsOutput{Body: runs}, nil
}

// GetJobHistory returns the run history for a specific job.
func (h *JobsHandler) GetJobHistory(ctx context.Context, input *GetJobHistoryInput) (*GetJobHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultJobHistoryLimit
	}

	runs, err := h.store.ListJobRuns(ctx, input.JobName, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}
	if runs == nil {
		runs = []domain.JobRun{}
	}
	return &GetJobHistoryOutput{Body: runs}, nil
}

// RunGeocode triggers one coordinate backfill and waits for it to finish.
func (h *JobsHandler) RunGeocode(ctx context.Context, _ *struct{}) (*GeocodeOutput, error) {
	if h.geocode == nil {
		return nil, huma.Error503ServiceUnavailable("geocoding is disabled")
	}

	res, err := h.geocode.RunGeocodeBackfill(ctx)
	if errors.Is(err, engine.ErrJobRunning) {
		return nil, huma.Error409Conflict("geocode backfill already running")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("geocode backfill failed: " + err.Error())
	}

	resp := &GeocodeOutput{}
	resp.Body.Status = "geocode backfill completed"
	resp.Body.SalesGeocoded = res.SalesGeocoded
	resp.Body.ContactsGeocoded = res.ContactsGeocoded
	resp.Body.Failures = res.Failures
	resp.Body.DailyLimitHit = res.DailyLimitHit
	return resp, nil
}

// RegisterJobRoutes registers job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List latest job runs",
		Description: "Returns the most recent run record for each distinct background job.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Get job history",
		Description: "Returns the run history for one job, newest first.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)

	huma.Register(api, huma.Operation{
		OperationID: "run-geocode",
		Method:      http.MethodPost,
		Path:        "/api/v1/geocode/run",
		Summary:     "Run the geocode backfill",
		Description: "Looks up coordinates for one batch of sales and contacts that have none.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusConflict, http.StatusInternalServerError, http.StatusServiceUnavailable},
	}, h.RunGeocode)
}
