package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// GeocodeResult summarises a manual backfill run.
type GeocodeResult struct {
	Status           string `json:"status"`
	SalesGeocoded    int    `json:"sales_geocoded"`
	ContactsGeocoded int    `json:"contacts_geocoded"`
	Failures         int    `json:"failures"`
	DailyLimitHit    bool   `json:"daily_limit_hit"`
}

// ListJobs returns the most recent run for each distinct job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns up to limit runs of one job. A zero limit uses the
// server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// RunGeocode triggers one geocode backfill and waits for it.
func (c *Client) RunGeocode(ctx context.Context) (*GeocodeResult, error) {
	var res GeocodeResult
	if err := c.post(ctx, "/api/v1/geocode/run", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
