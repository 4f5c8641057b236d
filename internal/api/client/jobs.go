package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// ListJobs returns the most recent run for each scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for one job. limit 0 uses the
// server default.
func (c *Client) GetJobHistory(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
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

// SyncResult is the response of a manual sync trigger.
type SyncResult struct {
	Job    string `json:"job"`
	Status string `json:"status"`
}

// SyncOrders runs the order sync on the server and waits for it.
func (c *Client) SyncOrders(ctx context.Context) (*SyncResult, error) {
	var res SyncResult
	if err := c.post(ctx, "/api/v1/sync/orders", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SyncReports runs the report archive on the server and waits for it.
func (c *Client) SyncReports(ctx context.Context) (*SyncResult, error) {
	var res SyncResult
	if err := c.post(ctx, "/api/v1/sync/reports", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
