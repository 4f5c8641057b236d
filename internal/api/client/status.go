package client

import (
	"context"
	"net/url"
	"time"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// ThrottleGroup mirrors one group of GET /api/v1/throttle.
type ThrottleGroup struct {
	Group          string     `json:"group"`
	MaxQuota       int        `json:"max_quota"`
	RestoreSeconds float64    `json:"restore_seconds"`
	Tokens         float64    `json:"tokens"`
	ServerMax      *float64   `json:"server_max,omitempty"`
	ServerRemain   *float64   `json:"server_remaining,omitempty"`
	ServerResetsOn *time.Time `json:"server_resets_on,omitempty"`
}

// StoreThrottle is the throttle state of one store.
type StoreThrottle struct {
	Store  string          `json:"store"`
	Groups []ThrottleGroup `json:"groups"`
}

// GetThrottle returns the throttle state of every store on the server.
func (c *Client) GetThrottle(ctx context.Context) ([]StoreThrottle, error) {
	var resp struct {
		Stores []StoreThrottle `json:"stores"`
	}
	if err := c.get(ctx, "/api/v1/throttle", &resp); err != nil {
		return nil, err
	}
	return resp.Stores, nil
}

// StoreCheckpoint is the order sync position of one store.
type StoreCheckpoint struct {
	Store     string     `json:"store"`
	Cursor    *time.Time `json:"cursor,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ListCheckpoints returns the order sync cursor of every store.
func (c *Client) ListCheckpoints(ctx context.Context) ([]StoreCheckpoint, error) {
	var resp struct {
		Stores []StoreCheckpoint `json:"stores"`
	}
	if err := c.get(ctx, "/api/v1/checkpoints", &resp); err != nil {
		return nil, err
	}
	return resp.Stores, nil
}

// ArchivedReportsResponse is one page of the report archive index.
type ArchivedReportsResponse struct {
	Reports []domain.ReportArchive `json:"reports"`
	Total   int                    `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// ListArchivedReports returns archived reports, optionally filtered.
func (c *Client) ListArchivedReports(
	ctx context.Context,
	store, reportType string,
	limit, offset int,
) (*ArchivedReportsResponse, error) {
	v := url.Values{}
	setIf(v, "store", store)
	setIf(v, "report_type", reportType)
	setPositive(v, "limit", limit)
	setPositive(v, "offset", offset)

	path := "/api/v1/reports/archived"
	if q := v.Encode(); q != "" {
		path += "?" + q
	}

	var resp ArchivedReportsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
