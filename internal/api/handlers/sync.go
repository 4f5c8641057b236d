package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mws-toolkit/internal/engine"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// JobRunner runs a scheduled job on demand.
type JobRunner interface {
	RunNow(ctx context.Context, job string) error
}

// SyncHandler handles manual sync trigger requests.
type SyncHandler struct {
	runner JobRunner
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(r JobRunner) *SyncHandler {
	return &SyncHandler{runner: r}
}

// SyncOutput is the response body for the sync endpoints.
type SyncOutput struct {
	Body struct {
		Job    string `json:"job"    example:"order_sync"`
		Status string `json:"status" example:"completed"  doc:"Sync status"`
	}
}

// SyncOrders runs the order sync job now.
func (h *SyncHandler) SyncOrders(ctx context.Context, _ *struct{}) (*SyncOutput, error) {
	return h.run(ctx, domain.JobOrderSync)
}

// SyncReports runs the report archive job now.
func (h *SyncHandler) SyncReports(ctx context.Context, _ *struct{}) (*SyncOutput, error) {
	return h.run(ctx, domain.JobReportArchive)
}

func (h *SyncHandler) run(ctx context.Context, job string) (*SyncOutput, error) {
	err := h.runner.RunNow(ctx, job)
	switch {
	case errors.Is(err, engine.ErrJobLocked):
		return nil, huma.Error409Conflict(job + " is already running")
	case errors.Is(err, engine.ErrUnknownJob):
		return nil, huma.Error404NotFound(job + " is not enabled")
	case err != nil:
		return nil, huma.Error500InternalServerError(job + " failed: " + err.Error())
	}

	resp := &SyncOutput{}
	resp.Body.Job = job
	resp.Body.Status = "completed"
	return resp, nil
}

// RegisterSyncRoutes registers the manual sync endpoints with the Huma API.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "sync-orders",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync/orders",
		Summary:     "Trigger order sync",
		Description: "Runs the order sync for every store now, resuming from each checkpoint.",
		Tags:        []string{"sync"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusInternalServerError,
		},
	}, h.SyncOrders)

	huma.Register(api, huma.Operation{
		OperationID: "sync-reports",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync/reports",
		Summary:     "Trigger report archive",
		Description: "Archives unacknowledged reports for every store now.",
		Tags:        []string{"sync"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusInternalServerError,
		},
	}, h.SyncReports)
}
