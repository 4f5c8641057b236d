package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

const defaultJobHistoryLimit = 20

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the job run history.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// ListJobsOutput is the latest run of every job.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// GetJobHistoryInput selects one job's history.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" doc:"Job name"                    enum:"order_sync,report_archive"`
	Limit   int    `query:"limit"   doc:"Number of runs (default 20)" minimum:"0"                      maximum:"200"`
}

// GetJobHistoryOutput is the run history of one job, newest first.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

// ListJobs returns the most recent run for each job.
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

// GetJobHistory returns the run history of one job.
func (h *JobsHandler) GetJobHistory(
	ctx context.Context,
	input *GetJobHistoryInput,
) (*GetJobHistoryOutput, error) {
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

// RegisterJobRoutes registers job history endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List latest job runs",
		Description: "Returns the most recent run record for each scheduled job.",
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
}
