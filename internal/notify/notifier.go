// Package notify defines the notification interface and implementations
// for job outcome delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// JobResult describes one finished job run.
type JobResult struct {
	RunID     string
	Job       string
	Status    string
	Error     string
	StartedAt time.Time
	Duration  time.Duration
	Summaries []domain.SyncSummary
}

// Failed reports whether the run ended in failure.
func (r *JobResult) Failed() bool {
	return r.Status == domain.JobStatusFailed
}

// Notifier defines the interface for sending job notifications.
type Notifier interface {
	SendJobResult(ctx context.Context, result *JobResult) error
	SendSyncSummary(ctx context.Context, summaries []domain.SyncSummary, job string) error
}
