package notify

import (
	"context"
	"log/slog"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards messages with a log line.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendJobResult logs and discards a job result.
func (n *NoOpNotifier) SendJobResult(_ context.Context, result *JobResult) error {
	n.log.Debug("notification discarded (no backend configured)",
		"job", result.Job,
		"status", result.Status,
		"run_id", result.RunID,
	)
	return nil
}

// SendSyncSummary logs and discards a batch of summaries.
func (n *NoOpNotifier) SendSyncSummary(
	_ context.Context,
	summaries []domain.SyncSummary,
	job string,
) error {
	n.log.Debug("summary notification discarded (no backend configured)",
		"job", job,
		"stores", len(summaries),
	)
	return nil
}
