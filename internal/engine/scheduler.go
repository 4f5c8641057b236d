package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/mws-toolkit/internal/metrics"
	"github.com/donaldgifford/mws-toolkit/internal/notify"
	"github.com/donaldgifford/mws-toolkit/internal/store"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

const (
	staleJobAge = 2 * time.Hour
	minLockTTL  = 5 * time.Minute
)

var (
	// ErrJobLocked is returned when another instance holds the job lock.
	ErrJobLocked = errors.New("job is already running")
	// ErrUnknownJob is returned by RunNow for unregistered job names.
	ErrUnknownJob = errors.New("unknown job")
)

// Scheduler runs the sync jobs on a cron schedule. Each run takes a
// database lock so only one instance executes a job at a time, and is
// recorded as a job_run row.
type Scheduler struct {
	cron     *cron.Cron
	engine   *Engine
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
	holder   string

	notifySuccess bool

	jobs map[string]scheduledJob

	orderSyncEntryID     cron.EntryID
	reportArchiveEntryID cron.EntryID
}

type scheduledJob struct {
	ttl time.Duration
	run func(context.Context) ([]domain.SyncSummary, error)
}

// SchedulerOption configures the Scheduler.
type SchedulerOption func(*Scheduler)

// WithNotifySuccess sends a summary notification after successful runs.
func WithNotifySuccess(enabled bool) SchedulerOption {
	return func(s *Scheduler) {
		s.notifySuccess = enabled
	}
}

// WithHolder sets the lock holder name. Defaults to a random UUID.
func WithHolder(holder string) SchedulerOption {
	return func(s *Scheduler) {
		s.holder = holder
	}
}

// NewScheduler creates a Scheduler. The report archive job is only
// registered when reportInterval is positive and the engine has an
// archiver.
func NewScheduler(
	eng *Engine,
	s store.Store,
	orderInterval time.Duration,
	reportInterval time.Duration,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:     c,
		engine:   eng,
		store:    s,
		notifier: eng.Notifier(),
		log:      log,
		holder:   uuid.NewString(),
		jobs:     make(map[string]scheduledJob, 2),
	}
	for _, opt := range opts {
		opt(sched)
	}

	sched.jobs[domain.JobOrderSync] = scheduledJob{
		ttl: lockTTL(orderInterval),
		run: eng.RunOrderSync,
	}
	id, err := c.AddFunc("@every "+orderInterval.String(), sched.scheduled(domain.JobOrderSync))
	if err != nil {
		return nil, fmt.Errorf("scheduling %s: %w", domain.JobOrderSync, err)
	}
	sched.orderSyncEntryID = id

	if reportInterval > 0 && eng.ArchiveEnabled() {
		sched.jobs[domain.JobReportArchive] = scheduledJob{
			ttl: lockTTL(reportInterval),
			run: eng.RunReportArchive,
		}
		id, err := c.AddFunc(
			"@every "+reportInterval.String(),
			sched.scheduled(domain.JobReportArchive),
		)
		if err != nil {
			return nil, fmt.Errorf("scheduling %s: %w", domain.JobReportArchive, err)
		}
		sched.reportArchiveEntryID = id
	}

	return sched, nil
}

func lockTTL(interval time.Duration) time.Duration {
	return max(interval, minLockTTL)
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder, "jobs", len(s.jobs))
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// Jobs returns the registered job names.
func (s *Scheduler) Jobs() []string {
	names := make([]string, 0, len(s.jobs))
	for _, name := range []string{domain.JobOrderSync, domain.JobReportArchive} {
		if _, ok := s.jobs[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// SyncNextRunTimestamps publishes the next run time of every job.
func (s *Scheduler) SyncNextRunTimestamps() {
	for job, id := range map[string]cron.EntryID{
		domain.JobOrderSync:     s.orderSyncEntryID,
		domain.JobReportArchive: s.reportArchiveEntryID,
	} {
		if id == 0 {
			continue
		}
		next := s.cron.Entry(id).Next
		if next.IsZero() {
			continue
		}
		metrics.SchedulerNextRunTimestamp.WithLabelValues(job).Set(float64(next.Unix()))
	}
}

// RecoverStaleJobRuns marks runs left in "running" by a crashed instance.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobAge)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// RunNow runs a registered job immediately, outside the schedule.
func (s *Scheduler) RunNow(ctx context.Context, job string) error {
	j, ok := s.jobs[job]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, job)
	}
	return s.runJob(ctx, job, j.ttl, j.run)
}

func (s *Scheduler) scheduled(job string) func() {
	return func() {
		ctx := context.Background()
		s.log.Info("scheduled job starting", "job", job)

		err := s.RunNow(ctx, job)
		switch {
		case errors.Is(err, ErrJobLocked):
			s.log.Info("scheduled job skipped, lock held elsewhere", "job", job)
		case err != nil:
			s.log.Error("scheduled job failed", "job", job, "error", err)
		}
		s.SyncNextRunTimestamps()
	}
}

// runJob wraps fn with the scheduler lock, a job_run row, job metrics and
// notifications.
func (s *Scheduler) runJob(
	ctx context.Context,
	job string,
	ttl time.Duration,
	fn func(context.Context) ([]domain.SyncSummary, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, job, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", job, err)
	}
	if !acquired {
		return ErrJobLocked
	}
	defer func() {
		err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), job, s.holder)
		if err != nil {
			s.log.Error("releasing scheduler lock", "job", job, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, job)
	if err != nil {
		return fmt.Errorf("recording job run for %s: %w", job, err)
	}

	start := time.Now()
	summaries, jobErr := fn(ctx)
	elapsed := time.Since(start)

	rows := 0
	for i := range summaries {
		rows += summaries[i].Written
	}

	status, errText := domain.JobStatusSucceeded, ""
	metrics.JobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
	if jobErr != nil {
		status, errText = domain.JobStatusFailed, jobErr.Error()
		metrics.JobFailuresTotal.WithLabelValues(job).Inc()
	} else {
		metrics.JobLastSuccessTimestamp.WithLabelValues(job).SetToCurrentTime()
	}

	if err := s.store.CompleteJobRun(
		context.WithoutCancel(ctx), runID, status, errText, rows,
	); err != nil {
		s.log.Error("completing job run", "job", job, "run_id", runID, "error", err)
	}

	s.notify(ctx, &notify.JobResult{
		RunID:     runID,
		Job:       job,
		Status:    status,
		Error:     errText,
		StartedAt: start,
		Duration:  elapsed,
		Summaries: summaries,
	})

	return jobErr
}

func (s *Scheduler) notify(ctx context.Context, result *notify.JobResult) {
	if s.notifier == nil {
		return
	}

	var err error
	switch {
	case result.Failed():
		err = s.notifier.SendJobResult(ctx, result)
	case s.notifySuccess && len(result.Summaries) > 0:
		err = s.notifier.SendSyncSummary(ctx, result.Summaries, result.Job)
	}
	if err != nil {
		s.log.Error("sending job notification", "job", result.Job, "error", err)
	}
}
