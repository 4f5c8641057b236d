// Package store defines the datastore abstraction for the sync service.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// OrderQuery defines optional filters for order queries.
type OrderQuery struct {
	Store              string
	Statuses           []string
	FulfillmentChannel string
	PurchasedAfter     *time.Time
	PurchasedBefore    *time.Time
	Limit              int // default 50
	Offset             int
	OrderBy            string // "purchase_date", "last_update_date", "order_total"
}

// ReportArchiveQuery defines optional filters for archived report queries.
type ReportArchiveQuery struct {
	Store      string
	ReportType string
	Limit      int
	Offset     int
}

// Store defines all data access operations for the sync service.
type Store interface {
	// Orders
	UpsertOrder(ctx context.Context, o *domain.Order) error
	UpsertOrderItems(ctx context.Context, items []domain.OrderItem) error
	GetOrder(ctx context.Context, store, amazonOrderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, q *OrderQuery) ([]domain.Order, int, error)
	ListOrderItems(ctx context.Context, store, amazonOrderID string) ([]domain.OrderItem, error)

	// Checkpoints
	GetCheckpoint(ctx context.Context, store, job string) (*domain.SyncCheckpoint, error)
	SaveCheckpoint(ctx context.Context, cp *domain.SyncCheckpoint) error

	// Report archives
	RecordReportArchive(ctx context.Context, a *domain.ReportArchive) error
	IsReportArchived(ctx context.Context, store, reportID string) (bool, error)
	MarkReportsAcknowledged(ctx context.Context, store string, reportIDs []string) error
	ListReportArchives(
		ctx context.Context,
		q *ReportArchiveQuery,
	) ([]domain.ReportArchive, int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(
		ctx context.Context,
		id, status, errText string,
		rowsAffected int,
	) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(
		ctx context.Context,
		jobName, holder string,
		ttl time.Duration,
	) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// System state
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
