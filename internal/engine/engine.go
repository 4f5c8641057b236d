// Package engine runs the order sync and report archive jobs against each
// configured seller account.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/donaldgifford/mws-toolkit/internal/archive"
	"github.com/donaldgifford/mws-toolkit/internal/metrics"
	"github.com/donaldgifford/mws-toolkit/internal/notify"
	"github.com/donaldgifford/mws-toolkit/internal/store"
	"github.com/donaldgifford/mws-toolkit/pkg/mws"
	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

const (
	defaultLookback = 72 * time.Hour
	defaultMaxPages = 50

	// UpdateReportAcknowledgements takes at most this many IDs per call.
	ackBatchSize = 100
)

// ErrArchiveDisabled is returned by RunReportArchive when no archiver is set.
var ErrArchiveDisabled = errors.New("report archive is not configured")

// Engine syncs vendor data into the store.
type Engine struct {
	store    store.Store
	clients  map[string]*mws.Client
	names    []string
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time

	lookback      time.Duration
	fetchItems    bool
	orderStatuses []string
	maxPages      int
	staggerOffset time.Duration

	archiver      archive.Archiver
	bucket        string
	archivePrefix string
	reportTypes   []string
	acknowledge   bool
}

// NewEngine creates a new Engine. clients maps store names to their
// vendor client.
func NewEngine(
	s store.Store,
	clients map[string]*mws.Client,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	names := make([]string, 0, len(clients))
	for name := range clients {
		names = append(names, name)
	}
	slices.Sort(names)

	eng := &Engine{
		store:         s,
		clients:       clients,
		names:         names,
		notifier:      n,
		log:           slog.Default(),
		now:           time.Now,
		lookback:      defaultLookback,
		maxPages:      defaultMaxPages,
		staggerOffset: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = f
	}
}

// WithLookback sets how far back the first order sync of a store reaches.
func WithLookback(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.lookback = d
	}
}

// WithFetchItems enables ListOrderItems calls for every synced order.
func WithFetchItems(fetch bool) EngineOption {
	return func(e *Engine) {
		e.fetchItems = fetch
	}
}

// WithOrderStatuses limits the order sync to the given statuses.
func WithOrderStatuses(statuses []string) EngineOption {
	return func(e *Engine) {
		e.orderStatuses = statuses
	}
}

// WithMaxPages caps pages fetched per store and job.
func WithMaxPages(n int) EngineOption {
	return func(e *Engine) {
		e.maxPages = n
	}
}

// WithStaggerOffset sets the delay between processing each store.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithArchiver enables the report archive job.
func WithArchiver(a archive.Archiver, bucket, prefix string) EngineOption {
	return func(e *Engine) {
		e.archiver = a
		e.bucket = bucket
		e.archivePrefix = prefix
	}
}

// WithReportTypes limits archived reports to the given types.
func WithReportTypes(types []string) EngineOption {
	return func(e *Engine) {
		e.reportTypes = types
	}
}

// WithAcknowledge marks archived reports as acknowledged with the vendor.
func WithAcknowledge(ack bool) EngineOption {
	return func(e *Engine) {
		e.acknowledge = ack
	}
}

// Stores returns the configured store names in sorted order.
func (eng *Engine) Stores() []string {
	return slices.Clone(eng.names)
}

// Client returns the vendor client of a store.
func (eng *Engine) Client(name string) (*mws.Client, bool) {
	c, ok := eng.clients[name]
	return c, ok
}

// ArchiveEnabled reports whether the report archive job can run.
func (eng *Engine) ArchiveEnabled() bool {
	return eng.archiver != nil
}

// Notifier returns the notifier used for job results.
func (eng *Engine) Notifier() notify.Notifier {
	return eng.notifier
}

// RunOrderSync syncs orders of every store. A failing store does not stop
// the others; all failures are joined into the returned error.
func (eng *Engine) RunOrderSync(ctx context.Context) ([]domain.SyncSummary, error) {
	return eng.forEachStore(ctx, domain.JobOrderSync, eng.syncStoreOrders)
}

// RunReportArchive copies unacknowledged reports of every store into the
// archive bucket.
func (eng *Engine) RunReportArchive(ctx context.Context) ([]domain.SyncSummary, error) {
	if eng.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	return eng.forEachStore(ctx, domain.JobReportArchive, eng.archiveStoreReports)
}

// storeJob runs one job against a single store.
type storeJob func(
	ctx context.Context,
	name string,
	c *mws.Client,
) (domain.SyncSummary, error)

func (eng *Engine) forEachStore(
	ctx context.Context,
	job string,
	fn storeJob,
) ([]domain.SyncSummary, error) {
	summaries := make([]domain.SyncSummary, 0, len(eng.names))
	var errs []error

	for i, name := range eng.names {
		if ctx.Err() != nil {
			return summaries, ctx.Err()
		}

		start := eng.now()
		summary, err := fn(ctx, name, eng.clients[name])
		summary.Job = job
		summary.Store = name
		summary.Duration = eng.now().Sub(start)

		if err != nil {
			eng.log.Error("store job failed", "job", job, "store", name, "error", err)
			errs = append(errs, fmt.Errorf("store %s: %w", name, err))
		} else {
			eng.log.Info("store job finished",
				"job", job,
				"store", name,
				"fetched", summary.Fetched,
				"written", summary.Written,
				"pages", summary.Pages,
				"stopped_at", summary.StoppedAt,
			)
			summaries = append(summaries, summary)
		}

		// Stagger between stores to spread the request quota.
		if i < len(eng.names)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				return summaries, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	return summaries, errors.Join(errs...)
}

// syncStoreOrders walks ListOrders from the store's checkpoint and advances
// the checkpoint once every page has been written.
func (eng *Engine) syncStoreOrders(
	ctx context.Context,
	name string,
	c *mws.Client,
) (domain.SyncSummary, error) {
	var summary domain.SyncSummary

	after, err := eng.orderCursor(ctx, name)
	if err != nil {
		return summary, err
	}

	req := mws.ListOrdersRequest{
		LastUpdatedAfter: after,
		OrderStatuses:    eng.orderStatuses,
	}

	// The first response carries the upper bound of the whole query.
	var upper time.Time
	pager := mws.NewPager(
		func(ctx context.Context) (*mws.Page[mws.Order], error) {
			list, err := c.ListOrders(ctx, req)
			if err != nil {
				return nil, err
			}
			upper = list.LastUpdatedBefore
			return list.Page(), nil
		},
		func(ctx context.Context, token string) (*mws.Page[mws.Order], error) {
			list, err := c.ListOrdersByNextToken(ctx, token)
			if err != nil {
				return nil, err
			}
			return list.Page(), nil
		},
		mws.WithMaxPages(eng.maxPages),
		mws.WithPagerLogger(eng.log.With("store", name, "operation", "ListOrders")),
	)

	var latest time.Time
	for pager.HasMore() {
		orders, err := pager.Next(ctx)
		if err != nil {
			metrics.PagesFetchedTotal.
				WithLabelValues("ListOrders").
				Add(float64(pager.PagesUsed()))
			return summary, fmt.Errorf("listing orders: %w", err)
		}

		for i := range orders {
			if err := eng.writeOrder(ctx, name, c, &orders[i]); err != nil {
				return summary, err
			}
			summary.Written++
			if orders[i].LastUpdateDate.After(latest) {
				latest = orders[i].LastUpdateDate
			}
		}
		summary.Fetched += len(orders)
	}

	summary.Pages = pager.PagesUsed()
	metrics.PagesFetchedTotal.WithLabelValues("ListOrders").Add(float64(summary.Pages))

	cursor := upper
	summary.StoppedAt = mws.StoppedNoMoreResults
	if pager.Token() != "" {
		// Pages remain. Resume after the newest order written so far. This
		// relies on ListOrders returning LastUpdatedAfter windows in
		// ascending LastUpdateDate order; otherwise older orders on the
		// unfetched pages would be skipped.
		summary.StoppedAt = mws.StoppedMaxPages
		cursor = latest
		eng.log.Warn("order sync hit page cap",
			"store", name,
			"pages", summary.Pages,
			"max_pages", eng.maxPages,
		)
	}
	if cursor.IsZero() || cursor.Before(after) {
		cursor = after
	}

	cp := &domain.SyncCheckpoint{Store: name, Job: domain.JobOrderSync, Cursor: cursor}
	if err := eng.store.SaveCheckpoint(ctx, cp); err != nil {
		return summary, fmt.Errorf("saving checkpoint: %w", err)
	}
	summary.Cursor = cursor
	metrics.SyncCheckpointTimestamp.
		WithLabelValues(name, domain.JobOrderSync).
		Set(float64(cursor.Unix()))

	return summary, nil
}

// orderCursor returns the LastUpdatedAfter bound for the next order sync.
func (eng *Engine) orderCursor(ctx context.Context, name string) (time.Time, error) {
	cp, err := eng.store.GetCheckpoint(ctx, name, domain.JobOrderSync)
	if errors.Is(err, store.ErrNotFound) {
		return eng.now().Add(-eng.lookback).UTC(), nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading checkpoint: %w", err)
	}
	return cp.Cursor, nil
}

func (eng *Engine) writeOrder(
	ctx context.Context,
	name string,
	c *mws.Client,
	o *mws.Order,
) error {
	order := ToOrder(name, o)
	if err := eng.store.UpsertOrder(ctx, &order); err != nil {
		return fmt.Errorf("upserting order %s: %w", o.AmazonOrderID, err)
	}
	metrics.OrdersUpsertedTotal.Inc()

	if !eng.fetchItems {
		return nil
	}

	res, err := c.OrderItemPager(o.AmazonOrderID, mws.WithMaxPages(eng.maxPages)).All(ctx)
	if err != nil {
		return fmt.Errorf("listing items of %s: %w", o.AmazonOrderID, err)
	}
	metrics.PagesFetchedTotal.WithLabelValues("ListOrderItems").Add(float64(res.PagesUsed))

	items := ToOrderItems(name, o.AmazonOrderID, res.Items)
	if len(items) == 0 {
		return nil
	}
	if err := eng.store.UpsertOrderItems(ctx, items); err != nil {
		return fmt.Errorf("upserting items of %s: %w", o.AmazonOrderID, err)
	}
	metrics.OrderItemsUpsertedTotal.Add(float64(len(items)))
	return nil
}

// archiveStoreReports downloads every unacknowledged report, stores the body
// in the bucket and records it. Reports archived by an earlier run are only
// acknowledged.
func (eng *Engine) archiveStoreReports(
	ctx context.Context,
	name string,
	c *mws.Client,
) (domain.SyncSummary, error) {
	var summary domain.SyncSummary

	unacked := false
	filter := mws.ReportFilter{ReportTypes: eng.reportTypes, Acknowledged: &unacked}
	res, err := c.ReportPager(filter,
		mws.WithMaxPages(eng.maxPages),
		mws.WithPagerLogger(eng.log.With("store", name, "operation", "GetReportList")),
	).All(ctx)
	if err != nil {
		return summary, fmt.Errorf("listing reports: %w", err)
	}
	metrics.PagesFetchedTotal.WithLabelValues("GetReportList").Add(float64(res.PagesUsed))

	summary.Pages = res.PagesUsed
	summary.Fetched = len(res.Items)
	summary.StoppedAt = res.StoppedAt

	var (
		toAck []string
		errs  []error
	)
	for i := range res.Items {
		info := &res.Items[i]

		archived, err := eng.store.IsReportArchived(ctx, name, info.ReportID)
		if err != nil {
			return summary, fmt.Errorf("checking report %s: %w", info.ReportID, err)
		}
		if !archived {
			if err := eng.archiveReport(ctx, name, c, info); err != nil {
				eng.log.Error("report archive failed",
					"store", name,
					"report_id", info.ReportID,
					"error", err,
				)
				errs = append(errs, err)
				continue
			}
			summary.Written++
		}
		toAck = append(toAck, info.ReportID)
	}

	if eng.acknowledge {
		if err := eng.acknowledgeReports(ctx, name, c, toAck); err != nil {
			errs = append(errs, err)
		}
	}

	return summary, errors.Join(errs...)
}

func (eng *Engine) archiveReport(
	ctx context.Context,
	name string,
	c *mws.Client,
	info *mws.ReportInfo,
) error {
	body, err := c.GetReport(ctx, info.ReportID)
	if err != nil {
		return fmt.Errorf("downloading report %s: %w", info.ReportID, err)
	}

	key := archive.ObjectKey(
		eng.archivePrefix, name, info.ReportType, info.ReportID, info.AvailableDate,
	)
	obj, err := eng.archiver.PutReport(ctx, key, body)
	if err != nil {
		return fmt.Errorf("archiving report %s: %w", info.ReportID, err)
	}

	rec := &domain.ReportArchive{
		Store:           name,
		ReportID:        info.ReportID,
		ReportType:      info.ReportType,
		ReportRequestID: info.ReportRequestID,
		AvailableDate:   info.AvailableDate,
		Bucket:          eng.bucket,
		ObjectKey:       obj.Key,
		SizeBytes:       obj.Size,
		ContentMD5:      obj.ContentMD5,
	}
	if obj.Bucket != "" {
		rec.Bucket = obj.Bucket
	}
	if err := eng.store.RecordReportArchive(ctx, rec); err != nil {
		return fmt.Errorf("recording report %s: %w", info.ReportID, err)
	}
	metrics.ReportsArchivedTotal.Inc()
	return nil
}

func (eng *Engine) acknowledgeReports(
	ctx context.Context,
	name string,
	c *mws.Client,
	ids []string,
) error {
	for chunk := range slices.Chunk(ids, ackBatchSize) {
		if _, err := c.UpdateReportAcknowledgements(ctx, true, chunk...); err != nil {
			return fmt.Errorf("acknowledging reports: %w", err)
		}
		if err := eng.store.MarkReportsAcknowledged(ctx, name, chunk); err != nil {
			return fmt.Errorf("marking reports acknowledged: %w", err)
		}
	}
	return nil
}
