package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A pool_max_conns setting in connString overrides the default pool size.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

// UpsertOrder inserts or updates an order by store and order ID. An update
// carrying an older LastUpdateDate than the stored row is ignored.
func (s *PostgresStore) UpsertOrder(ctx context.Context, o *domain.Order) error {
	args := pgx.NamedArgs{
		"store":               o.Store,
		"amazon_order_id":     o.AmazonOrderID,
		"seller_order_id":     o.SellerOrderID,
		"marketplace_id":      o.MarketplaceID,
		"order_status":        o.OrderStatus,
		"fulfillment_channel": o.FulfillmentChannel,
		"sales_channel":       o.SalesChannel,
		"ship_service_level":  o.ShipServiceLevel,
		"order_total":         o.OrderTotal,
		"currency":            o.Currency,
		"items_shipped":       o.ItemsShipped,
		"items_unshipped":     o.ItemsUnshipped,
		"payment_method":      o.PaymentMethod,
		"buyer_name":          o.BuyerName,
		"buyer_email":         o.BuyerEmail,
		"ship_city":           o.ShipCity,
		"ship_region":         o.ShipRegion,
		"ship_postal_code":    o.ShipPostalCode,
		"ship_country_code":   o.ShipCountryCode,
		"is_prime":            o.IsPrime,
		"is_business_order":   o.IsBusinessOrder,
		"purchase_date":       o.PurchaseDate,
		"last_update_date":    o.LastUpdateDate,
	}

	err := s.pool.QueryRow(ctx, queryUpsertOrder, args).Scan(&o.FirstSeenAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil // stored row is newer
	}
	if err != nil {
		return fmt.Errorf("upserting order %s: %w", o.AmazonOrderID, err)
	}
	return nil
}

// UpsertOrderItems writes order lines in a single batch.
func (s *PostgresStore) UpsertOrderItems(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range items {
		it := &items[i]
		batch.Queue(queryUpsertOrderItem,
			it.Store, it.AmazonOrderID, it.OrderItemID, it.ASIN, it.SellerSKU, it.Title,
			it.QuantityOrdered, it.QuantityShipped, it.ItemPrice, it.ItemTax,
			it.ShippingPrice, it.PromotionDiscount, it.Currency,
		)
	}

	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upserting order items: %w", err)
	}
	return nil
}

// GetOrder retrieves one order.
func (s *PostgresStore) GetOrder(
	ctx context.Context,
	store, amazonOrderID string,
) (*domain.Order, error) {
	o := &domain.Order{}
	err := scanOrder(s.pool.QueryRow(ctx, queryGetOrder, store, amazonOrderID), o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", amazonOrderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return o, nil
}

// ListOrders queries orders with optional filters, returning results and total count.
func (s *PostgresStore) ListOrders(
	ctx context.Context,
	q *OrderQuery,
) ([]domain.Order, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, total, rows.Err()
}

// ListOrderItems returns the stored lines of one order.
func (s *PostgresStore) ListOrderItems(
	ctx context.Context,
	store, amazonOrderID string,
) ([]domain.OrderItem, error) {
	rows, err := s.pool.Query(ctx, queryListOrderItems, store, amazonOrderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(
			&it.Store, &it.AmazonOrderID, &it.OrderItemID, &it.ASIN, &it.SellerSKU, &it.Title,
			&it.QuantityOrdered, &it.QuantityShipped, &it.ItemPrice, &it.ItemTax,
			&it.ShippingPrice, &it.PromotionDiscount, &it.Currency, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetCheckpoint returns the saved position of a job, or ErrNotFound.
func (s *PostgresStore) GetCheckpoint(
	ctx context.Context,
	store, job string,
) (*domain.SyncCheckpoint, error) {
	cp := &domain.SyncCheckpoint{}
	err := s.pool.QueryRow(ctx, queryGetCheckpoint, store, job).Scan(
		&cp.Store, &cp.Job, &cp.Cursor, &cp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting checkpoint: %w", err)
	}
	return cp, nil
}

// SaveCheckpoint stores the position of a job.
func (s *PostgresStore) SaveCheckpoint(ctx context.Context, cp *domain.SyncCheckpoint) error {
	err := s.pool.QueryRow(ctx, querySaveCheckpoint, cp.Store, cp.Job, cp.Cursor).
		Scan(&cp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}
	return nil
}

// RecordReportArchive stores or refreshes the archive record of a report.
func (s *PostgresStore) RecordReportArchive(ctx context.Context, a *domain.ReportArchive) error {
	err := s.pool.QueryRow(ctx, queryRecordReportArchive,
		a.Store, a.ReportID, a.ReportType, a.ReportRequestID, a.AvailableDate,
		a.Bucket, a.ObjectKey, a.SizeBytes, a.ContentMD5, a.Acknowledged,
	).Scan(&a.ID, &a.ArchivedAt)
	if err != nil {
		return fmt.Errorf("recording report archive: %w", err)
	}
	return nil
}

// IsReportArchived reports whether a report was already archived.
func (s *PostgresStore) IsReportArchived(
	ctx context.Context,
	store, reportID string,
) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryIsReportArchived, store, reportID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking report archive: %w", err)
	}
	return exists, nil
}

// MarkReportsAcknowledged flags archived reports as acknowledged upstream.
func (s *PostgresStore) MarkReportsAcknowledged(
	ctx context.Context,
	store string,
	reportIDs []string,
) error {
	if len(reportIDs) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, queryMarkReportsAcknowledged, store, reportIDs); err != nil {
		return fmt.Errorf("marking reports acknowledged: %w", err)
	}
	return nil
}

// ListReportArchives returns archived reports, newest first, and the total count.
func (s *PostgresStore) ListReportArchives(
	ctx context.Context,
	q *ReportArchiveQuery,
) ([]domain.ReportArchive, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting report archives: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying report archives: %w", err)
	}
	defer rows.Close()

	var archives []domain.ReportArchive
	for rows.Next() {
		var a domain.ReportArchive
		if err := rows.Scan(
			&a.ID, &a.Store, &a.ReportID, &a.ReportType, &a.ReportRequestID,
			&a.AvailableDate, &a.Bucket, &a.ObjectKey, &a.SizeBytes, &a.ContentMD5,
			&a.Acknowledged, &a.ArchivedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning report archive: %w", err)
		}
		archives = append(archives, a)
	}
	return archives, total, rows.Err()
}

// GetSystemState returns aggregate counts over orders, reports,
// checkpoints and job runs.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, querySystemCounts).Scan(
		&st.OrdersTotal, &st.OrdersUnshipped, &st.OrderItemsTotal,
		&st.ReportsArchived, &st.ReportsUnacknowledged, &st.ArchivedBytes,
		&st.Checkpoints,
	)
	if err != nil {
		return nil, fmt.Errorf("counting system state: %w", err)
	}

	if st.OrdersByStore, err = s.groupCounts(ctx, queryOrdersByStore); err != nil {
		return nil, fmt.Errorf("counting orders by store: %w", err)
	}
	if st.JobRunsByStatus, err = s.groupCounts(ctx, queryJobRunsByStatus); err != nil {
		return nil, fmt.Errorf("counting job runs by status: %w", err)
	}
	return st, nil
}

// groupCounts scans (key, count) rows into a map.
func (s *PostgresStore) groupCounts(ctx context.Context, query string) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

// InsertJobRun creates a new job_runs row with status 'running' and returns its ID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanOrder(row scannable, o *domain.Order) error {
	return row.Scan(
		&o.Store, &o.AmazonOrderID, &o.SellerOrderID, &o.MarketplaceID,
		&o.OrderStatus, &o.FulfillmentChannel, &o.SalesChannel, &o.ShipServiceLevel,
		&o.OrderTotal, &o.Currency, &o.ItemsShipped, &o.ItemsUnshipped, &o.PaymentMethod,
		&o.BuyerName, &o.BuyerEmail, &o.ShipCity, &o.ShipRegion, &o.ShipPostalCode,
		&o.ShipCountryCode, &o.IsPrime, &o.IsBusinessOrder,
		&o.PurchaseDate, &o.LastUpdateDate, &o.FirstSeenAt, &o.UpdatedAt,
	)
}
