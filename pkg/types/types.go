// Package domain defines the records the sync service persists and serves.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job names used by the scheduler and the job_runs table.
const (
	JobOrderSync     = "order_sync"
	JobReportArchive = "report_archive"
)

// Job run statuses.
const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
	JobStatusCrashed   = "crashed"
)

// Order is the stored copy of an order header for one store.
type Order struct {
	Store              string `json:"store"                        db:"store"`
	AmazonOrderID      string `json:"amazon_order_id"              db:"amazon_order_id"`
	SellerOrderID      string `json:"seller_order_id,omitempty"    db:"seller_order_id"`
	MarketplaceID      string `json:"marketplace_id"               db:"marketplace_id"`
	OrderStatus        string `json:"order_status"                 db:"order_status"`
	FulfillmentChannel string `json:"fulfillment_channel"          db:"fulfillment_channel"`
	SalesChannel       string `json:"sales_channel,omitempty"      db:"sales_channel"`
	ShipServiceLevel   string `json:"ship_service_level,omitempty" db:"ship_service_level"`

	// Totals
	OrderTotal     decimal.Decimal `json:"order_total"              db:"order_total"`
	Currency       string          `json:"currency"                 db:"currency"`
	ItemsShipped   int             `json:"items_shipped"            db:"items_shipped"`
	ItemsUnshipped int             `json:"items_unshipped"          db:"items_unshipped"`
	PaymentMethod  string          `json:"payment_method,omitempty" db:"payment_method"`

	// Buyer and destination
	BuyerName       string `json:"buyer_name,omitempty"        db:"buyer_name"`
	BuyerEmail      string `json:"buyer_email,omitempty"       db:"buyer_email"`
	ShipCity        string `json:"ship_city,omitempty"         db:"ship_city"`
	ShipRegion      string `json:"ship_region,omitempty"       db:"ship_region"`
	ShipPostalCode  string `json:"ship_postal_code,omitempty"  db:"ship_postal_code"`
	ShipCountryCode string `json:"ship_country_code,omitempty" db:"ship_country_code"`

	IsPrime         bool `json:"is_prime"          db:"is_prime"`
	IsBusinessOrder bool `json:"is_business_order" db:"is_business_order"`

	// Timestamps
	PurchaseDate   time.Time `json:"purchase_date"    db:"purchase_date"`
	LastUpdateDate time.Time `json:"last_update_date" db:"last_update_date"`
	FirstSeenAt    time.Time `json:"first_seen_at"    db:"first_seen_at"`
	UpdatedAt      time.Time `json:"updated_at"       db:"updated_at"`
}

// OrderItem is one stored order line.
type OrderItem struct {
	Store             string          `json:"store"              db:"store"`
	AmazonOrderID     string          `json:"amazon_order_id"    db:"amazon_order_id"`
	OrderItemID       string          `json:"order_item_id"      db:"order_item_id"`
	ASIN              string          `json:"asin"               db:"asin"`
	SellerSKU         string          `json:"seller_sku"         db:"seller_sku"`
	Title             string          `json:"title"              db:"title"`
	QuantityOrdered   int             `json:"quantity_ordered"   db:"quantity_ordered"`
	QuantityShipped   int             `json:"quantity_shipped"   db:"quantity_shipped"`
	ItemPrice         decimal.Decimal `json:"item_price"         db:"item_price"`
	ItemTax           decimal.Decimal `json:"item_tax"           db:"item_tax"`
	ShippingPrice     decimal.Decimal `json:"shipping_price"     db:"shipping_price"`
	PromotionDiscount decimal.Decimal `json:"promotion_discount" db:"promotion_discount"`
	Currency          string          `json:"currency"           db:"currency"`
	UpdatedAt         time.Time       `json:"updated_at"         db:"updated_at"`
}

// SyncCheckpoint is the position a sync job resumes from.
type SyncCheckpoint struct {
	Store     string    `json:"store"      db:"store"`
	Job       string    `json:"job"        db:"job"`
	Cursor    time.Time `json:"cursor"     db:"cursor_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// ReportArchive records a report body copied to object storage.
type ReportArchive struct {
	ID              string    `json:"id"                          db:"id"`
	Store           string    `json:"store"                       db:"store"`
	ReportID        string    `json:"report_id"                   db:"report_id"`
	ReportType      string    `json:"report_type"                 db:"report_type"`
	ReportRequestID string    `json:"report_request_id,omitempty" db:"report_request_id"`
	AvailableDate   time.Time `json:"available_date"              db:"available_date"`
	Bucket          string    `json:"bucket"                      db:"bucket"`
	ObjectKey       string    `json:"object_key"                  db:"object_key"`
	SizeBytes       int64     `json:"size_bytes"                  db:"size_bytes"`
	ContentMD5      string    `json:"content_md5,omitempty"       db:"content_md5"`
	Acknowledged    bool      `json:"acknowledged"                db:"acknowledged"`
	ArchivedAt      time.Time `json:"archived_at"                 db:"archived_at"`
}

// SyncSummary describes the outcome of one sync job run.
type SyncSummary struct {
	Job       string        `json:"job"`
	Store     string        `json:"store"`
	Fetched   int           `json:"fetched"`
	Written   int           `json:"written"`
	Pages     int           `json:"pages"`
	Cursor    time.Time     `json:"cursor,omitzero"`
	Duration  time.Duration `json:"duration"`
	StoppedAt string        `json:"stopped_at,omitempty"`
}

// SystemState is a snapshot of aggregate counts across the datastore.
type SystemState struct {
	OrdersTotal           int            `json:"orders_total"`
	OrdersByStore         map[string]int `json:"orders_by_store"`
	OrdersUnshipped       int            `json:"orders_unshipped"`
	OrderItemsTotal       int            `json:"order_items_total"`
	ReportsArchived       int            `json:"reports_archived"`
	ReportsUnacknowledged int            `json:"reports_unacknowledged"`
	ArchivedBytes         int64          `json:"archived_bytes"`
	Checkpoints           int            `json:"checkpoints"`
	JobRunsByStatus       map[string]int `json:"job_runs_by_status"`
}
