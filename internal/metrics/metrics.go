// Package metrics defines Prometheus metrics for the MWS client and the sync
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mws"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	ProbeUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "probe_up",
		Help:      "Result of the last health probe (1 = ok, 0 = failing).",
	}, []string{"probe"})
)

// API call metrics.
var (
	APICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_calls_total",
		Help:      "Total number of MWS API calls by action and HTTP status.",
	}, []string{"action", "group", "status"})

	APICallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_call_duration_seconds",
		Help:      "Duration of MWS API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "group"})

	APIThrottledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_throttled_total",
		Help:      "Total number of throttled MWS responses.",
	}, []string{"action", "group"})

	QuotaRemaining = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quota_remaining",
		Help:      "Requests left in the current quota window, as reported by the service.",
	}, []string{"group"})

	QuotaMax = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quota_max",
		Help:      "Maximum requests per quota window, as reported by the service.",
	}, []string{"group"})

	PagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_fetched_total",
		Help:      "Total number of list pages fetched by sync jobs.",
	}, []string{"operation"})
)

// Sync metrics.
var (
	OrdersUpsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_upserted_total",
		Help:      "Total number of orders written by the order sync.",
	})

	OrderItemsUpsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_items_upserted_total",
		Help:      "Total number of order items written by the order sync.",
	})

	ReportsArchivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_archived_total",
		Help:      "Total number of reports copied to the archive bucket.",
	})

	ReportArchiveBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_archive_bytes_total",
		Help:      "Total bytes of report bodies written to the archive bucket.",
	})

	SyncCheckpointTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sync_checkpoint_timestamp",
		Help:      "Unix time of the latest sync checkpoint per store and job.",
	}, []string{"store", "sync_job"})
)

// Job metrics.
var (
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of scheduled jobs in seconds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	}, []string{"sync_job"})

	JobFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_failures_total",
		Help:      "Total number of failed job runs.",
	}, []string{"sync_job"})

	JobLastSuccessTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "job_last_success_timestamp",
		Help:      "Unix time of the last successful run per job.",
	}, []string{"sync_job"})

	SchedulerNextRunTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_run_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled run per job.",
	}, []string{"sync_job"})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications sent.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
