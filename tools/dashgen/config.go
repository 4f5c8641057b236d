package main

import "errors"

// KnownMetrics is the set of metric names exported by mws-sync plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"mws_http_request_duration_seconds": true,
	"mws_http_requests_total":           true,
	"mws_probe_up":                      true,

	// MWS API metrics.
	"mws_api_calls_total":           true,
	"mws_api_call_duration_seconds": true,
	"mws_api_throttled_total":       true,
	"mws_quota_remaining":           true,
	"mws_quota_max":                 true,
	"mws_pages_fetched_total":       true,

	// Sync metrics.
	"mws_orders_upserted_total":      true,
	"mws_order_items_upserted_total": true,
	"mws_reports_archived_total":     true,
	"mws_report_archive_bytes_total": true,
	"mws_sync_checkpoint_timestamp":  true,

	// Job metrics.
	"mws_job_duration_seconds":                 true,
	"mws_job_failures_total":                   true,
	"mws_job_last_success_timestamp":           true,
	"mws_scheduler_next_run_timestamp_seconds": true,

	// Notification metrics.
	"mws_notifications_sent_total":      true,
	"mws_notification_failures_total":   true,
	"mws_notification_duration_seconds": true,

	// Recording rules.
	"mws:http_requests:rate5m":         true,
	"mws:http_errors:rate5m":           true,
	"mws:api_calls:rate5m":             true,
	"mws:api_throttled:rate5m":         true,
	"mws:orders_upserted:rate5m":       true,
	"mws:job_failures:rate5m":          true,
	"mws:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
