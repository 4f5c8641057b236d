package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// OrdersUpsertedRate returns a timeseries panel showing orders written.
func OrdersUpsertedRate() *timeseries.PanelBuilder {
	return Timeseries("Orders Upserted", "Orders written per second", 8).
		WithTarget(PromQuery(`mws:orders_upserted:rate5m`, "orders/s", "A")).
		WithTarget(PromQuery(
			`rate(mws_order_items_upserted_total{`+Job+`}[5m])`,
			"items/s", "B",
		)).
		Unit("ops").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// JobDuration returns the p95 duration of each scheduled job.
func JobDuration() *timeseries.PanelBuilder {
	return Timeseries("Job Duration (p95)", "95th percentile scheduled job duration", 8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(mws_job_duration_seconds_bucket{`+Job+`}[1h])) by (le, sync_job))`,
			"{{sync_job}}", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// JobFailures returns a stat panel with failed job runs in the past 24h.
func JobFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Job Failures (24h)").
		Description("Failed scheduled job runs in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(mws_job_failures_total{`+Job+`}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// CheckpointAge returns how far each store's sync checkpoint trails now.
func CheckpointAge() *timeseries.PanelBuilder {
	return Timeseries("Checkpoint Age", "Time since the last sync checkpoint per store", TSWidth).
		WithTarget(PromQuery(
			`time() - mws_sync_checkpoint_timestamp{`+Job+`}`,
			"{{store}} {{sync_job}}", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(3600, 4*3600)).
		ColorScheme(ColorSchemeThresholds())
}

// ReportsArchived returns the rate of archived reports and bytes.
func ReportsArchived() *timeseries.PanelBuilder {
	return Timeseries("Reports Archived", "Reports copied to the archive bucket", TSWidth).
		WithTarget(PromQuery(
			`increase(mws_reports_archived_total{`+Job+`}[1h])`,
			"reports/h", "A",
		)).
		WithTarget(PromQuery(
			`increase(mws_report_archive_bytes_total{`+Job+`}[1h])`,
			"bytes/h", "B",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
