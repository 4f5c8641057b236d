package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate returns a timeseries panel showing notifications sent.
func NotificationsRate() *timeseries.PanelBuilder {
	return Timeseries("Notifications Sent", "Job notifications sent per hour", 8).
		WithTarget(PromQuery(
			`increase(mws_notifications_sent_total{`+Job+`}[1h])`,
			"sent/h", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// NotificationLatency returns a timeseries panel showing the p95 notification
// webhook latency.
func NotificationLatency() *timeseries.PanelBuilder {
	return Timeseries("Notification Latency (p95)", "95th percentile Discord webhook latency", 8).
		WithTarget(PromQuery(`mws:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic())
}

// NotificationFailures returns a stat panel showing notification failures
// in the past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (24h)").
		Description("Failed notification deliveries in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`increase(mws_notification_failures_total{`+Job+`}[24h])`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
