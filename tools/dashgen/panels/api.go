package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing MWS calls per action.
func APICallsRate() *timeseries.PanelBuilder {
	return Timeseries("API Calls Rate", "MWS calls per second by action", 8).
		WithTarget(PromQuery(`mws:api_calls:rate5m`, "{{action}}", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ThrottledRate returns a timeseries panel showing throttled replies per
// throttle group.
func ThrottledRate() *timeseries.PanelBuilder {
	return Timeseries("Throttled", "Throttled replies per second by group", 8).
		WithTarget(PromQuery(`mws:api_throttled:rate5m`, "{{group}}", "A")).
		Unit("reqps").
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemePaletteClassic())
}

// QuotaRemaining returns a timeseries panel showing the server-reported
// quota per throttle group.
func QuotaRemaining() *timeseries.PanelBuilder {
	return Timeseries("Quota Remaining", "Requests left in the current quota window", 8).
		WithTarget(PromQuery(`mws_quota_remaining{`+Job+`}`, "{{group}}", "A")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// APILatency returns the p95 MWS call latency per action.
func APILatency() *timeseries.PanelBuilder {
	return Timeseries("API Latency (p95)", "95th percentile MWS call duration", TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(mws_api_call_duration_seconds_bucket{`+Job+`}[5m])) by (le, action))`,
			"{{action}}", "A",
		)).
		Unit("s").
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(2, 10)).
		ColorScheme(ColorSchemePaletteClassic())
}

// PagesFetched returns the rate of result pages fetched per operation.
func PagesFetched() *timeseries.PanelBuilder {
	return Timeseries("Pages Fetched", "Result pages fetched per second", TSWidth).
		WithTarget(PromQuery(
			`sum by (operation) (rate(mws_pages_fetched_total{`+Job+`}[5m]))`,
			"{{operation}}", "A",
		)).
		Unit("reqps").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
