package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return Timeseries("Request Rate", "HTTP requests per second", TSWidth).
		WithTarget(PromQuery(`mws:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := Timeseries("Latency Percentiles", "HTTP request duration percentiles", TSWidth)
	for i, q := range []string{"0.50", "0.95", "0.99"} {
		b.WithTarget(PromQuery(
			`histogram_quantile(`+q+`, sum(rate(mws_http_request_duration_seconds_bucket{`+Job+`}[5m])) by (le))`,
			"p"+q[2:],
			string(rune('A'+i)),
		))
	}
	return b.
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return Timeseries("Error Rate %", "HTTP 5xx error rate as percentage of total requests", TSWidth).
		WithTarget(PromQuery(
			`mws:http_errors:rate5m / mws:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
