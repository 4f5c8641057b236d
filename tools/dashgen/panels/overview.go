package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func probeStat(title, probe string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(probe + " probe status (1 = ok, 0 = failing)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`mws_probe_up{probe="`+probe+`"}`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat returns a stat panel showing the health check status.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz", "healthz")
}

// ReadyzStat returns a stat panel showing the readiness check status.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz", "readyz")
}

// QuotaGauge shows the lowest remaining request quota across throttle
// groups, as reported by the service.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Lowest Quota %").
		Description("Smallest remaining quota across throttle groups").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`min(mws_quota_remaining / mws_quota_max) * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(20)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - process_start_time_seconds{`+Job+`}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
