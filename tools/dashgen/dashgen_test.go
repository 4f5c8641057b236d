package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/mws-toolkit/tools/dashgen/dashboards"
	"github.com/donaldgifford/mws-toolkit/tools/dashgen/rules"
	"github.com/donaldgifford/mws-toolkit/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "mws-sync-overview", *dash.Uid)
	require.NotNil(t, dash.Title)
	assert.Equal(t, "MWS Sync Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 20, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "mws-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mws-recording", group.Name)
	require.Len(t, group.Rules, 7)
	for _, rule := range group.Rules {
		assert.True(t, KnownMetrics[rule.Record], "recording rule %s not in KnownMetrics", rule.Record)
	}

	res := validate.Rules(cr, KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "mws-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	require.Len(t, group.Rules, 8)
	for _, rule := range group.Rules {
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	res := validate.Rules(cr, KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "known counter", expr: `rate(mws_api_calls_total[5m])`},
		{name: "histogram bucket", expr: `histogram_quantile(0.9, sum(rate(mws_job_duration_seconds_bucket[5m])) by (le))`},
		{name: "recording rule", expr: `mws:http_errors:rate5m > 0`},
		{name: "unknown metric", expr: `rate(orders_missing_total[5m])`, wantErr: true},
		{name: "syntax error", expr: `rate(mws_api_calls_total[5m]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validate.Expr(tt.expr, KnownMetrics)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRules_Duplicates(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "dup",
		Rules: []rules.Rule{
			{Alert: "A", Expr: `up == 0`},
			{Alert: "A", Expr: `up == 0`},
			{Expr: `up == 0`},
		},
	}}}}
	res := validate.Rules(cr, KnownMetrics)
	assert.Len(t, res.Errors, 2)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	for _, path := range []string{
		filepath.Join("grafana", "data", "mws-sync-overview.json"),
		filepath.Join("prometheus", "mws-recording-rules.yaml"),
		filepath.Join("prometheus", "mws-alerts.yaml"),
	} {
		data, err := os.ReadFile(filepath.Join(dir, path))
		require.NoError(t, err, path)
		assert.NotEmpty(t, data)
	}

	alerts, err := os.ReadFile(filepath.Join(dir, "prometheus", "mws-alerts.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(alerts), generatedHeader)
	assert.Contains(t, string(alerts), "MwsOrderSyncStale")
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, run(Config{OutputDir: dir, RulesEnabled: true}, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
