package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "mws-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mws-recording",
					Rules: []Rule{
						{
							Record: "mws:http_requests:rate5m",
							Expr:   `sum(rate(mws_http_requests_total[5m]))`,
						},
						{
							Record: "mws:http_errors:rate5m",
							Expr:   `sum(rate(mws_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "mws:api_calls:rate5m",
							Expr:   `sum by (action) (rate(mws_api_calls_total[5m]))`,
						},
						{
							Record: "mws:api_throttled:rate5m",
							Expr:   `sum by (group) (rate(mws_api_throttled_total[5m]))`,
						},
						{
							Record: "mws:orders_upserted:rate5m",
							Expr:   `rate(mws_orders_upserted_total[5m])`,
						},
						{
							Record: "mws:job_failures:rate5m",
							Expr:   `sum by (sync_job) (rate(mws_job_failures_total[5m]))`,
						},
						{
							Record: "mws:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(mws_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
