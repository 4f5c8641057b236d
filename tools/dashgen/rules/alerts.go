package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// mws-sync operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "mws-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mws-alerts",
					Rules: []Rule{
						alert("MwsSyncDown", `absent(up{job="mws-sync"})`, "2m", "critical",
							"mws-sync is down",
							"The mws-sync job has been absent for more than 2 minutes."),
						alert("MwsReadinessDown", `mws_probe_up{probe="readyz"} == 0`, "2m", "critical",
							"mws-sync readiness check is failing",
							"The readiness probe has been reporting not-ready for more than 2 minutes."),
						alert("MwsHighErrorRate", `mws:http_errors:rate5m / mws:http_requests:rate5m > 0.05`,
							"5m", "warning",
							"High HTTP error rate on mws-sync",
							"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
						alert("MwsThrottled", `mws:api_throttled:rate5m > 0.1`, "10m", "warning",
							"MWS calls are being throttled",
							"A throttle group has been rejected by the service for more than 10 minutes."),
						alert("MwsQuotaLow", `mws_quota_remaining / mws_quota_max < 0.1`, "15m", "warning",
							"MWS request quota is nearly exhausted",
							"A throttle group has had less than 10% of its quota left for 15 minutes."),
						alert("MwsJobFailing", `mws:job_failures:rate5m > 0`, "5m", "warning",
							"A sync job is failing",
							"Scheduled sync runs have been failing for more than 5 minutes."),
						alert("MwsOrderSyncStale",
							`time() - mws_job_last_success_timestamp{sync_job="order_sync"} > 3 * 3600`,
							"10m", "critical",
							"Order sync has not succeeded recently",
							"No successful order sync in the last 3 hours."),
						alert("MwsNotificationFailures", `increase(mws_notification_failures_total[5m]) > 0`,
							"1m", "warning",
							"Notification delivery failures detected",
							"One or more job notifications (Discord webhooks) have failed to send."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
