// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and may only reference known metrics.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/mws-toolkit/tools/dashgen/rules"
)

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Expr parses expr and checks its metric references against known.
func Expr(expr string, known map[string]bool) error {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !metricKnown(vs.Name, known) {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})
	if len(unknown) > 0 {
		return fmt.Errorf("unknown metrics in %q: %s", expr, strings.Join(unknown, ", "))
	}
	return nil
}

func metricKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every Prometheus target of every panel.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			checkPanel(&res, p.Panel, known)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				checkPanel(&res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "<untitled>"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
	}

	for _, t := range p.Targets {
		var expr string
		switch q := t.(type) {
		case prometheus.Dataquery:
			expr = q.Expr
		case *prometheus.Dataquery:
			expr = q.Expr
		default:
			res.errorf("panel %q: unexpected target type %T", title, t)
			continue
		}
		if err := Expr(expr, known); err != nil {
			res.errorf("panel %q: %v", title, err)
		}
	}
}

// Rules validates the expressions of a PrometheusRule and checks that
// record and alert names are unique.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	seen := make(map[string]bool)
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record + r.Alert
			switch {
			case name == "":
				res.errorf("group %s: rule without record or alert name", g.Name)
			case r.Record != "" && r.Alert != "":
				res.errorf("group %s: rule %s sets both record and alert", g.Name, name)
			case seen[name]:
				res.errorf("group %s: duplicate rule %s", g.Name, name)
			}
			seen[name] = true

			if err := Expr(r.Expr, known); err != nil {
				res.errorf("rule %s: %v", name, err)
			}
		}
	}
	return res
}
