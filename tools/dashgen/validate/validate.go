// Package validate checks generated dashboards and rules for PromQL that
// does not parse or references metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/sale-prospector/tools/dashgen/rules"
)

// histogramSuffixes are stripped before looking a series up in the known set.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings
// are printed.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether there were no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Merge appends other's problems to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a PromQL expression and reports every metric it selects that
// is not in known.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("%s: parsing %q: %w", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Errorf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})

	return res
}

func isKnown(name string, known map[string]bool) bool {
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

// Rules validates every expression in a PrometheusRule and requires alerts
// to carry a severity.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			where := cr.Metadata.Name + "/" + name
			res.Merge(Expr(where, r.Expr, known))

			if r.Record != "" && !known[r.Record] {
				res.Warnings = append(res.Warnings, where+": recording rule is not in the known metric set")
			}
			if r.Alert != "" && r.Labels["severity"] == "" {
				res.Errors = append(res.Errors, fmt.Errorf("%s: alert has no severity label", where))
			}
		}
	}
	return res
}

// dashboardDoc is the subset of the Grafana dashboard JSON model needed to
// find query expressions.
type dashboardDoc struct {
	Panels []panelDoc `json:"panels"`
}

type panelDoc struct {
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Panels  []panelDoc  `json:"panels"`
	Targets []targetDoc `json:"targets"`
}

type targetDoc struct {
	RefID string `json:"refId"`
	Expr  string `json:"expr"`
}

// DashboardJSON validates every Prometheus target in a marshaled dashboard,
// descending into rows. Panels without targets produce a warning.
func DashboardJSON(data []byte, known map[string]bool) Result {
	var (
		res Result
		doc dashboardDoc
	)
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("decoding dashboard: %w", err))
		return res
	}

	var walk func([]panelDoc)
	walk = func(panels []panelDoc) {
		for _, p := range panels {
			if p.Type == "row" {
				walk(p.Panels)
				continue
			}
			if len(p.Targets) == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
			}
			for _, t := range p.Targets {
				res.Merge(Expr(fmt.Sprintf("panel %q target %s", p.Title, t.RefID), t.Expr, known))
			}
		}
	}
	walk(doc.Panels)

	return res
}
