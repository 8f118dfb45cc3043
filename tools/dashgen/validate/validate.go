// Package validate checks generated dashboards and rules before they are
// written: every PromQL expression must parse and may only reference
// known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/shopstore/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported but tolerated.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Metrics parses expr and returns the metric names it selects, sorted.
func Metrics(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[vs.Name] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *Result) checkExpr(where, expr string, known map[string]bool) {
	if expr == "" {
		r.errorf("%s: empty expression", where)
		return
	}
	names, err := Metrics(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL: %v", where, err)
		return
	}
	for _, name := range names {
		if !known[name] {
			r.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// Dashboard checks every query target in dash. dash is any value that
// encodes to Grafana dashboard JSON.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("encoding dashboard: %v", err)
		return res
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	if uid, _ := doc["uid"].(string); uid == "" {
		res.errorf("dashboard has no uid")
	}

	titles := map[string]bool{}
	for _, p := range panelsOf(doc) {
		title, _ := p["title"].(string)
		if p["type"] == "row" {
			continue
		}
		if title == "" {
			res.errorf("panel without title")
		} else if titles[title] {
			res.warnf("duplicate panel title %q", title)
		}
		titles[title] = true

		targets, _ := p["targets"].([]any)
		if len(targets) == 0 {
			res.errorf("panel %q: no query targets", title)
		}
		for _, t := range targets {
			tm, _ := t.(map[string]any)
			expr, _ := tm["expr"].(string)
			ref, _ := tm["refId"].(string)
			res.checkExpr(fmt.Sprintf("panel %q target %s", title, ref), expr, known)
		}
	}
	return res
}

// panelsOf flattens top-level panels and the panels nested in rows.
func panelsOf(doc map[string]any) []map[string]any {
	var out []map[string]any
	var walk func(list []any)
	walk = func(list []any) {
		for _, item := range list {
			p, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, p)
			if nested, ok := p["panels"].([]any); ok {
				walk(nested)
			}
		}
	}
	top, _ := doc["panels"].([]any)
	walk(top)
	return out
}

// Rules checks a PrometheusRule resource. Recording rule names are
// accepted as known metrics for later rules in the same resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	if cr.Metadata.Name == "" {
		res.errorf("rule resource has no name")
	}
	if len(cr.Spec.Groups) == 0 {
		res.errorf("%s: no rule groups", cr.Metadata.Name)
	}

	available := make(map[string]bool, len(known))
	for k, v := range known {
		available[k] = v
	}

	names := map[string]bool{}
	for _, g := range cr.Spec.Groups {
		if len(g.Rules) == 0 {
			res.warnf("group %q has no rules", g.Name)
		}
		for _, rule := range g.Rules {
			name := rule.Name()
			switch {
			case name == "":
				res.errorf("group %q: rule without record or alert name", g.Name)
				continue
			case rule.Record != "" && rule.Alert != "":
				res.errorf("group %q: rule %q sets both record and alert", g.Name, name)
			case names[name] && !rule.IsAlert():
				res.errorf("group %q: duplicate recording rule %q", g.Name, name)
			}
			names[name] = true

			res.checkExpr(fmt.Sprintf("group %q rule %q", g.Name, name), rule.Expr, available)

			if rule.IsAlert() {
				if rule.Labels["severity"] == "" {
					res.warnf("alert %q has no severity label", name)
				}
				if rule.Annotations["summary"] == "" {
					res.warnf("alert %q has no summary annotation", name)
				}
			} else {
				if !known[rule.Record] {
					res.warnf("recording rule %q is not listed as a known metric", rule.Record)
				}
				available[rule.Record] = true
			}
		}
	}
	return res
}
