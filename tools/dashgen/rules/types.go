// Package rules generates the Prometheus recording and alert rules for the
// shopstore metrics as Prometheus Operator PrometheusRule resources.
package rules

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"
	ruleLabel  = "shopstore"
)

// PrometheusRule is a Prometheus Operator custom resource.
type PrometheusRule struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata holds the resource name and labels.
type Metadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// Spec holds the rule groups.
type Spec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named collection of recording or alerting rules.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is a single recording (Record set) or alerting (Alert set) rule.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// IsAlert reports whether r is an alerting rule.
func (r Rule) IsAlert() bool { return r.Alert != "" }

// Name returns the record or alert name.
func (r Rule) Name() string {
	if r.IsAlert() {
		return r.Alert
	}
	return r.Record
}

// newPrometheusRule wraps groups in a labelled resource named name.
func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: Metadata{
			Name:   name,
			Labels: map[string]string{"app.kubernetes.io/part-of": ruleLabel, "prometheus": "k8s"},
		},
		Spec: Spec{Groups: groups},
	}
}

// Rules returns every rule across all groups, in declaration order.
func (p PrometheusRule) Rules() []Rule {
	var out []Rule
	for _, g := range p.Spec.Groups {
		out = append(out, g.Rules...)
	}
	return out
}
