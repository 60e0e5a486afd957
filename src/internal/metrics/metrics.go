package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the counters for the evaluator and aggregator read
// paths. It owns a private registry so tests can construct collectors
// freely without duplicate-registration panics.
type Collector struct {
	registry *prometheus.Registry

	incentiveEvaluations prometheus.Counter
	incentiveRuleMatches prometheus.Counter
	incentiveRuleSkips   *prometheus.CounterVec
	closureBreakdowns    prometheus.Counter
	groupAggregations    prometheus.Counter
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		incentiveEvaluations: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "incentive_evaluations_total",
			Help: "Total number of incentive rule set evaluations",
		}),
		incentiveRuleMatches: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "incentive_rule_matches_total",
			Help: "Total number of incentive rules that matched",
		}),
		incentiveRuleSkips: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "incentive_rule_skips_total",
			Help: "Total number of incentive rules skipped during evaluation",
		}, []string{"reason"}),
		closureBreakdowns: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "closure_breakdowns_total",
			Help: "Total number of premature closure charge breakdowns produced",
		}),
		groupAggregations: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "group_savings_aggregations_total",
			Help: "Total number of GSIM parent balance aggregations produced",
		}),
	}
}

func (c *Collector) RecordEvaluation(matched, skippedUnresolved, skippedMalformed int) {
	c.incentiveEvaluations.Inc()
	c.incentiveRuleMatches.Add(float64(matched))
	if skippedUnresolved > 0 {
		c.incentiveRuleSkips.WithLabelValues("unresolved_attribute").Add(float64(skippedUnresolved))
	}
	if skippedMalformed > 0 {
		c.incentiveRuleSkips.WithLabelValues("malformed_condition").Add(float64(skippedMalformed))
	}
}

func (c *Collector) RecordClosureBreakdown() {
	c.closureBreakdowns.Inc()
}

func (c *Collector) RecordGroupAggregation() {
	c.groupAggregations.Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
