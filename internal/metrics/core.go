package metrics

import "github.com/prometheus/client_golang/prometheus"

// Core search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safequery",
			Name:      "searches_total",
			Help:      "Total number of search requests by outcome",
		},
		[]string{"outcome"}, // hit, miss
	)

	SuggestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safequery",
			Name:      "suggestions_total",
			Help:      "Total number of suggestion requests by source",
		},
		[]string{"source"}, // catalog, template, none
	)

	FeedbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safequery",
			Name:      "feedback_total",
			Help:      "Total number of feedback submissions by status",
		},
		[]string{"status"}, // accepted, rejected
	)
)

// RegisterCoreMetrics registers the search metrics explicitly (no init()).
func RegisterCoreMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(FeedbackTotal)
}
