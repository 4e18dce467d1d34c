// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SourceFetches counts adapter fetch attempts by source and outcome.
	SourceFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newspulse_source_fetches_total",
			Help: "Total number of source adapter fetch attempts",
		},
		[]string{"source", "status"},
	)

	// SourceFailures counts adapter-level errors that were swallowed by
	// the fallback loop.
	SourceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newspulse_source_failures_total",
			Help: "Total number of swallowed source adapter failures",
		},
		[]string{"source"},
	)

	// AggregationsServed counts completed aggregations by the tier that
	// produced the result ("none" when every tier came up empty).
	AggregationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newspulse_aggregations_served_total",
			Help: "Total number of aggregations served, by winning tier",
		},
		[]string{"tier", "category"},
	)

	// ArticlesServed counts articles returned to callers by category.
	ArticlesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newspulse_articles_served_total",
			Help: "Total number of articles served to clients",
		},
		[]string{"category", "source"},
	)
)
