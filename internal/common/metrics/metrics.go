package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CollectionMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_mutations_total",
			Help: "Total number of mutations applied to a property collection",
		},
		[]string{"collection", "operation"},
	)

	CollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "collection_size",
			Help: "Current number of entries in a property collection",
		},
		[]string{"collection"},
	)

	CollectionEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_evictions_total",
			Help: "Total number of entries evicted from a capacity-bounded collection",
		},
		[]string{"collection"},
	)

	TourTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_transitions_total",
			Help: "Total number of tour engine state transitions",
		},
		[]string{"transition"},
	)

	SuggestionResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_results",
			Help:    "Number of suggestions returned per query",
			Buckets: prometheus.LinearBuckets(0, 1, 9),
		},
	)

	StorageWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_write_failures_total",
			Help: "Total number of failed persistence writes",
		},
		[]string{"key"},
	)
)
