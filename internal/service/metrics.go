package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// miningDuration tracks how long each mining operation takes.
	miningDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "galois_mining_duration_seconds",
		Help:    "Mining duration in seconds by operation",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"operation"})

	conceptsMined = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "galois_concepts_per_context",
		Help:    "Number of concepts in each mined lattice",
		Buckets: []float64{1, 4, 16, 64, 256, 1024, 4096, 16384},
	})

	implicationsMined = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galois_implications_total",
		Help: "Implications returned by basis kind",
	}, []string{"basis"})

	miningErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galois_mining_errors_total",
		Help: "Mining failures by operation",
	}, []string{"operation"})
)
