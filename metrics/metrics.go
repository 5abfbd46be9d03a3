// Package metrics exposes planner metrics to prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// solvesTotal counts solves by route outcome
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_solves_total",
		Help: "Total solves by route outcome",
	}, []string{"outcome"})

	// solveDuration tracks wall time of a full solve
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_solve_duration_seconds",
		Help:    "Solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	// solverSweeps tracks how many sweeps a solve needed
	solverSweeps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_solver_sweeps",
		Help:    "Value iteration sweeps per solve",
		Buckets: []float64{1, 5, 10, 25, 50, 75, 100, 200},
	})

	// planCacheTotal counts plan cache lookups by result
	planCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_plan_cache_total",
		Help: "Plan cache lookups by result",
	}, []string{"result"})
)

// ObserveSolve records one finished solve.
func ObserveSolve(outcome string, sweeps int, took time.Duration) {
	solvesTotal.WithLabelValues(outcome).Inc()
	solverSweeps.Observe(float64(sweeps))
	solveDuration.Observe(took.Seconds())
}

// ObserveCacheLookup records a plan cache hit or miss.
func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	planCacheTotal.WithLabelValues(result).Inc()
}

// Handler serves the default registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
