// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "windgrid_runs_total",
			Help: "Total number of simulation runs",
		},
		[]string{"method", "status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "windgrid_run_duration_seconds",
			Help:    "Simulation run duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"method"},
	)

	r.FailedEdges = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "windgrid_failed_edges",
			Help:    "Number of failed lines per successful run",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 1000},
		},
		[]string{"method"},
	)

	r.BlackoutZones = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "windgrid_blackout_zones",
			Help:    "Number of blackout zones per successful run",
			Buckets: []float64{0, 1, 2, 5, 10, 50},
		},
		[]string{"method"},
	)

	r.GreedyTrialsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "windgrid_greedy_trials_total",
			Help: "Total number of candidate evaluations in greedy selection",
		},
	)

	r.GreedyRoundsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "windgrid_greedy_rounds_total",
			Help: "Total number of greedy selection rounds",
		},
	)
}
