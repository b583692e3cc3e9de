// SPDX-License-Identifier: MIT

package metrics

import (
	"time"
)

// RecordRun records one simulation run. Failed-line and blackout histograms
// are only fed by successful runs.
func (r *Registry) RecordRun(method, status string, duration time.Duration, failed, blackouts int) {
	r.RunsTotal.WithLabelValues(method, status).Inc()
	r.RunDuration.WithLabelValues(method).Observe(duration.Seconds())

	if status == "ok" {
		r.FailedEdges.WithLabelValues(method).Observe(float64(failed))
		r.BlackoutZones.WithLabelValues(method).Observe(float64(blackouts))
	}
}

// RecordGreedyRound records one greedy round and its candidate evaluations
func (r *Registry) RecordGreedyRound(trials int) {
	r.GreedyRoundsTotal.Inc()
	r.GreedyTrialsTotal.Add(float64(trials))
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
