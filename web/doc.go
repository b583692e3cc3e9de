// SPDX-License-Identifier: MIT

// Package web serves the interactive simulation form, a JSON API and the
// Prometheus endpoint.
//
// Routes:
//
//	GET  /              form
//	POST /              run from the form, render results with an SVG plot
//	POST /api/simulate  JSON in, simulation.Result out
//	GET  /api/datasets  names of the bundled datasets
//	GET  /metrics       Prometheus exposition
//
// Every request passes through the same chain: request id, request-scoped
// logger, panic recovery, access log and HTTP metrics.
package web
