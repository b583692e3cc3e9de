// SPDX-License-Identifier: MIT

// Package simulation runs one wind event end to end:
//
//	reinforce.Select → failure.Simulate → connectivity.Analyze → Result
//
// The Runner adds the ambient concerns around that pipeline (a run id, slog
// lines, a metrics Recorder) but introduces no failure modes of its own: any
// error from the three stages is returned exactly as the stage produced it,
// so callers can match it with errors.Is and render a precise message.
//
// Result is the record external renderers consume. Its JSON and YAML field
// names (wind, method, k, selected, surviving, failed, components, blackouts)
// are a contract.
package simulation
