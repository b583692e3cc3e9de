// SPDX-License-Identifier: MIT

package simulation

import (
	"time"

	"github.com/katalvlaran/windgrid/reinforce"
)

// Params are the inputs of one run. Run checks them and reports violations
// with the engine's sentinel errors (failure.ErrInvalidWind,
// reinforce.ErrUnknownMethod, reinforce.ErrInvalidBudget).
type Params struct {
	// Wind is the uniform wind strength; finite and non-negative.
	Wind float64 `json:"wind" yaml:"wind"`

	// Method is the reinforcement strategy.
	Method reinforce.Method `json:"method" yaml:"method"`

	// K is the reinforcement budget; non-negative.
	K int `json:"k" yaml:"k"`

	// Generators are the node IDs that supply power. Empty means every node
	// counts as a generator and no blackout is reported.
	Generators []string `json:"generators,omitempty" yaml:"generators,omitempty"`
}

// Result is the outcome of one run.
type Result struct {
	Wind       float64    `json:"wind" yaml:"wind"`
	Method     string     `json:"method" yaml:"method"`
	K          int        `json:"k" yaml:"k"`
	Selected   []string   `json:"selected" yaml:"selected"`
	Surviving  []string   `json:"surviving" yaml:"surviving"`
	Failed     []string   `json:"failed" yaml:"failed"`
	Components [][]string `json:"components" yaml:"components"`
	Blackouts  [][]string `json:"blackouts" yaml:"blackouts"`
}

// Recorder receives run telemetry. metrics.Registry implements it.
type Recorder interface {
	// RecordRun is called once per run, successful or not.
	RecordRun(method, status string, d time.Duration, failed, blackouts int)

	// RecordGreedyRound is called after each greedy round.
	RecordGreedyRound(trials int)
}

// nopRecorder discards telemetry.
type nopRecorder struct{}

func (nopRecorder) RecordRun(string, string, time.Duration, int, int) {}
func (nopRecorder) RecordGreedyRound(int)                             {}

// Run status labels passed to Recorder.RecordRun.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
