// SPDX-License-Identifier: MIT

package reinforce

import (
	"errors"
	"runtime"
	"strings"

	"github.com/katalvlaran/windgrid/prim_kruskal"
)

// Sentinel errors for parameter validation. Both are raised before any
// simulation work begins.
var (
	// ErrUnknownMethod indicates a method outside none|mst|greedy.
	ErrUnknownMethod = errors.New("reinforce: unknown method")

	// ErrInvalidBudget indicates a negative reinforcement budget.
	ErrInvalidBudget = errors.New("reinforce: budget must be non-negative")

	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("reinforce: graph is nil")
)

// Method names a reinforcement strategy.
type Method string

// Supported strategies.
const (
	MethodNone   Method = "none"
	MethodMST    Method = "mst"
	MethodGreedy Method = "greedy"
)

// Methods lists every supported strategy in presentation order.
func Methods() []Method { return []Method{MethodGreedy, MethodMST, MethodNone} }

// Valid reports whether m is a supported strategy.
func (m Method) Valid() bool {
	switch m {
	case MethodNone, MethodMST, MethodGreedy:
		return true
	default:
		return false
	}
}

func (m Method) String() string { return string(m) }

// ParseMethod maps a user-supplied name to a Method, ignoring case and
// surrounding space.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", ErrUnknownMethod
	}

	return m, nil
}

// Options tunes Select.
type Options struct {
	// Generators are the node IDs greedy scores blackouts against.
	Generators []string

	// Workers bounds parallel greedy trials per round; values < 1 mean 1.
	Workers int

	// SpanningMethod is the prim_kruskal algorithm MST selection uses.
	SpanningMethod string

	// OnRound, if set, is called after each greedy round with the number of
	// trials it evaluated.
	OnRound func(round, trials int)
}

// Option mutates Options.
type Option func(*Options)

// WithGenerators sets the generator nodes used for blackout scoring.
func WithGenerators(ids ...string) Option {
	return func(o *Options) { o.Generators = append([]string(nil), ids...) }
}

// WithWorkers bounds the number of concurrent greedy trials.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSpanningMethod selects prim_kruskal.MethodKruskal or MethodPrim for MST.
func WithSpanningMethod(m string) Option {
	return func(o *Options) { o.SpanningMethod = m }
}

// WithRoundObserver installs a callback invoked after every greedy round.
func WithRoundObserver(fn func(round, trials int)) Option {
	return func(o *Options) { o.OnRound = fn }
}

// DefaultOptions returns Options with one worker per available CPU and Kruskal.
func DefaultOptions() Options {
	return Options{
		Workers:        runtime.GOMAXPROCS(0),
		SpanningMethod: prim_kruskal.MethodKruskal,
	}
}
