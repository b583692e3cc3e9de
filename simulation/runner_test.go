package simulation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/failure"
	"github.com/katalvlaran/windgrid/reinforce"
	"github.com/katalvlaran/windgrid/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathABC: e1 A–B (cost 1, threshold 5), e2 B–C (cost 1, threshold 10).
func pathABC(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("e1", "A", "B", 1, 5))
	require.NoError(t, g.AddEdge("e2", "B", "C", 1, 10))

	return g
}

type fakeRecorder struct {
	mu     sync.Mutex
	runs   []string
	failed []int
	rounds []int
}

func (f *fakeRecorder) RecordRun(method, status string, _ time.Duration, failed, _ int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, method+"/"+status)
	f.failed = append(f.failed, failed)
}

func (f *fakeRecorder) RecordGreedyRound(trials int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds = append(f.rounds, trials)
}

func TestRun_NoReinforcement(t *testing.T) {
	res, err := simulation.Run(context.Background(), pathABC(t), simulation.Params{
		Wind: 7, Method: reinforce.MethodNone, K: 0, Generators: []string{"A"},
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, res.Wind)
	assert.Equal(t, "none", res.Method)
	assert.Empty(t, res.Selected)
	assert.Equal(t, []string{"e2"}, res.Surviving)
	assert.Equal(t, []string{"e1"}, res.Failed)
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}}, res.Components)
	assert.Equal(t, [][]string{{"B", "C"}}, res.Blackouts)
}

func TestRun_MSTHardensCheapestLine(t *testing.T) {
	res, err := simulation.Run(context.Background(), pathABC(t), simulation.Params{
		Wind: 7, Method: reinforce.MethodMST, K: 1, Generators: []string{"A"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"e1"}, res.Selected)
	assert.Equal(t, []string{"e1", "e2"}, res.Surviving)
	assert.Empty(t, res.Failed)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, res.Components)
	assert.Empty(t, res.Blackouts)
}

func TestRun_BudgetClampedToEdgeCount(t *testing.T) {
	for _, m := range reinforce.Methods() {
		if m == reinforce.MethodNone {
			continue
		}
		res, err := simulation.Run(context.Background(), pathABC(t), simulation.Params{
			Wind: 7, Method: m, K: 10, Generators: []string{"A"},
		})
		require.NoError(t, err, m)
		assert.Len(t, res.Selected, 2, m)
		assert.ElementsMatch(t, []string{"e1", "e2"}, res.Selected, m)
		assert.Equal(t, 10, res.K, m)
	}
}

func TestRun_NoGeneratorsNoBlackouts(t *testing.T) {
	res, err := simulation.Run(context.Background(), pathABC(t), simulation.Params{
		Wind: 7, Method: reinforce.MethodNone,
	})
	require.NoError(t, err)
	assert.Len(t, res.Components, 2)
	assert.NotNil(t, res.Blackouts)
	assert.Empty(t, res.Blackouts)
}

func TestRun_ErrorsForwardedUnwrapped(t *testing.T) {
	ctx := context.Background()
	g := pathABC(t)

	cases := []struct {
		name string
		p    simulation.Params
		want error
	}{
		{"unknown method", simulation.Params{Wind: 7, Method: "random", K: 1}, reinforce.ErrUnknownMethod},
		{"negative budget", simulation.Params{Wind: 7, Method: reinforce.MethodMST, K: -1}, reinforce.ErrInvalidBudget},
		{"negative wind", simulation.Params{Wind: -1, Method: reinforce.MethodNone}, failure.ErrInvalidWind},
		{"negative wind greedy", simulation.Params{Wind: -1, Method: reinforce.MethodGreedy, K: 1}, failure.ErrInvalidWind},
		{"infinite wind mst", simulation.Params{Wind: math.Inf(1), Method: reinforce.MethodMST, K: 5}, failure.ErrInvalidWind},
		{"infinite wind greedy", simulation.Params{Wind: math.Inf(1), Method: reinforce.MethodGreedy, K: 5}, failure.ErrInvalidWind},
		{"empty method", simulation.Params{Wind: 7}, reinforce.ErrUnknownMethod},
		{"negative budget greedy", simulation.Params{Wind: 7, Method: reinforce.MethodGreedy, K: -3}, reinforce.ErrInvalidBudget},
		{"unknown generator", simulation.Params{Wind: 7, Method: reinforce.MethodNone, Generators: []string{"Z"}}, core.ErrUnknownNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := simulation.Run(ctx, g, tc.p)
			assert.Nil(t, res)
			assert.Equal(t, tc.want, err)
		})
	}
}

func TestRunner_RecorderAndLogger(t *testing.T) {
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	r := simulation.NewRunner(
		simulation.WithLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		simulation.WithRecorder(rec),
		simulation.WithWorkers(2),
	)

	_, err := r.Run(context.Background(), pathABC(t), simulation.Params{
		Wind: 7, Method: reinforce.MethodGreedy, K: 1, Generators: []string{"A"},
	})
	require.NoError(t, err)
	_, err = r.Run(context.Background(), pathABC(t), simulation.Params{Wind: 7, Method: "bogus"})
	require.Error(t, err)

	assert.Equal(t, []string{"greedy/ok", "bogus/error"}, rec.runs)
	assert.Equal(t, []int{0, 0}, rec.failed)
	assert.Equal(t, []int{2}, rec.rounds)

	out := buf.String()
	assert.Contains(t, out, `"run_id"`)
	assert.Contains(t, out, "simulation finished")
	assert.Contains(t, out, "simulation failed")
}

func TestResult_JSONFieldNames(t *testing.T) {
	res, err := simulation.Run(context.Background(), pathABC(t), simulation.Params{
		Wind: 7, Method: reinforce.MethodNone, Generators: []string{"A"},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t,
		[]string{"wind", "method", "k", "selected", "surviving", "failed", "components", "blackouts"},
		keys)
}
