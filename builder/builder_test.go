package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/windgrid/builder"
)

func TestPathAndRing(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2", "n3"}, g.Nodes())
	assert.Equal(t, []string{"e0", "e1", "e2"}, g.EdgeIDs())

	g, err = builder.BuildGraph(nil, builder.Ring(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	last, err := g.Edge("e4")
	require.NoError(t, err)
	assert.Equal(t, "n4", last.U)
	assert.Equal(t, "n0", last.V)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	// 3 rows × 3 horizontal + 2 × 4 vertical.
	assert.Equal(t, 17, g.EdgeCount())

	first, err := g.Edge("e0")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"n0", "n1"}, [2]string{first.U, first.V})
	second, err := g.Edge("e1")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"n0", "n4"}, [2]string{second.U, second.V})
}

func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(6))
	require.NoError(t, err)
	deg, err := g.Degree("n0")
	require.NoError(t, err)
	assert.Equal(t, 5, deg)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []string {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.2))
		require.NoError(t, err)
		out := []string{}
		for _, e := range g.Edges() {
			out = append(out, fmt.Sprintf("%s:%s-%s:%.6f", e.ID, e.U, e.V, e.WindThreshold))
		}
		return out
	}
	assert.Equal(t, build(7), build(7))

	full, err := builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
}

func TestAttributes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithConstantThreshold(4),
		builder.WithCostFn(func(th float64) float64 { return th * 2 }),
		builder.WithIDScheme(func(i int) string { return fmt.Sprintf("S%02d", i) }),
		builder.WithEdgePrefix("L"),
	}, builder.Path(2))
	require.NoError(t, err)

	e, err := g.Edge("L0")
	require.NoError(t, err)
	assert.Equal(t, "S00", e.U)
	assert.Equal(t, 4.0, e.WindThreshold)
	assert.Equal(t, 8.0, e.Cost)
}

func TestDefaultThresholdRange(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(10, 10))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.WindThreshold, builder.DefaultMinThreshold)
		assert.Less(t, e.WindThreshold, builder.DefaultMaxThreshold)
		assert.InDelta(t, 1/(e.WindThreshold+1e-6), e.Cost, 1e-12)
	}
}

func TestComposeConstructors(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ring(3), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2", "n3", "n4"}, g.Nodes())
	assert.Equal(t, []string{"e0", "e1", "e2", "e3"}, g.EdgeIDs())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		con  builder.Constructor
		want error
	}{
		{builder.Path(0), builder.ErrTooFewNodes},
		{builder.Ring(2), builder.ErrTooFewNodes},
		{builder.Grid(0, 3), builder.ErrTooFewNodes},
		{builder.Star(1), builder.ErrTooFewNodes},
		{builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{nil, builder.ErrConstructFailed},
	}
	for i, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.con)
		assert.ErrorIs(t, err, tc.want, i)
	}

	assert.Panics(t, func() { builder.WithThresholdFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
}

func TestParse(t *testing.T) {
	for spec, edges := range map[string]int{
		"path:4":      3,
		"ring:6":      6,
		"STAR:5":      4,
		"grid:2x3":    7,
		"random:5:1":  10,
		" random:4:0": 0,
	} {
		con, err := builder.Parse(spec)
		require.NoError(t, err, spec)
		g, err := builder.BuildGraph(nil, con)
		require.NoError(t, err, spec)
		assert.Equal(t, edges, g.EdgeCount(), spec)
	}

	for _, spec := range []string{"", "hex:4", "ring", "ring:x", "grid:3", "grid:axb", "random:5", "random:n:0.1"} {
		_, err := builder.Parse(spec)
		assert.ErrorIs(t, err, builder.ErrInvalidSpec, spec)
	}
}

func TestWithThresholdFnUsesSeededSource(t *testing.T) {
	var draws []float64
	fn := func(r *rand.Rand) float64 {
		v := r.Float64()
		draws = append(draws, v)
		return 1 + v
	}
	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3), builder.WithThresholdFn(fn)}, builder.Path(3))
	require.NoError(t, err)

	want := rand.New(rand.NewSource(3))
	assert.Equal(t, []float64{want.Float64(), want.Float64()}, draws)
}
