package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/prim_kruskal"
	"github.com/katalvlaran/windgrid/unionfind"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRandomGrid creates n nodes "N0".."N(n-1)" and m random lines between
// distinct nodes, with integer costs in [0, 9] so that cost ties are common.
// The generator is seeded so failures are reproducible.
func buildRandomGrid(seed int64, n, m int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddNode(fmt.Sprintf("N%d", i))
	}
	if n < 2 {
		return g
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < m; i++ {
		u := r.Intn(n)
		v := r.Intn(n)
		if u == v {
			continue
		}
		cost := float64(r.Intn(10))
		_ = g.AddEdge(fmt.Sprintf("e%03d", i), fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v), cost, float64(r.Intn(20)))
	}

	return g
}

// regionCount counts connected regions of g using all of its lines.
func regionCount(t testing.TB, g *core.Graph) int {
	uf := unionfind.New(g.Nodes())
	for _, e := range g.Edges() {
		_, err := uf.Union(e.U, e.V)
		require.NoError(t, err)
	}

	return uf.Count()
}

// isAcyclic reports whether edges form a forest over g's nodes.
func isAcyclic(g *core.Graph, edges []core.Edge) bool {
	uf := unionfind.New(g.Nodes())
	for _, e := range edges {
		merged, err := uf.Union(e.U, e.V)
		if err != nil || !merged {
			return false
		}
	}

	return true
}

func TestKruskal_Triangle(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("ab", "A", "B", 1, 5))
	require.NoError(t, g.AddEdge("bc", "B", "C", 2, 5))
	require.NoError(t, g.AddEdge("ac", "A", "C", 3, 5))

	forest, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	require.Len(t, forest, 2)
	assert.Equal(t, "ab", forest[0].ID)
	assert.Equal(t, "bc", forest[1].ID)
}

func TestKruskal_TieBreakByID(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	// All three lines cost the same; the two lowest IDs win.
	require.NoError(t, g.AddEdge("z", "A", "B", 1, 5))
	require.NoError(t, g.AddEdge("b", "B", "C", 1, 5))
	require.NoError(t, g.AddEdge("a", "A", "C", 1, 5))

	forest, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "a", forest[0].ID)
	assert.Equal(t, "b", forest[1].ID)
}

func TestForest_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("ab", "A", "B", 2, 5))
	require.NoError(t, g.AddEdge("cd", "C", "D", 1, 5))

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			forest, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.Len(t, forest, 2, "one line per two-node region, none for the isolated node")
			assert.Equal(t, 3.0, total)
		})
	}
}

func TestForest_EmptyAndNil(t *testing.T) {
	forest, total, err := prim_kruskal.Kruskal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)

	forest, _, err = prim_kruskal.Prim(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, forest)

	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, _, err = prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, _, err = prim_kruskal.Compute(core.NewGraph(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestForest_Properties checks, over random grids, that Kruskal's forest is
// acyclic, spans every region, and costs exactly what Prim's forest costs.
func TestForest_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("kruskal forest is acyclic and spans each region", prop.ForAll(
		func(seed int64, n, m int) bool {
			g := buildRandomGrid(seed, n, m)
			forest, _, err := prim_kruskal.Kruskal(g)
			if err != nil || !isAcyclic(g, forest) {
				return false
			}
			// A spanning forest has exactly |V| - regions lines.
			return len(forest) == g.NodeCount()-regionCount(t, g)
		},
		gen.Int64(),
		gen.IntRange(0, 12),
		gen.IntRange(0, 40),
	))

	properties.Property("kruskal and prim agree on minimum total cost", prop.ForAll(
		func(seed int64, n, m int) bool {
			g := buildRandomGrid(seed, n, m)
			kf, kTotal, err := prim_kruskal.Kruskal(g)
			if err != nil {
				return false
			}
			pf, pTotal, err := prim_kruskal.Prim(g)
			if err != nil {
				return false
			}
			return len(kf) == len(pf) && math.Abs(kTotal-pTotal) < 1e-9
		},
		gen.Int64(),
		gen.IntRange(0, 12),
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}

func TestSortByCost(t *testing.T) {
	edges := []core.Edge{
		{ID: "c", Cost: 2},
		{ID: "b", Cost: 1},
		{ID: "a", Cost: 2},
	}
	prim_kruskal.SortByCost(edges)
	assert.Equal(t, "b", edges[0].ID)
	assert.Equal(t, "a", edges[1].ID)
	assert.Equal(t, "c", edges[2].ID)
}
