package loader_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, loader.FormatYAML, loader.FormatFromPath("grid.yaml"))
	assert.Equal(t, loader.FormatYAML, loader.FormatFromPath("GRID.YML"))
	assert.Equal(t, loader.FormatJSON, loader.FormatFromPath("grid.json"))
	assert.Equal(t, loader.FormatJSON, loader.FormatFromPath("grid"))

	f, err := loader.ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatYAML, f)
	_, err = loader.ParseFormat("toml")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	for _, name := range []string{"feeder.json", "feeder.yml"} {
		t.Run(name, func(t *testing.T) {
			def, err := loader.Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			g, err := def.Build()
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "2", "plant"}, g.Nodes())
			assert.Equal(t, []string{"l1", "1-2-1"}, g.EdgeIDs())
			assert.Equal(t, []string{"plant"}, def.GeneratorIDs())

			l1, err := g.Edge("l1")
			require.NoError(t, err)
			assert.Equal(t, 2.5, l1.Cost)
			assert.Equal(t, 9.0, l1.WindThreshold)

			derived, err := g.Edge("1-2-1")
			require.NoError(t, err)
			assert.InDelta(t, 1/(4+1e-6), derived.Cost, 1e-12)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		format loader.Format
		body   string
	}{
		{"syntax", loader.FormatJSON, `{"nodes": [`},
		{"unknown field", loader.FormatJSON, `{"nodes": ["A"], "colour": "red"}`},
		{"missing threshold", loader.FormatJSON, `{"nodes": ["A","B"], "edges": [{"u":"A","v":"B"}]}`},
		{"negative threshold", loader.FormatJSON, `{"nodes": ["A","B"], "edges": [{"u":"A","v":"B","cost":1,"wind_threshold":-2}]}`},
		{"fractional node", loader.FormatJSON, `{"nodes": [1.5]}`},
		{"exponent node", loader.FormatJSON, `{"nodes": [1e3]}`},
		{"float node", loader.FormatYAML, "nodes: [1.50]\n"},
		{"negative cost", loader.FormatYAML, "nodes: [A, B]\nedges:\n  - {u: A, v: B, cost: -1, wind_threshold: 3}\n"},
		{"empty endpoint", loader.FormatYAML, "nodes: [A]\nedges:\n  - {u: A, v: ~, wind_threshold: 3}\n"},
		{"empty node", loader.FormatJSON, `{"nodes": [""]}`},
		{"object node", loader.FormatYAML, "nodes:\n  - {x: 1}\n"},
		{"empty document", loader.FormatYAML, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tc.body), tc.format)
			assert.ErrorIs(t, err, loader.ErrInvalidDefinition)
		})
	}

	_, err := loader.Decode(strings.NewReader("{}"), loader.Format("toml"))
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestBuild_StructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"unknown endpoint", "nodes: [A]\nedges:\n  - {id: x, u: A, v: Z, wind_threshold: 3}\n", core.ErrUnknownEndpoint},
		{"self loop", "nodes: [A]\nedges:\n  - {id: x, u: A, v: A, wind_threshold: 3}\n", core.ErrInvalidEndpoints},
		{"duplicate node", "nodes: [A, A]\n", core.ErrDuplicateNode},
		{"duplicate edge", "nodes: [A, B]\nedges:\n  - {id: x, u: A, v: B, wind_threshold: 3}\n  - {id: x, u: B, v: A, wind_threshold: 4}\n", core.ErrDuplicateEdge},
		{"unknown generator", "nodes: [A]\ngenerators: [Q]\n", core.ErrUnknownNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := loader.Decode(strings.NewReader(tc.body), loader.FormatYAML)
			require.NoError(t, err)
			_, err = def.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_ErrorNamesPosition(t *testing.T) {
	def, err := loader.Decode(strings.NewReader("nodes: [A]\nedges:\n  - {u: A, v: Z, wind_threshold: 3}\n"), loader.FormatYAML)
	require.NoError(t, err)
	_, err = def.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `edges[0] "A-Z-0"`)
}

func TestDecode_NegativeThresholdWithoutCost(t *testing.T) {
	_, err := loader.Decode(strings.NewReader("nodes: [A, B]\nedges:\n  - {u: A, v: B, wind_threshold: -2}\n"), loader.FormatYAML)
	require.ErrorIs(t, err, loader.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "WindThreshold: must be at least 0")
	assert.NotContains(t, err.Error(), "cost")
}

func TestNodeID_IntegersAreCanonical(t *testing.T) {
	jsonDef, err := loader.Decode(strings.NewReader(`{"nodes": [7, "x"], "edges": [{"u": 7, "v": "x", "wind_threshold": 3}]}`), loader.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []loader.NodeID{"7", "x"}, jsonDef.Nodes)

	yamlDef, err := loader.Decode(strings.NewReader("nodes: [7, x]\nedges:\n  - {u: 7, v: x, wind_threshold: 3}\n"), loader.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []loader.NodeID{"7", "x"}, yamlDef.Nodes)

	g, err := yamlDef.Build()
	require.NoError(t, err)
	assert.True(t, g.HasNode("7"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDerivedCost(t *testing.T) {
	assert.InDelta(t, 1e6, loader.DerivedCost(0), 1e-3)
	assert.Less(t, loader.DerivedCost(10), loader.DerivedCost(5))
	assert.False(t, math.IsInf(loader.DerivedCost(0), 1))
}

func TestDataset(t *testing.T) {
	assert.Equal(t, []string{"example", "example2"}, loader.DatasetNames())

	def, err := loader.Dataset("example")
	require.NoError(t, err)
	g, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5"}, g.EdgeIDs())
	assert.Equal(t, []string{"A"}, def.GeneratorIDs())

	def2, err := loader.Dataset("example2")
	require.NoError(t, err)
	g2, err := def2.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g2.NodeCount())
	assert.Equal(t, 6, g2.EdgeCount())
	assert.Equal(t, []string{"A", "E"}, def2.GeneratorIDs())

	_, err = loader.Dataset("atlantis")
	assert.ErrorIs(t, err, loader.ErrUnknownDataset)
}

func TestMergedGenerators(t *testing.T) {
	def := &loader.Definition{Generators: []loader.NodeID{"A", "E"}}
	assert.Equal(t, []string{"A", "E", "C"}, def.MergedGenerators("E", " C ", "", "A"))
	assert.Equal(t, []string{"A", "E"}, def.MergedGenerators())

	empty := &loader.Definition{}
	assert.Equal(t, []string{}, empty.MergedGenerators())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, loader.SplitList(" A, ,B,"))
	assert.Equal(t, []string{}, loader.SplitList(""))
}
