// SPDX-License-Identifier: MIT
package builder_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/builder"
	"github.com/katalvlaran/polygraph/core"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func hasEdge(t *testing.T, g *core.Graph, u, v int) bool {
	t.Helper()
	return g.HasEdge(strconv.Itoa(u), strconv.Itoa(v))
}

func degreeCounts(g *core.Graph) map[int]int {
	out := map[int]int{}
	for _, d := range g.DegreeSequence() {
		out[d]++
	}

	return out
}

// TestBuilders_Functional runs table-driven checks for each family.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		wantDegrees  map[int]int
		check        func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			wantDegrees: map[int]int{1: 2, 2: 2},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 2, 3))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			wantDegrees: map[int]int{2: 5},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 4, 0))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			wantDegrees: map[int]int{3: 4},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			wantDegrees: map[int]int{3: 1, 1: 3},
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree("0")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			wantDegrees: map[int]int{4: 1, 3: 4},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 4, 1), "rim closes")
			},
		},
		{
			name: "Spider(3,2)", ctor: builder.Spider(3, 2), wantV: 7, wantE: 6,
			wantDegrees: map[int]int{3: 1, 2: 3, 1: 3},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 0, 2))
				assert.True(t, hasEdge(t, g, 2, 5), "arm 1 runs from level 0 to level 1")
			},
		},
		{
			name: "PyramidPrism(3,0)", ctor: builder.PyramidPrism(3, 0), wantV: 8, wantE: 15,
			wantDegrees: map[int]int{3: 2, 4: 6},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 7, 4))
				assert.True(t, hasEdge(t, g, 1, 4))
			},
		},
		{
			name: "PyramidPrism(4,1)", ctor: builder.PyramidPrism(4, 1), wantV: 14, wantE: 28,
			wantDegrees: map[int]int{4: 14},
		},
		{
			name: "Orthobicupola(3)", ctor: builder.Orthobicupola(3), wantV: 12, wantE: 24,
			wantDegrees: map[int]int{4: 12},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 3, 0))
				assert.True(t, hasEdge(t, g, 4, 9))
			},
		},
		{
			name: "Hypercube(3)", ctor: builder.Hypercube(3), wantV: 8, wantE: 12,
			wantDegrees: map[int]int{3: 8},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 0, 4))
				assert.False(t, hasEdge(t, g, 0, 3), "two bits apart")
			},
		},
		{
			name: "SnowflakeCycle(2,2,2)", ctor: builder.SnowflakeCycle(2, 2, 2), wantV: 20, wantE: 32,
			wantDegrees: map[int]int{2: 4, 3: 8, 4: 8},
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 0, 1), "center to even position")
				assert.False(t, hasEdge(t, g, 0, 2), "center skips odd position")
				assert.True(t, hasEdge(t, g, 1, 6), "inner ring at even position")
				assert.True(t, hasEdge(t, g, 2, 12), "outer ring at odd position")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tt.ctor)
			assert.Equal(t, tt.wantV, g.VertexCount())
			assert.Equal(t, tt.wantE, g.EdgeCount())
			if tt.wantDegrees != nil {
				assert.Equal(t, tt.wantDegrees, degreeCounts(g))
			}
			for i, id := range g.Vertices() {
				assert.Equal(t, strconv.Itoa(i), id, "vertices follow index order")
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Spider(0,2)", builder.Spider(0, 2), builder.ErrTooFewVertices},
		{"Spider(2,0)", builder.Spider(2, 0), builder.ErrTooFewVertices},
		{"PyramidPrism(2,0)", builder.PyramidPrism(2, 0), builder.ErrTooFewVertices},
		{"PyramidPrism(3,-1)", builder.PyramidPrism(3, -1), builder.ErrInvalidParameter},
		{"Orthobicupola(2)", builder.Orthobicupola(2), builder.ErrTooFewVertices},
		{"SnowflakeCycle(1,3,3)", builder.SnowflakeCycle(1, 3, 3), builder.ErrTooFewVertices},
		{"SnowflakeCycle(2,1,3)", builder.SnowflakeCycle(2, 1, 3), builder.ErrInvalidParameter},
		{"SpiderTorusGraph(len mismatch)", builder.SpiderTorusGraph(2, 2, []int{3}), builder.ErrInvalidParameter},
		{"SpiderTorusGraph(copies<2)", builder.SpiderTorusGraph(2, 1, []int{1}), builder.ErrInvalidParameter},
		{"Hypercube(0)", builder.Hypercube(0), builder.ErrTooFewVertices},
		{"Hypercube(21)", builder.Hypercube(21), builder.ErrInvalidParameter},
		{"CartesianProduct(nil)", builder.CartesianProduct(nil, core.NewGraph()), builder.ErrInvalidParameter},
		{"CartesianProduct(empty)", builder.CartesianProduct(core.NewGraph(), core.NewGraph()), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"nil", nil, builder.ErrConstructFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tt.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCartesianProduct(t *testing.T) {
	t.Parallel()

	t.Run("grid", func(t *testing.T) {
		t.Parallel()
		g := build(t, builder.CartesianProduct(build(t, builder.Path(2)), build(t, builder.Path(3))))
		assert.Equal(t, 6, g.VertexCount())
		assert.Equal(t, 7, g.EdgeCount())
		assert.Equal(t, map[int]int{2: 4, 3: 2}, degreeCounts(g))
		for _, e := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {0, 3}, {1, 4}, {2, 5}} {
			assert.True(t, hasEdge(t, g, e[0], e[1]), "%v", e)
		}
	})

	t.Run("square is the 2-cube", func(t *testing.T) {
		t.Parallel()
		edge := build(t, builder.Path(2))
		square := build(t, builder.CartesianProduct(edge, edge))
		cube := build(t, builder.Hypercube(2))
		require.Equal(t, cube.EdgeCount(), square.EdgeCount())
		for _, e := range cube.Edges() {
			assert.True(t, square.HasEdge(e.From, e.To), "%s-%s", e.From, e.To)
		}
	})

	t.Run("prism times edge", func(t *testing.T) {
		t.Parallel()
		g := build(t, builder.CartesianProduct(build(t, builder.PyramidPrism(4, 0)), build(t, builder.Path(2))))
		assert.Equal(t, 20, g.VertexCount())
		assert.Equal(t, 50, g.EdgeCount())
		assert.Equal(t, map[int]int{5: 20}, degreeCounts(g))
	})

	t.Run("factor loops are skipped", func(t *testing.T) {
		t.Parallel()
		looped, err := builder.BuildGraph([]core.GraphOption{core.WithLoops()}, nil, builder.Path(2))
		require.NoError(t, err)
		_, err = looped.AddEdge("0", "0", 0)
		require.NoError(t, err)

		g := build(t, builder.CartesianProduct(looped, build(t, builder.Path(2))))
		assert.Equal(t, 4, g.EdgeCount())
	})
}

func TestSpiderTorus(t *testing.T) {
	t.Parallel()

	t.Run("single level ring", func(t *testing.T) {
		c, err := builder.SpiderTorus(1, 1, []int{3})
		require.NoError(t, err)
		assert.Equal(t, 6, c.Graph.VertexCount())
		assert.Equal(t, 6, c.Graph.EdgeCount())
		assert.Equal(t, []int{0, 1}, c.Representatives)
		assert.True(t, hasEdge(t, c.Graph, 1, 3))
		assert.True(t, hasEdge(t, c.Graph, 5, 1))
	})

	t.Run("two levels of pairs", func(t *testing.T) {
		c, err := builder.SpiderTorus(2, 2, []int{2, 2})
		require.NoError(t, err)
		assert.Equal(t, 20, c.Graph.VertexCount())
		assert.Equal(t, 24, c.Graph.EdgeCount())
		assert.Equal(t, []int{0, 2, 4}, c.Representatives)
		assert.Equal(t, []int{2, 2}, c.Copies)
		assert.Equal(t, 2, c.Degree)
		assert.Equal(t, 2, c.Length)
		assert.True(t, hasEdge(t, c.Graph, 1, 6), "level 0 joins copy 0 to copy 1")
		assert.True(t, hasEdge(t, c.Graph, 3, 13), "level 1 joins ring 0 to ring 1")
		assert.False(t, hasEdge(t, c.Graph, 0, 5), "centers are never joined")
	})

	t.Run("mismatched copies", func(t *testing.T) {
		_, err := builder.SpiderTorus(2, 3, []int{2, 2})
		assert.ErrorIs(t, err, builder.ErrInvalidParameter)
	})
}

func TestRandomSparse(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount(), "same seed, same graph")
	assert.Equal(t, g1.DegreeSequence(), g2.DegreeSequence())

	full := build(t, builder.RandomSparse(5, 1))
	assert.Equal(t, 10, full.EdgeCount())
	empty := build(t, builder.RandomSparse(5, 0))
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("id scheme", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v"))}, builder.Path(3))
		require.NoError(t, err)
		assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
	})

	t.Run("hex ids", func(t *testing.T) {
		assert.Equal(t, "ff", builder.HexIDFn(255))
	})

	t.Run("weights on weighted graphs", func(t *testing.T) {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
			builder.Cycle(4),
		)
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.Equal(t, int64(3), e.Weight)
		}
	})

	t.Run("uniform weights stay in range", func(t *testing.T) {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(2, 5))},
			builder.Complete(6),
		)
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(2))
			assert.LessOrEqual(t, e.Weight, int64(5))
		}
	})

	t.Run("unweighted ignores weight fn", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(9))}, builder.Path(3))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
		}
	})

	t.Run("panics on nil", func(t *testing.T) {
		assert.Panics(t, func() { builder.WithIDScheme(nil) })
		assert.Panics(t, func() { builder.WithRand(nil) })
		assert.Panics(t, func() { builder.WithWeightFn(nil) })
		assert.Panics(t, func() { builder.ConstantWeightFn(0) })
		assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	})
}
