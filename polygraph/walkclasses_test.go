// SPDX-License-Identifier: MIT
package polygraph_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/builder"
	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/matrix"
	"github.com/katalvlaran/polygraph/polygraph"
)

func buildGraph(t *testing.T, con builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, con)
	require.NoError(t, err)

	return g
}

func floatRows(m *matrix.Dense[float64]) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}

	return out
}

func TestWalkClasses_Path3(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, builder.Path(3))

	res, err := polygraph.WalkClasses(g, matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, res.NumClasses)
	assert.Equal(t, [][]string{{"0", "2"}, {"1"}}, res.Classes)
	assert.Equal(t, []int{0, 1, 0}, res.Labels)
	assert.Equal(t, 3, res.MaxPower)
	assert.True(t, res.FullRange)
	assert.False(t, res.Exact)
	assert.Equal(t, []int{2, 3}, res.Powers)
	assert.Equal(t, [][]float64{{1, 0}, {2, 0}, {1, 0}}, floatRows(res.DiagMatrix))
	assert.Equal(t, []int{0, 1}, res.UniqRows)
	assert.Equal(t, [][]float64{{1, 0}, {2, 0}}, floatRows(res.UniqMatrix))
	assert.Equal(t, 3, res.NumEigenvalues)
	assert.Equal(t, 2, res.EigMatrix.Cols())
	assert.Equal(t, []int{2, 3}, res.ReducedPowers())

	c, ok := g.Category("2")
	require.True(t, ok)
	assert.Equal(t, 0, c)
}

func TestWalkClasses_CompleteGraphSingleClass(t *testing.T) {
	t.Parallel()
	res, err := polygraph.WalkClasses(buildGraph(t, builder.Complete(4)), matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, res.NumClasses)
	assert.Equal(t, []int{4}, res.ClassSizes())
	assert.Equal(t, 2, res.NumEigenvalues)
	r, c := res.EigMatrix.Shape()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

func TestWalkClasses_Invariants(t *testing.T) {
	t.Parallel()

	graphs := map[string]builder.Constructor{
		"pyramid prism":  builder.PyramidPrism(3, 1),
		"orthobicupola":  builder.Orthobicupola(3),
		"spider":         builder.Spider(3, 3),
		"wheel":          builder.Wheel(7),
		"random":         builder.RandomSparse(14, 0.3),
		"snowflakecycle": builder.SnowflakeCycle(2, 3, 2),
	}
	for name, con := range graphs {
		con := con
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := buildGraph(t, con)
			res, err := polygraph.WalkClasses(g, matrix.Float64, nil, zerolog.Nop())
			require.NoError(t, err)

			total := 0
			for _, size := range res.ClassSizes() {
				total += size
			}
			assert.Equal(t, g.VertexCount(), total, "classes partition the vertices")

			w := res.DiagMatrix
			for i := 0; i < w.Rows(); i++ {
				for j := i + 1; j < w.Rows(); j++ {
					same := assert.ObjectsAreEqual(w.Row(i), w.Row(j))
					assert.Equal(t, same, res.Labels[i] == res.Labels[j], "rows %d,%d", i, j)
				}
			}

			degrees := g.DegreeSequence()
			for i, d := range degrees {
				assert.Equal(t, float64(d), w.Row(i)[0], "closed 2-walks equal degree at %d", i)
			}

			assert.Equal(t, len(res.Powers), w.Cols())
			assert.LessOrEqual(t, res.EigMatrix.Cols(), res.UniqMatrix.Cols())
		})
	}
}

func TestWalkClasses_LoopsMatchDegree(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops()},
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.Path(4),
	)
	require.NoError(t, err)
	for _, id := range []string{"0", "2"} {
		_, err = g.AddEdge(id, id, 0)
		require.NoError(t, err)
	}

	res, err := polygraph.WalkClasses(g, matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)

	degrees := g.DegreeSequence()
	assert.Equal(t, []int{2, 2, 3, 1}, degrees)
	for i, d := range degrees {
		assert.Equal(t, float64(d), res.DiagMatrix.Row(i)[0], "loop counted once at %d", i)
	}
}

func TestWalkClasses_ExactAgreesWithFloat(t *testing.T) {
	t.Parallel()

	fg := buildGraph(t, builder.PyramidPrism(4, 1))
	bg := buildGraph(t, builder.PyramidPrism(4, 1))
	fres, err := polygraph.WalkClasses(fg, matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)
	bres, err := polygraph.WalkClasses(bg, matrix.BigInt, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, bres.Exact)
	assert.Equal(t, fres.Labels, bres.Labels)
	assert.Equal(t, fres.Classes, bres.Classes)
	assert.True(t, fres.DiagMatrix.Equal(matrix.ToFloat64(bres.DiagMatrix)))
}

func TestWalkClasses_ExactBeyondFloatPrecision(t *testing.T) {
	t.Parallel()

	cfg := polygraph.NewConfig()
	cfg.Set("walk.max_power", 40)
	res, err := polygraph.WalkClasses(buildGraph(t, builder.Complete(5)), matrix.BigInt, cfg, zerolog.Nop())
	require.NoError(t, err)

	// closed walks of length p in K_n: ((n-1)^p + (n-1)·(-1)^p) / n
	want := new(big.Int).Exp(big.NewInt(4), big.NewInt(40), nil)
	want.Add(want, big.NewInt(4))
	want.Quo(want, big.NewInt(5))
	got, err := res.DiagMatrix.At(0, 38)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(got), "got %s want %s", got, want)
}

func TestWalkClasses_SparseMatchesDense(t *testing.T) {
	t.Parallel()

	cfg := polygraph.NewConfig()
	cfg.Set("walk.sparse", true)
	sparse, err := polygraph.WalkClasses(buildGraph(t, builder.Orthobicupola(4)), matrix.Float64, cfg, zerolog.Nop())
	require.NoError(t, err)
	dense, err := polygraph.WalkClasses(buildGraph(t, builder.Orthobicupola(4)), matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, sparse.DiagMatrix.Equal(dense.DiagMatrix))
	assert.Equal(t, dense.Labels, sparse.Labels)
}

func TestWalkClasses_Errors(t *testing.T) {
	t.Parallel()

	_, err := polygraph.WalkClasses[float64](nil, matrix.Float64, nil, zerolog.Nop())
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = polygraph.WalkClasses(core.NewGraph(), matrix.BigInt, nil, zerolog.Nop())
	assert.ErrorIs(t, err, polygraph.ErrEmptyGraph)

	cfg := polygraph.NewConfig()
	cfg.Set("walk.max_power", 1)
	_, err = polygraph.WalkClasses(buildGraph(t, builder.Path(3)), matrix.Float64, cfg, zerolog.Nop())
	assert.ErrorIs(t, err, polygraph.ErrPowerTooSmall)
}

func TestWalkClasses_LogsFailedNecessaryCondition(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	_, err := polygraph.WalkClasses(buildGraph(t, builder.Path(3)), matrix.Float64, nil, logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Graph fails necessary condition for flip-flopping")

	buf.Reset()
	_, err = polygraph.WalkClasses(buildGraph(t, builder.Cycle(6)), matrix.Float64, nil, logger)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "fails necessary condition")
}

func TestDiagonalMatrix(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromInt64Rows(matrix.Float64, [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)

	w, err := polygraph.DiagonalMatrix(a, 4, false)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 2}, {2, 0, 4}, {1, 0, 2}}, floatRows(w))

	sw, err := polygraph.DiagonalMatrix(a, 4, true)
	require.NoError(t, err)
	assert.True(t, w.Equal(sw))

	exact, err := matrix.FromInt64Rows(matrix.BigInt, [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)
	ew, err := polygraph.DiagonalMatrix(exact, 4, true)
	require.NoError(t, err)
	assert.True(t, w.Equal(matrix.ToFloat64(ew)), "exact rings ignore the sparse flag")

	_, err = polygraph.DiagonalMatrix(a, 1, false)
	assert.ErrorIs(t, err, polygraph.ErrPowerTooSmall)

	rect, err := matrix.NewDense(matrix.Float64, 2, 3)
	require.NoError(t, err)
	_, err = polygraph.DiagonalMatrix(rect, 3, false)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestPowerBound(t *testing.T) {
	t.Parallel()

	nop := zerolog.Nop()
	assert.Equal(t, 5, polygraph.PowerBound(buildGraph(t, builder.Path(3)), 5, nop), "explicit bound kept")
	assert.Equal(t, 3, polygraph.PowerBound(buildGraph(t, builder.Path(3)), 0, nop), "capped at n")
	assert.Equal(t, 15, polygraph.PowerBound(buildGraph(t, builder.Spider(11, 2)), 0, nop), "53/log2(11)")
	assert.Equal(t, 14, polygraph.PowerBound(buildGraph(t, builder.Star(40)), 0, nop), "never below the safe power")

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("x"))
	assert.Equal(t, 2, polygraph.PowerBound(single, 0, nop), "raised to two")

	var buf bytes.Buffer
	assert.Equal(t, 20, polygraph.PowerBound(single, 20, zerolog.New(&buf)))
	assert.Contains(t, buf.String(), "lose precision")
}

func TestRepresentativeWalkClasses_SpiderTorus(t *testing.T) {
	t.Parallel()

	comp, err := builder.SpiderTorus(2, 2, []int{3, 2})
	require.NoError(t, err)
	res, err := polygraph.RepresentativeWalkClasses(comp.Graph, comp.Representatives, comp.Copies, matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, res.NumClasses)
	assert.Equal(t, 3, res.MaxPower)
	assert.Equal(t, []int{2, 3}, res.Powers)
	assert.True(t, res.FullRange)
	assert.Nil(t, res.EigMatrix)
	assert.Same(t, res.UniqMatrix, res.Reduced())
	assert.Equal(t, []float64{2, 4, 2}, res.UniqMatrix.Col(0))
	assert.Equal(t, [][]string{{"0"}, {"2"}, {"4"}}, res.Classes)
	assert.Equal(t, core.NoCategory, res.Labels[1])
	c, ok := comp.Graph.Category("4")
	require.True(t, ok)
	assert.Equal(t, 2, c)

	full, err := polygraph.WalkClasses(buildGraph(t, builder.SpiderTorusGraph(2, 2, []int{3, 2})), matrix.Float64, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, res.NumClasses, full.NumClasses, "representatives cover every class")
	for label, rep := range comp.Representatives {
		assert.Equal(t, label, full.Labels[rep])
	}
}

func TestRepresentativeWalkClasses_Errors(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, builder.Spider(2, 2))
	_, err := polygraph.RepresentativeWalkClasses(g, []int{0, 2}, []int{2, 2}, matrix.Float64, nil, zerolog.Nop())
	assert.ErrorIs(t, err, polygraph.ErrBadRepresentative)

	_, err = polygraph.RepresentativeWalkClasses(g, []int{0, 99}, []int{2}, matrix.Float64, nil, zerolog.Nop())
	assert.ErrorIs(t, err, polygraph.ErrBadRepresentative)

	_, err = polygraph.RepresentativeWalkClasses(g, []int{0, 1}, []int{1}, matrix.Float64, nil, zerolog.Nop())
	assert.ErrorIs(t, err, polygraph.ErrPowerTooSmall)

	_, err = polygraph.CompositeWalkClasses[float64](nil, matrix.Float64, nil, zerolog.Nop())
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestCompositeWalkClasses(t *testing.T) {
	t.Parallel()

	comp, err := builder.SpiderTorus(3, 1, []int{2})
	require.NoError(t, err)
	res, err := polygraph.CompositeWalkClasses(comp, matrix.BigInt, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, res.Exact)
	assert.Equal(t, 2, res.NumClasses)
	assert.Equal(t, comp.Representatives, res.UniqRows)
	assert.Equal(t, []int{2}, res.Powers)
}
