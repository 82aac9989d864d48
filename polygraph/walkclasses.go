// SPDX-License-Identifier: MIT
// Package: polygraph
//
// walkclasses.go — partition vertices by their closed-walk profiles.
package polygraph

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/linalg"
	"github.com/katalvlaran/polygraph/matrix"
)

// WalkClasses partitions the vertices of g into walk classes: two vertices
// share a class iff they have the same number of closed walks of every
// length 2..p.
//
// Implementation:
//   - Stage 1: Adjacency over ring, rows in vertex insertion order.
//   - Stage 2: Walk-length bound from cfg (walk.max_power, 0 = heuristic).
//   - Stage 3: Walk matrix W via DiagonalMatrix (CSR when walk.sparse and
//     the ring is inexact; exact rings always multiply densely).
//   - Stage 4: Scan rows in order; a row equal to an earlier one reuses its
//     label, otherwise it opens the next label. Each vertex is annotated
//     with its label through g.SetCategory.
//   - Stage 5: UniqMatrix = first row of each class; EigMatrix keeps the
//     first min(distinct eigenvalues, cols) columns, eigenvalues rounded
//     to walk.eigen_decimals places.
//   - Stage 6: Log the pairwise/average-condition diagnostic.
//
// The ring selects the arithmetic: matrix.Float64 for speed, matrix.BigInt
// for exact counts at any walk length.
//
// Errors:
//   - matrix.ErrGraphNil for a nil graph.
//   - ErrEmptyGraph for a graph without vertices.
//   - ErrPowerTooSmall for an explicit bound of 1.
//   - linalg.ErrEigenFailed if the spectrum cannot be computed.
func WalkClasses[T any](g *core.Graph, ring matrix.Ring[T], cfg *Config, logger zerolog.Logger) (*Result[T], error) {
	cfg = orDefault(cfg)
	if g == nil {
		return nil, polygraphErrorf(opWalkClasses, matrix.ErrGraphNil)
	}
	if g.VertexCount() == 0 {
		return nil, polygraphErrorf(opWalkClasses, ErrEmptyGraph)
	}
	logger = logger.With().Str("component", "walk_classes").Str("ring", ring.Name()).Logger()

	a, ids, err := matrix.Adjacency(g, ring)
	if err != nil {
		return nil, polygraphErrorf(opWalkClasses, err)
	}
	n := len(ids)

	maxPower := powerBound(g, cfg.MaxPower(), cfg.SafePower(), logger)
	sparse := cfg.Sparse()
	if sparse && ring.Exact() {
		logger.Info().Msg("Sparse multiplication is not used with exact arithmetic")
		sparse = false
	}

	w, err := DiagonalMatrix(a, maxPower, sparse)
	if err != nil {
		return nil, polygraphErrorf(opWalkClasses, err)
	}

	labels, firsts := w.RowGroups()
	classes := make([][]string, len(firsts))
	for i, label := range labels {
		classes[label] = append(classes[label], ids[i])
		if err = g.SetCategory(ids[i], label); err != nil {
			return nil, polygraphErrorf(opWalkClasses, err)
		}
	}

	uniq, err := w.SelectRows(firsts)
	if err != nil {
		return nil, polygraphErrorf(opWalkClasses, err)
	}

	values, err := linalg.Eigenvalues(matrix.ToFloat64(a))
	if err != nil {
		return nil, polygraphErrorf(opWalkClasses, err)
	}
	numValues := linalg.CountDistinct(values, cfg.EigenDecimals())
	eig, err := uniq.Slice(0, len(firsts), 0, min(numValues, uniq.Cols()))
	if err != nil {
		return nil, polygraphErrorf(opWalkClasses, err)
	}

	res := &Result[T]{
		NumClasses:     len(firsts),
		Classes:        classes,
		Labels:         labels,
		Vertices:       ids,
		Adjacency:      a,
		DiagMatrix:     w,
		Powers:         walkLengths(maxPower),
		UniqRows:       firsts,
		UniqMatrix:     uniq,
		EigMatrix:      eig,
		NumEigenvalues: numValues,
		Graph:          g,
		MaxPower:       maxPower,
		FullRange:      maxPower >= n,
		Exact:          ring.Exact(),
	}

	logger.Info().
		Int("vertices", n).
		Int("max_power", maxPower).
		Int("classes", res.NumClasses).
		Int("eigenvalues", numValues).
		Msg("Computed walk classes")
	checkNecessaryConditions(uniq, res.FullRange, res.Exact, cfg.DiagnosticsMaxClasses(), logger)

	return res, nil
}
