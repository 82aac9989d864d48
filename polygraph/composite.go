// SPDX-License-Identifier: MIT
// Package: polygraph
//
// composite.go — walk classes for graphs whose classes are known up front.
//
// Composite families (e.g. spider tori) are built so that one vertex per
// class is known to the generator. Scanning every row is then unnecessary:
// the classes are the representatives, and the walk bound is the largest
// copy count.
package polygraph

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/polygraph/builder"
	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/matrix"
)

// CompositeWalkClasses runs RepresentativeWalkClasses on a generated
// composite family.
func CompositeWalkClasses[T any](c *builder.Composite, ring matrix.Ring[T], cfg *Config, logger zerolog.Logger) (*Result[T], error) {
	if c == nil {
		return nil, polygraphErrorf(opComposite, matrix.ErrGraphNil)
	}

	return RepresentativeWalkClasses(c.Graph, c.Representatives, c.Copies, ring, cfg, logger)
}

// RepresentativeWalkClasses builds a Result for g from known class
// representatives.
//
// Contract:
//   - len(representatives) == len(copies)+1; representatives[i] is the
//     vertex index (insertion order) standing for class i.
//   - MaxPower = max(copies); UniqMatrix = W at the representative rows.
//   - Classes[i] = [representative i]; only representatives are annotated.
//   - EigMatrix is nil; downstream checks fall back to UniqMatrix.
//   - The diagnostic always reports full_range=true.
//
// Errors:
//   - ErrBadRepresentative for a size mismatch or out-of-range index.
//   - ErrPowerTooSmall when max(copies) < 2.
func RepresentativeWalkClasses[T any](
	g *core.Graph,
	representatives, copies []int,
	ring matrix.Ring[T],
	cfg *Config,
	logger zerolog.Logger,
) (*Result[T], error) {
	cfg = orDefault(cfg)
	if g == nil {
		return nil, polygraphErrorf(opComposite, matrix.ErrGraphNil)
	}
	if len(copies) == 0 || len(representatives) != len(copies)+1 {
		return nil, polygraphErrorf(opComposite, ErrBadRepresentative)
	}
	logger = logger.With().Str("component", "composite_classes").Str("ring", ring.Name()).Logger()

	a, ids, err := matrix.Adjacency(g, ring)
	if err != nil {
		return nil, polygraphErrorf(opComposite, err)
	}
	for _, r := range representatives {
		if r < 0 || r >= len(ids) {
			return nil, polygraphErrorf(opComposite, ErrBadRepresentative)
		}
	}

	maxPower := slices.Max(copies)
	sparse := cfg.Sparse() && !ring.Exact()
	w, err := DiagonalMatrix(a, maxPower, sparse)
	if err != nil {
		return nil, polygraphErrorf(opComposite, err)
	}
	uniq, err := w.SelectRows(representatives)
	if err != nil {
		return nil, polygraphErrorf(opComposite, err)
	}

	classes := make([][]string, len(representatives))
	labels := make([]int, len(ids))
	for i := range labels {
		labels[i] = core.NoCategory
	}
	for label, r := range representatives {
		classes[label] = []string{ids[r]}
		labels[r] = label
		if err = g.SetCategory(ids[r], label); err != nil {
			return nil, polygraphErrorf(opComposite, err)
		}
	}

	res := &Result[T]{
		NumClasses: len(copies) + 1,
		Classes:    classes,
		Labels:     labels,
		Vertices:   ids,
		Adjacency:  a,
		DiagMatrix: w,
		Powers:     walkLengths(maxPower),
		UniqRows:   slices.Clone(representatives),
		UniqMatrix: uniq,
		Graph:      g,
		MaxPower:   maxPower,
		FullRange:  true,
		Exact:      ring.Exact(),
	}

	logger.Info().
		Int("vertices", len(ids)).
		Int("max_power", maxPower).
		Int("classes", res.NumClasses).
		Msg("Computed representative walk classes")
	checkNecessaryConditions(uniq, true, res.Exact, cfg.DiagnosticsMaxClasses(), logger)

	return res, nil
}
