// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//   - On graphs created WithLoops, each diagonal pair {i,i} is also trialed.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices 0..n-1 before sampling.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Trial order is i asc, j asc; fixed seed ⇒ identical graph.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return builderErrorf(MethodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomSparseVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}
		if err := addVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		first := 1
		if g.Looped() {
			first = 0
		}
		for i := 0; i < n; i++ {
			for j := i + first; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err := link(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial draws one Bernoulli(p) outcome; p ∈ {0,1} never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
