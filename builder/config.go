// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// config.go - resolved builder configuration.
package builder

import (
	"math/rand"

	"github.com/katalvlaran/polygraph/core"
)

// defaultSeed keeps stochastic constructors reproducible when no RNG is given.
const defaultSeed int64 = 1

// builderConfig holds the knobs every Constructor may consult.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults:
// decimal IDs, weight DefaultEdgeWeight, RNG seeded with defaultSeed.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeWeight returns the weight for the next edge of g: cfg.weightFn for
// weighted graphs, DefaultEdgeWeight otherwise.
func (cfg builderConfig) edgeWeight(g *core.Graph) int64 {
	if g.Weighted() {
		return cfg.weightFn(cfg.rng)
	}

	return DefaultEdgeWeight
}
