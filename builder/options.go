// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// options.go - functional options for BuildGraph and the composite builders.
//
// Option constructors panic on nil arguments: passing nil is a programming
// error, not a runtime condition.
package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand sets the RNG used by stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the weight function used on weighted graphs.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
