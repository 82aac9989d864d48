// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX..., XWeightFn).
package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, degree, length, sides)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a structurally invalid parameter other than a
// plain minimum size, e.g. a copy list whose length does not match the
// spider length, or a ring of fewer than two copies.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor found no RNG in
// the resolved builderConfig.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not complete a
// topology, e.g. a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method name and a formatted detail,
// preserving err for errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
