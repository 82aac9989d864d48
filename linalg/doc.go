// SPDX-License-Identifier: MIT
// Package linalg holds the spectral helpers used by walk-class analysis:
// symmetric eigendecomposition (gonum EigenSym with a Jacobi fallback),
// distinct-eigenvalue counting at a fixed rounding, and the matrix
// exponential with an eigendecomposition fallback.
//
// All routines take matrix.Dense[float64]; exact-mode callers convert with
// matrix.ToFloat64 first, since spectra are inherently floating point.
package linalg
