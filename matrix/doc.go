// SPDX-License-Identifier: MIT
// Package matrix offers the numeric containers behind walk-class analysis.
//
// The matrix package provides:
//
//   - Ring[T]: the arithmetic capability. Float64 is the fast IEEE path,
//     BigInt the exact arbitrary-precision path. Kernels are generic over
//     the ring, so selecting exact mode is selecting an element type.
//   - Dense[T]: row-major dense matrix with checked At/Set, row views,
//     row/column selection, Mul (gonum BLAS for float64), and row grouping
//     by xxhash digest plus exact comparison (RowGroups).
//   - ToCSR, DiagOf: hand float adjacency to james-bowman/sparse for the
//     sparse walk-count path.
//   - Adjacency: the symmetric adjacency matrix of a core.Graph, rows in
//     vertex insertion order.
//   - gonum bridges: ToGonum, FromGonum, ToSymDense.
//
// Matrices are best for the small-to-medium graphs this module targets,
// where O(V²) memory is acceptable.
package matrix
