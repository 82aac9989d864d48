// SPDX-License-Identifier: MIT
// Package polygraph decides whether a graph admits a deceptive function:
// a spectral function whose matrix diagonal cannot tell structurally
// different vertices apart.
//
// Pipeline:
//
//	res, err := polygraph.WalkClasses(g, matrix.Float64, cfg, logger)
//	//   W[i,k]  = closed walks of length k+2 at vertex i (DiagonalMatrix)
//	//   classes = vertices with identical W rows, labeled in first-seen order
//	prof, _ := polygraph.FlipFlopProfile(res.Reduced())
//	pos := polygraph.PositiveLinearSystemCheck(res, cfg, logger)
//	neg, _ := polygraph.NonnegativeLinearSystemCheck(res, cfg, logger)
//	fn, _ := polygraph.NewDeceptiveFunction(neg)
//
// Arithmetic:
//
//	The ring argument picks the element type. matrix.Float64 is fast and
//	exact only while walk counts stay below 2^53 (see PowerBound);
//	matrix.BigInt is exact at any length. Flip-flop predicates compare in
//	the same ring. Spectral steps and linear programs run in float64.
//
// Composite families whose classes are known by construction use
// RepresentativeWalkClasses instead of WalkClasses.
//
// Logging:
//
//	Every entry point takes a zerolog.Logger. Info reports progress; Warn
//	reports precision risk, failed necessary flip-flop conditions and expm
//	fallbacks. Pass zerolog.Nop() to silence. Config.CreateLogger builds a
//	console logger at logging.level.
package polygraph
