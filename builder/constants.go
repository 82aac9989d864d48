// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodSpider is the canonical name for the Spider constructor.
	MethodSpider = "Spider"
	// MethodSpiderTorus is the canonical name for the SpiderTorus builder.
	MethodSpiderTorus = "SpiderTorus"
	// MethodPyramidPrism is the canonical name for the PyramidPrism constructor.
	MethodPyramidPrism = "PyramidPrism"
	// MethodOrthobicupola is the canonical name for the Orthobicupola constructor.
	MethodOrthobicupola = "Orthobicupola"
	// MethodSnowflakeCycle is the canonical name for the SnowflakeCycle constructor.
	MethodSnowflakeCycle = "SnowflakeCycle"
	// MethodHypercube is the canonical name for the Hypercube constructor.
	MethodHypercube = "Hypercube"
	// MethodCartesianProduct is the canonical name for the CartesianProduct constructor.
	MethodCartesianProduct = "CartesianProduct"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a hub plus a 3-cycle rim.
const MinWheelNodes = 4

// MinCompleteNodes is the single-vertex K_1.
const MinCompleteNodes = 1

// MinSpiderDegree is the smallest arm count of a spider.
const MinSpiderDegree = 1

// MinSpiderLength is the smallest arm length of a spider.
const MinSpiderLength = 1

// MinRingCopies is the smallest ring of copies; two copies are joined by a
// single link, larger rings close into cycles.
const MinRingCopies = 2

// MinPrismFaces is the smallest polygon for prism and cupola rings.
const MinPrismFaces = 3

// MinFlakeSize is the smallest snowflake petal count (a 4-cycle petal).
const MinFlakeSize = 2

// MinHypercubeDim is the single edge Q_1.
const MinHypercubeDim = 1

// MaxHypercubeDim keeps 2^dim vertices addressable by the dense walk matrix.
const MaxHypercubeDim = 20

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse p.
const MaxProbability = 1.0
