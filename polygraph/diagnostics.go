// SPDX-License-Identifier: MIT
package polygraph

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/polygraph/matrix"
)

// checkNecessaryConditions logs whether the class representatives satisfy
// the pairwise and average-condition flip-flop properties, both necessary
// for a deceptive function to exist. It never fails the analysis.
//
// fullRange is false when fewer walk lengths than vertices were used; a
// failure may then be an artifact of the bound rather than of the graph.
func checkNecessaryConditions[T any](uniq *matrix.Dense[T], fullRange, exact bool, maxClasses int, logger zerolog.Logger) {
	classes := uniq.Rows()
	pairwise := PairwiseFlipFlopping(uniq)

	average, checked := true, false
	if classes > maxClasses {
		logger.Info().
			Int("classes", classes).
			Int("max_classes", maxClasses).
			Msg("Skipping average-condition check; exhaustive enumeration too large")
	} else {
		var err error
		average, err = AverageConditionFlipFlopping(uniq)
		if err != nil {
			logger.Info().Err(err).Msg("Skipping average-condition check")
			average = true
		} else {
			checked = true
		}
	}

	if pairwise && average {
		logger.Info().
			Int("classes", classes).
			Bool("average_checked", checked).
			Msg("Walk classes pass necessary flip-flop conditions")
		return
	}

	ev := logger.Warn().
		Int("classes", classes).
		Bool("pairwise", pairwise).
		Bool("average_condition", average).
		Bool("full_range", fullRange).
		Bool("exact", exact)
	if !fullRange {
		ev = ev.Str("hint", "walk lengths below vertex count; raise max power to rule out truncation")
	}
	ev.Msg("Graph fails necessary condition for flip-flopping")
}
