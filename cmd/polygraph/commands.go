// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polygraph/matrix"
	"github.com/katalvlaran/polygraph/polygraph"
)

const (
	kindPositive    = "positive"
	kindNonnegative = "nonnegative"

	subsetNone    = "none"
	subsetMinimal = "minimal"
)

// psdTol absorbs LP round-off when testing g(λ) ≥ 0 on the spectrum.
const psdTol = 1e-9

// analyze runs the walk-class partition in ring, using representatives
// when the family provides them.
func analyze[T any](a *app, ring matrix.Ring[T], tgt *target) (*polygraph.Result[T], error) {
	if tgt.composite != nil {
		return polygraph.CompositeWalkClasses(tgt.composite, ring, a.cfg, a.logger)
	}

	return polygraph.WalkClasses(tgt.graph, ring, a.cfg, a.logger)
}

// dispatch builds the target and runs fn in the configured ring.
func dispatch(a *app, cmd *cobra.Command, args []string,
	exact func(*target) (report, error),
	fast func(*target) (report, error),
) error {
	tgt, err := a.buildTarget(args)
	if err != nil {
		return err
	}
	run := fast
	if a.cfg.Exact() {
		run = exact
	}
	rep, err := run(tgt)
	if err != nil {
		return err
	}

	return a.render(cmd.OutOrStdout(), rep)
}

func (a *app) newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <family> [params...]",
		Short: "Partition a graph into walk classes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(a, cmd, args,
				func(t *target) (report, error) { return classes(a, matrix.BigInt, t) },
				func(t *target) (report, error) { return classes(a, matrix.Float64, t) },
			)
		},
	}
}

func classes[T any](a *app, ring matrix.Ring[T], tgt *target) (report, error) {
	res, err := analyze(a, ring, tgt)
	if err != nil {
		return nil, err
	}

	return newClassesReport(tgt, res)
}

func (a *app) newFlipFlopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flipflop <family> [params...]",
		Short: "Evaluate the flip-flop conditions and the minimal column subset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(a, cmd, args,
				func(t *target) (report, error) { return flipFlop(a, matrix.BigInt, t) },
				func(t *target) (report, error) { return flipFlop(a, matrix.Float64, t) },
			)
		},
	}
}

func flipFlop[T any](a *app, ring matrix.Ring[T], tgt *target) (report, error) {
	res, err := analyze(a, ring, tgt)
	if err != nil {
		return nil, err
	}
	w := res.Reduced()
	prof, err := polygraph.FlipFlopProfile(w)
	if err != nil {
		return nil, err
	}
	rep := &flipFlopReport{
		Family:     tgt.name,
		Ring:       ring.Name(),
		NumClasses: res.NumClasses,
		Powers:     res.ReducedPowers(),
		Profile:    prof,
	}
	if _, cols, err := polygraph.MinimalSubset(w); err != nil {
		rep.Minimal.Error = err.Error()
	} else {
		rep.Minimal.Columns = cols
		for _, c := range cols {
			rep.Minimal.Powers = append(rep.Minimal.Powers, rep.Powers[c])
		}
	}

	return rep, nil
}

func (a *app) newCheckCmd() *cobra.Command {
	var (
		subset string
		powers []int
	)
	cmd := &cobra.Command{
		Use:       "check positive|nonnegative <family> [params...]",
		Short:     "Solve the linear feasibility system for a deceptive function",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{kindPositive, kindNonnegative},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != kindPositive && kind != kindNonnegative {
				return fmt.Errorf("unknown check %q (want %s or %s)", kind, kindPositive, kindNonnegative)
			}
			opt, err := subsetOption(subset, powers)
			if err != nil {
				return err
			}
			return dispatch(a, cmd, args[1:],
				func(t *target) (report, error) { return check(a, matrix.BigInt, t, kind, opt) },
				func(t *target) (report, error) { return check(a, matrix.Float64, t, kind, opt) },
			)
		},
	}
	cmd.Flags().StringVar(&subset, "subset", subsetNone, "nonnegative check columns: none|minimal")
	cmd.Flags().IntSliceVar(&powers, "powers", nil, "nonnegative check walk lengths (overrides --subset)")

	return cmd
}

func subsetOption(subset string, powers []int) (polygraph.SubsetOption, error) {
	switch {
	case len(powers) > 0:
		return polygraph.PowerSubset(powers...), nil
	case subset == subsetMinimal:
		return polygraph.MinimalSubsetColumns(), nil
	case subset == subsetNone:
		return polygraph.NoSubset(), nil
	default:
		return nil, fmt.Errorf("unknown subset %q (want %s or %s)", subset, subsetNone, subsetMinimal)
	}
}

func check[T any](a *app, ring matrix.Ring[T], tgt *target, kind string, opt polygraph.SubsetOption) (report, error) {
	res, err := analyze(a, ring, tgt)
	if err != nil {
		return nil, err
	}
	rep := &checkReport{Family: tgt.name, Kind: kind, NumClasses: res.NumClasses}
	if kind == kindPositive {
		rep.LPResult = polygraph.PositiveLinearSystemCheck(res, a.cfg, a.logger)
		return rep, nil
	}

	out, err := polygraph.NonnegativeLinearSystemCheck(res, a.cfg, a.logger, opt)
	if err != nil {
		return nil, err
	}
	rep.LPResult = out.LPResult
	rep.Columns = out.Columns
	rep.Offsets = out.Offsets
	rep.Gamma = out.Gamma
	rep.FinalDiagonal = out.FinalDiagonal()

	return rep, nil
}

func (a *app) newDeceptiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deceptive <family> [params...]",
		Short: "Construct a deceptive function and test it on the spectrum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(a, cmd, args,
				func(t *target) (report, error) { return deceptive(a, matrix.BigInt, t) },
				func(t *target) (report, error) { return deceptive(a, matrix.Float64, t) },
			)
		},
	}
}

func deceptive[T any](a *app, ring matrix.Ring[T], tgt *target) (report, error) {
	res, err := analyze(a, ring, tgt)
	if err != nil {
		return nil, err
	}
	out, err := polygraph.NonnegativeLinearSystemCheck(res, a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	rep := &deceptiveReport{Family: tgt.name, Solved: out.Success, Message: out.Message}
	if !out.Success {
		return rep, nil
	}

	fn, err := polygraph.NewDeceptiveFunction(out)
	if err != nil {
		return nil, err
	}
	minValue, argmin, err := polygraph.MinOverEigenvalues(fn, res.Adjacency)
	if err != nil {
		return nil, err
	}
	rep.Coefficients = fn.Coefficients
	rep.Powers = fn.Powers
	rep.Gamma = out.Gamma
	rep.MinValue = minValue
	rep.ArgMin = argmin
	rep.PositiveSemidefinite = minValue >= -psdTol

	return rep, nil
}
