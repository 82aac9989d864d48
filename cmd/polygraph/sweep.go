// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polygraph/builder"
	"github.com/katalvlaran/polygraph/matrix"
	"github.com/katalvlaran/polygraph/polygraph"
)

// sweepFactor is a family whose i-th member multiplies the base prism.
type sweepFactor struct {
	name  string
	build func(i int) builder.Constructor
}

var sweepFactors = []sweepFactor{
	{"cycle", func(i int) builder.Constructor {
		if i < builder.MinCycleNodes {
			return builder.Path(i)
		}
		return builder.Cycle(i)
	}},
	{"complete", builder.Complete},
	{"hypercube", builder.Hypercube},
}

const minSweepSize = 2

type sweepEntry struct {
	Factor     string `yaml:"factor"`
	Size       int    `yaml:"size"`
	Vertices   int    `yaml:"vertices"`
	NumClasses int    `yaml:"num_classes"`
	Pairwise   bool   `yaml:"pairwise"`
	// AverageCondition is nil when the class count is too large to enumerate.
	AverageCondition *bool `yaml:"average_condition,omitempty"`
}

type sweepReport struct {
	Base    string       `yaml:"base"`
	Ring    string       `yaml:"ring"`
	Sizes   []int        `yaml:"sizes"`
	Entries []sweepEntry `yaml:"entries"`
}

func (a *app) newSweepCmd() *cobra.Command {
	var faces, layers, lo, hi int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate walk classes of pyramid-prism products with cycles, cliques and hypercubes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lo < minSweepSize || hi < lo {
				return fmt.Errorf("invalid size range %d..%d (want %d <= min <= max)", lo, hi, minSweepSize)
			}
			var (
				rep report
				err error
			)
			if a.cfg.Exact() {
				rep, err = sweep(a, matrix.BigInt, faces, layers, lo, hi)
			} else {
				rep, err = sweep(a, matrix.Float64, faces, layers, lo, hi)
			}
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), rep)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&faces, "faces", 4, "pyramid-prism faces")
	flags.IntVar(&layers, "layers", 0, "pyramid-prism middle layers")
	flags.IntVar(&lo, "min", minSweepSize, "smallest factor size")
	flags.IntVar(&hi, "max", 5, "largest factor size")

	return cmd
}

// sweep analyzes base □ factor(i) for every factor family and size.
func sweep[T any](a *app, ring matrix.Ring[T], faces, layers, lo, hi int) (*sweepReport, error) {
	base, err := builder.BuildGraph(nil, nil, builder.PyramidPrism(faces, layers))
	if err != nil {
		return nil, err
	}
	rep := &sweepReport{Base: fmt.Sprintf("pyramid-prism %d %d", faces, layers), Ring: ring.Name()}
	for i := lo; i <= hi; i++ {
		rep.Sizes = append(rep.Sizes, i)
	}

	for _, f := range sweepFactors {
		for _, i := range rep.Sizes {
			factor, err := builder.BuildGraph(nil, nil, f.build(i))
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", f.name, i, err)
			}
			g, err := builder.BuildGraph(nil, nil, builder.CartesianProduct(base, factor))
			if err != nil {
				return nil, err
			}
			res, err := polygraph.WalkClasses(g, ring, a.cfg, a.logger)
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", f.name, i, err)
			}

			w := res.Reduced()
			entry := sweepEntry{
				Factor:     f.name,
				Size:       i,
				Vertices:   g.VertexCount(),
				NumClasses: res.NumClasses,
				Pairwise:   polygraph.PairwiseFlipFlopping(w),
			}
			avg, err := polygraph.AverageConditionFlipFlopping(w)
			switch {
			case err == nil:
				entry.AverageCondition = &avg
			case !errors.Is(err, polygraph.ErrTooManyClasses):
				return nil, err
			}
			rep.Entries = append(rep.Entries, entry)
		}
	}

	return rep, nil
}

func (r *sweepReport) writeText(w io.Writer, s styles) {
	sections := []struct {
		title string
		cell  func(e sweepEntry) string
	}{
		{"number of walk classes", func(e sweepEntry) string { return strconv.Itoa(e.NumClasses) }},
		{"pairwise flip-flopping", func(e sweepEntry) string { return s.flag(e.Pairwise) }},
		{"average-condition flip-flopping", func(e sweepEntry) string {
			if e.AverageCondition == nil {
				return "n/a"
			}
			return s.flag(*e.AverageCondition)
		}},
	}

	headers := []string{"graph"}
	for _, size := range r.Sizes {
		headers = append(headers, strconv.Itoa(size))
	}
	for _, sec := range sections {
		fmt.Fprintln(w, s.title.Render(fmt.Sprintf("%s × factor: %s (%s)", r.Base, sec.title, r.Ring)))
		t := s.table(headers...)
		for k := 0; k < len(r.Entries); k += len(r.Sizes) {
			row := []string{r.Entries[k].Factor}
			for _, e := range r.Entries[k : k+len(r.Sizes)] {
				row = append(row, sec.cell(e))
			}
			t.Row(row...)
		}
		fmt.Fprintln(w, t.Render())
	}
}
