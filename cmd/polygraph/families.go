// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polygraph/builder"
	"github.com/katalvlaran/polygraph/core"
)

// target is a generated graph, with class representatives for composites.
type target struct {
	name      string
	graph     *core.Graph
	composite *builder.Composite
}

// family describes one generator reachable from the command line.
type family struct {
	params  string
	minArgs int
	maxArgs int // -1 for unbounded
	build   func(args []int, floats []float64, opts []builder.BuilderOption) (*target, error)
}

func simple(con func(args []int) builder.Constructor) func([]int, []float64, []builder.BuilderOption) (*target, error) {
	return func(args []int, _ []float64, opts []builder.BuilderOption) (*target, error) {
		g, err := builder.BuildGraph(nil, opts, con(args))
		if err != nil {
			return nil, err
		}

		return &target{graph: g}, nil
	}
}

var families = map[string]family{
	"path":     {"n", 1, 1, simple(func(a []int) builder.Constructor { return builder.Path(a[0]) })},
	"cycle":    {"n", 1, 1, simple(func(a []int) builder.Constructor { return builder.Cycle(a[0]) })},
	"complete": {"n", 1, 1, simple(func(a []int) builder.Constructor { return builder.Complete(a[0]) })},
	"star":     {"n", 1, 1, simple(func(a []int) builder.Constructor { return builder.Star(a[0]) })},
	"wheel":    {"n", 1, 1, simple(func(a []int) builder.Constructor { return builder.Wheel(a[0]) })},
	"spider":   {"degree length", 2, 2, simple(func(a []int) builder.Constructor { return builder.Spider(a[0], a[1]) })},
	"pyramid-prism": {"faces [layers]", 1, 2, simple(func(a []int) builder.Constructor {
		layers := 0
		if len(a) > 1 {
			layers = a[1]
		}
		return builder.PyramidPrism(a[0], layers)
	})},
	"hypercube":     {"dim", 1, 1, simple(func(a []int) builder.Constructor { return builder.Hypercube(a[0]) })},
	"orthobicupola": {"sides", 1, 1, simple(func(a []int) builder.Constructor { return builder.Orthobicupola(a[0]) })},
	"snowflake": {"flake inner outer", 3, 3, simple(func(a []int) builder.Constructor {
		return builder.SnowflakeCycle(a[0], a[1], a[2])
	})},
	"spider-torus": {"degree length copies...", 3, -1, func(a []int, _ []float64, opts []builder.BuilderOption) (*target, error) {
		c, err := builder.SpiderTorus(a[0], a[1], a[2:], opts...)
		if err != nil {
			return nil, err
		}
		return &target{graph: c.Graph, composite: c}, nil
	}},
	"random": {"n p", 2, 2, func(a []int, f []float64, opts []builder.BuilderOption) (*target, error) {
		g, err := builder.BuildGraph(nil, opts, builder.RandomSparse(a[0], f[1]))
		if err != nil {
			return nil, err
		}
		return &target{graph: g}, nil
	}},
}

// floatParams names the families whose i-th parameter is a probability.
var floatParams = map[string]int{"random": 1}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// buildTarget parses "<family> [params...]" and generates the graph.
func (a *app) buildTarget(args []string) (*target, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing family (one of: %s)", strings.Join(familyNames(), ", "))
	}
	name, params := args[0], args[1:]
	fam, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("unknown family %q (one of: %s)", name, strings.Join(familyNames(), ", "))
	}
	if len(params) < fam.minArgs || (fam.maxArgs >= 0 && len(params) > fam.maxArgs) {
		return nil, fmt.Errorf("%s takes: %s", name, fam.params)
	}

	ints := make([]int, len(params))
	floats := make([]float64, len(params))
	for i, p := range params {
		if idx, ok := floatParams[name]; ok && idx == i {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: parameter %d: %w", name, i+1, err)
			}
			floats[i] = f
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %d: %w", name, i+1, err)
		}
		ints[i] = n
	}

	tgt, err := fam.build(ints, floats, []builder.BuilderOption{builder.WithSeed(a.seed)})
	if err != nil {
		return nil, err
	}
	tgt.name = strings.Join(args, " ")

	return tgt, nil
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List graph families and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			t := newStyles(w).table("family", "parameters")
			for _, name := range familyNames() {
				t.Row(name, families[name].params)
			}
			_, err := fmt.Fprintln(w, t.Render())
			return err
		},
	}
}
