// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polygraph/polygraph"
)

const (
	outputYAML = "yaml"
	outputText = "text"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	cfg        *polygraph.Config
	logger     zerolog.Logger
	configPath string
	verbose    bool
	output     string
	seed       int64
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: polygraph.NewConfig()}

	root := &cobra.Command{
		Use:   "polygraph",
		Short: "Walk-class analysis of graph families",
		Long: `polygraph partitions the vertices of a generated graph by their closed-walk
counts, evaluates the flip-flop conditions on the resulting classes and
solves the linear systems that certify a deceptive function.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (yaml)")
	flags.Bool("exact", false, "count walks with arbitrary-precision integers")
	flags.Bool("sparse", false, "multiply through a sparse adjacency (float mode only)")
	flags.Int("max-power", 0, "largest walk length (0 picks a bound from the max degree)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress at info level")
	flags.StringVarP(&a.output, "output", "o", outputYAML, "report format: yaml|text")
	flags.Int64Var(&a.seed, "seed", 1, "seed for random families")

	v := a.cfg.Viper()
	for key, flag := range map[string]string{
		"walk.exact":     "exact",
		"walk.sparse":    "sparse",
		"walk.max_power": "max-power",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.newClassesCmd(),
		a.newFlipFlopCmd(),
		a.newCheckCmd(),
		a.newDeceptiveCmd(),
		a.newSweepCmd(),
		newFamiliesCmd(),
	)

	return root
}

// setup loads the config file, applies verbosity and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		if err := a.cfg.LoadFromFile(a.configPath); err != nil {
			return fmt.Errorf("load config %s: %w", a.configPath, err)
		}
	}
	if a.verbose {
		a.cfg.Set("logging.level", "info")
	}
	if a.output != outputYAML && a.output != outputText {
		return fmt.Errorf("unknown output format %q (want %s or %s)", a.output, outputYAML, outputText)
	}
	a.logger = a.cfg.CreateLoggerTo(cmd.ErrOrStderr())

	return nil
}
