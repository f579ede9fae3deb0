// SPDX-License-Identifier: MIT

// Package cli wires the regpoly command tree: configuration, logging and the
// describe / sequence / best / compare subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/regpoly/internal/config"
	"github.com/katalvlaran/regpoly/internal/logging"
	"github.com/katalvlaran/regpoly/internal/report"
)

// app is the state shared by every subcommand once the root pre-run resolved it.
type app struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer
}

func (a *app) renderer(opts ...report.Option) *report.Renderer {
	return report.New(append(report.FromConfig(a.cfg), opts...)...)
}

// fail logs err and wraps it with the command name.
func (a *app) fail(cmd string, err error) error {
	a.log.Error("command failed", zap.String("cmd", cmd), zap.Error(err))
	return fmt.Errorf("%s: %w", cmd, err)
}

// Execute runs the root command against the process stdio and exits 1 on error.
func Execute() {
	cmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Reports go to out; logs and cobra
// diagnostics go to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop(), out: out}

	var (
		configPath string
		output     string
		precision  int
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          "regpoly",
		Short:        "regpoly — regular polygon geometry with lazy, cached properties",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log = logging.New(errOut, debug)

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return a.fail("config", err)
				}
				cfg = loaded
			}
			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("precision") {
				cfg.Precision = precision
			}
			if err := cfg.Validate(); err != nil {
				return a.fail("config", err)
			}
			a.cfg = cfg

			a.log.Debug("config resolved",
				zap.String("file", configPath),
				zap.Float64("circumradius", cfg.Circumradius),
				zap.Int("max_vertices", cfg.MaxVertices),
				zap.Int("precision", cfg.Precision),
				zap.String("output", cfg.Output),
			)

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logging.Sync(a.log)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (circumradius, max_vertices, precision, output)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", config.FormatTable, "output format: table or yaml")
	cmd.PersistentFlags().IntVar(&precision, "precision", 5, "decimals printed for derived values")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		describeCmd(a),
		sequenceCmd(a),
		bestCmd(a),
		compareCmd(a),
	)

	return cmd
}
