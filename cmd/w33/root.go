// SPDX-License-Identifier: MIT
// Command w33 builds and verifies W(3,3) and prints or stores what it finds.
//
//	w33 verify
//	w33 report --format yaml --detailed
//	w33 spectrum | lines | k4
//	w33 catalog put|get|list
//
// Settings come from --config (YAML), W33_* environment variables and
// defaults; see package config.
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/w33"
	"github.com/katalvlaran/w33/config"
	"github.com/katalvlaran/w33/logging"
)

// app carries the initialized dependencies through the command tree.
type app struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

type rootOptions struct {
	configPath string
	logLevel   string
}

// newRootCommand assembles the command tree writing to out.
func newRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:   "w33",
		Short: "Build and verify the symplectic polar graph W(3,3)",
		Long: "w33 constructs SRG(40,12,2,4) from the points of PG(3,3) and from the\n" +
			"40 Witting vectors, verifies both, and reports lines, K4 components,\n" +
			"the adjacency spectrum and the automorphism group order.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(opts)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newVerifyCmd(a),
		newReportCmd(a),
		newSpectrumCmd(a),
		newLinesCmd(a),
		newK4Cmd(a),
		newCatalogCmd(a),
	)
	return cmd
}

// init loads configuration and builds the logger.
func (a *app) init(opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// buildOptions translates the loaded configuration into Build options.
func (a *app) buildOptions() []w33.Option {
	opts := []w33.Option{
		w33.WithTolerance(a.cfg.Tolerance.Orthogonality),
		w33.WithJacobiTolerance(a.cfg.Tolerance.Jacobi),
		w33.WithSpectrumTolerance(a.cfg.Tolerance.Spectrum),
		w33.WithEigenIterations(a.cfg.Eigen.MaxIterations),
		w33.WithLogger(a.log),
	}
	if !a.cfg.Group.Enabled {
		opts = append(opts, w33.WithoutGroup())
	}
	return opts
}

// build runs the pipeline with the configured options.
func (a *app) build(ctx context.Context) (*w33.Configuration, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := w33.Build(ctx, a.buildOptions()...)
	if err != nil {
		a.log.Error("build failed", zap.Error(err))
		return nil, err
	}
	a.log.Info("build complete", zap.Stringer("params", c.Params()))
	return c, nil
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
