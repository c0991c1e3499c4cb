// Package app wires the lcsim command: configuration, logging, the
// simulation itself and the output rows.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lightcurve/internal/config"
	"github.com/katalvlaran/lightcurve/internal/logging"
	"github.com/katalvlaran/lightcurve/internal/report"
	"github.com/katalvlaran/lightcurve/lightcurve"
	"github.com/katalvlaran/lightcurve/spectrum"
	"github.com/spf13/cobra"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
)

// Run executes lcsim with argv (without the program name), writing rows to
// stdout and logs to stderr. It returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stderr)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("lcsim failed", "err", err)
		return ExitError
	}

	return ExitOK
}

// NewRootCommand builds the cobra command. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "lcsim",
		Short: "Simulate light curves with a prescribed power spectrum (Timmer & Koenig 1995)",
		Long: `lcsim draws synthetic light curves whose power spectral density follows
an unbroken, sharply broken or slowly bending power law, and prints them as
"time<TAB>value" rows.

Example: lcsim --n 4096 --dt 0.5 --mean 100 --model slow --params 1,0.01,0,2,0 --seed 42 --count 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			log, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			return simulate(cmd.Context(), cfg, log.With("run_id", uuid.NewString()), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "optional config file (yaml, toml or json)")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

// simulate runs one request (count == 1) or a batch and writes the rows.
func simulate(ctx context.Context, cfg config.Config, log *slog.Logger, out io.Writer) error {
	params, err := config.ParseParams(cfg.Params)
	if err != nil {
		return err
	}
	model, err := spectrum.Parse(cfg.Model, params)
	if err != nil {
		return err
	}
	req := lightcurve.Request{N: cfg.N, Dt: cfg.Dt, Mean: cfg.Mean, Model: model}

	log.Debug("simulation requested",
		"n", cfg.N, "dt", cfg.Dt, "mean", cfg.Mean,
		"model", model.Kind().String(), "params", model.Params(),
		"seed", cfg.Seed, "count", cfg.Count)

	start := time.Now()
	var curves [][]float64
	switch {
	case cfg.Count == 1:
		var opts []lightcurve.Option
		if cfg.Seed != 0 {
			opts = append(opts, lightcurve.WithSeed(cfg.Seed))
		}
		lc, err := lightcurve.Simulate(req, opts...)
		if err != nil {
			return err
		}
		curves = [][]float64{lc}
	default:
		if cfg.Workers < 0 {
			return fmt.Errorf("workers=%d: %w", cfg.Workers, lightcurve.ErrInvalidArgument)
		}
		curves, err = lightcurve.SimulateBatch(ctx, req, cfg.Count,
			lightcurve.WithBatchSeed(cfg.Seed), lightcurve.WithWorkers(cfg.Workers))
		if err != nil {
			return err
		}
	}
	log.Info("simulation done", "curves", len(curves), "n", cfg.N, "elapsed", time.Since(start))

	if cfg.Summary {
		for i, lc := range curves {
			s, err := report.Summarize(lc)
			if err != nil {
				return err
			}
			log.Info("curve summary", "curve", i, "mean", s.Mean, "stddev", s.StdDev, "min", s.Min, "max", s.Max)
		}
	}

	return report.WriteCurves(out, lightcurve.Times(cfg.N, cfg.Dt), curves)
}
