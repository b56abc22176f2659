// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/stochastic"
	"github.com/katalvlaran/stochastic/internal/config"
	"github.com/katalvlaran/stochastic/internal/logging"
	"github.com/katalvlaran/stochastic/internal/report"
	"github.com/katalvlaran/stochastic/markov"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	formatFlag    string
	logLevelFlag  string
	logFileFlag   string
	toleranceFlag float64
	maxIterFlag   int

	// Resolved in PersistentPreRunE
	cfg          config.Config
	logger       = logging.NewNop()
	closeLog     = func() error { return nil }
	outputFormat = report.FormatAuto
)

var rootCmd = &cobra.Command{
	Use:   "stochastic",
	Short: "Markov chain, hidden Markov model and queueing analytics",
	Long: `stochastic estimates a Markov chain from a state sequence and reports its
steady state, recurrence, first-passage and absorption times; decodes hidden
Markov models with Forward and Viterbi; and evaluates M/M/1 queues.

Environment:
  STOCHASTIC_LOG_LEVEL        DEBUG, INFO, WARN or ERROR (default WARN)
  STOCHASTIC_LOG_FILE         also write JSON logs to this file
  STOCHASTIC_TOLERANCE        power-iteration tolerance (default 1e-8)
  STOCHASTIC_MAX_ITER         power-iteration cap (default 1000)
  STOCHASTIC_UNSEEN_EMISSION  HMM probability of an unseen symbol (default 1e-6)`,
	Version:       stochastic.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip configuration for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = config.ParseLogLevel(logLevelFlag)
		}
		if flags.Changed("log-file") {
			cfg.LogFile = logFileFlag
		}
		if flags.Changed("tolerance") {
			if math.IsNaN(toleranceFlag) || math.IsInf(toleranceFlag, 0) || toleranceFlag <= 0 {
				return fmt.Errorf("--tolerance must be a positive finite number, got %g", toleranceFlag)
			}
			cfg.Tolerance = toleranceFlag
		}
		if flags.Changed("max-iter") {
			if maxIterFlag < 1 {
				return fmt.Errorf("--max-iter must be at least 1, got %d", maxIterFlag)
			}
			cfg.MaxIter = maxIterFlag
		}
		if outputFormat, err = report.ParseFormat(formatFlag); err != nil {
			return err
		}

		logger, closeLog = logging.New(cfg.LogLevel, cfg.LogFile)
		logger.Debug("configuration loaded",
			"command", cmd.Name(),
			"tolerance", cfg.Tolerance,
			"max_iter", cfg.MaxIter,
			"unseen_emission", cfg.UnseenEmission,
			"format", outputFormat,
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		_ = closeLog()
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&formatFlag, "format", "f", string(report.FormatAuto), "output format: auto, markdown or json")
	pf.StringVar(&logLevelFlag, "log-level", "", "log level (overrides STOCHASTIC_LOG_LEVEL)")
	pf.StringVar(&logFileFlag, "log-file", "", "JSON log file (overrides STOCHASTIC_LOG_FILE)")
	pf.Float64Var(&toleranceFlag, "tolerance", 0, "power-iteration tolerance (overrides STOCHASTIC_TOLERANCE)")
	pf.IntVar(&maxIterFlag, "max-iter", 0, "power-iteration cap (overrides STOCHASTIC_MAX_ITER)")
}

// printer returns a report printer on the command's output.
func printer(cmd *cobra.Command) (*report.Printer, error) {
	return report.NewPrinter(cmd.OutOrStdout(), outputFormat)
}

// logConvergence warns when a steady state hit the iteration cap.
func logConvergence(what string, d *markov.Distribution) {
	c := d.Convergence
	if !c.Converged {
		logger.Warn(what+" did not converge",
			"iterations", c.Iterations,
			"residual", c.Residual,
			"tolerance", cfg.Tolerance,
		)
		return
	}
	logger.Debug(what+" converged", "iterations", c.Iterations, "residual", c.Residual)
}
