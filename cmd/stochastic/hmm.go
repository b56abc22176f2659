// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stochastic/hmm"
	"github.com/katalvlaran/stochastic/internal/modelfile"
	"github.com/katalvlaran/stochastic/internal/report"
	"github.com/spf13/cobra"
)

var (
	hmmModel  string
	hmmObs    string
	hmmUnseen float64
)

var hmmCmd = &cobra.Command{
	Use:   "hmm [OBSERVATION...]",
	Short: "Decode an observation sequence with a hidden Markov model",
	Long: `Compute the Forward likelihood, the Viterbi path and the hidden steady state
of an observation sequence.

Without --model the built-in policy model is used: hidden states Strict Policy,
Moderate Policy and Normal Mobility observed through Low, Moderate and High
Mobility. A model file is YAML or JSON with states, start, transition and
emission keys.

Examples:
  stochastic hmm --obs "Low Mobility, High Mobility, Moderate Mobility"
  stochastic hmm --model weather.yaml walk shop clean`,
	RunE: runHMM,
}

func init() {
	rootCmd.AddCommand(hmmCmd)

	f := hmmCmd.Flags()
	f.StringVarP(&hmmModel, "model", "m", "", "YAML or JSON model file (default: built-in policy model)")
	f.StringVar(&hmmObs, "obs", "", "comma-separated observations, appended after arguments")
	f.Float64Var(&hmmUnseen, "unseen", -1, "probability of an unseen symbol (overrides STOCHASTIC_UNSEEN_EMISSION)")
}

func runHMM(cmd *cobra.Command, args []string) error {
	obs := append(append([]string(nil), args...), splitList(hmmObs)...)
	if len(obs) == 0 {
		return errors.New("give observations as arguments or --obs")
	}

	spec := hmm.DefaultSpec()
	if hmmModel != "" {
		var err error
		if spec, err = modelfile.Load(hmmModel); err != nil {
			return err
		}
	}

	unseen := cfg.UnseenEmission
	if cmd.Flags().Changed("unseen") {
		if math.IsNaN(hmmUnseen) || math.IsInf(hmmUnseen, 0) || hmmUnseen < 0 {
			return fmt.Errorf("--unseen must be a non-negative finite number, got %g", hmmUnseen)
		}
		unseen = hmmUnseen
	}

	model, err := hmm.New(spec,
		hmm.WithUnseenEmission(unseen),
		hmm.WithTolerance(cfg.Tolerance),
		hmm.WithMaxIter(cfg.MaxIter),
	)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	logger.Info("model ready", "states", len(model.States()), "symbols", len(model.Symbols()), "observations", len(obs))

	known := make(map[string]bool, len(model.Symbols()))
	for _, s := range model.Symbols() {
		known[s] = true
	}
	for _, o := range obs {
		if !known[o] {
			logger.Warn("observation outside the emission alphabet", "symbol", o, "probability", unseen)
		}
	}

	rep, err := model.Analyze(obs)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logConvergence("hidden steady state", rep.SteadyState)

	p, err := printer(cmd)
	if err != nil {
		return err
	}
	return p.Print(report.HMM(rep), rep)
}
