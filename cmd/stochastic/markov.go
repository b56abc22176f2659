// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/stochastic/internal/report"
	"github.com/katalvlaran/stochastic/markov"
	"github.com/katalvlaran/stochastic/mobility"
	"github.com/spf13/cobra"
)

// DefaultMobilityColumn is the CSV column binned when --column is not given.
const DefaultMobilityColumn = "retail_and_recreation_percent_change_from_baseline"

var (
	markovCSV          string
	markovCountry      string
	markovYear         int
	markovColumn       string
	markovNationalOnly bool
	markovOrder        string
	markovRejectMulti  bool
)

var markovCmd = &cobra.Command{
	Use:   "markov [STATE...]",
	Short: "Analyse a Markov chain estimated from a state sequence",
	Long: `Estimate the transition matrix of a state sequence and report its steady
state, mean recurrence times, mean first-passage times, absorption times and
communicating classes.

The sequence is either given as arguments or read from a mobility report CSV,
in which case the selected column is binned into Low (≤ -20), Moderate (≤ 5)
and High.

Examples:
  stochastic markov Low Low Moderate High Moderate Low
  stochastic markov --csv Global_Mobility_Report.csv --country Pakistan --year 2021 \
      --column parks_percent_change_from_baseline --national-only
  stochastic markov --format json A B A C --order C,B,A`,
	RunE: runMarkov,
}

func init() {
	rootCmd.AddCommand(markovCmd)

	f := markovCmd.Flags()
	f.StringVar(&markovCSV, "csv", "", "mobility report CSV to read the sequence from")
	f.StringVar(&markovCountry, "country", "", "country_region to keep (CSV only)")
	f.IntVar(&markovYear, "year", 0, "year to keep, 0 for all (CSV only)")
	f.StringVar(&markovColumn, "column", DefaultMobilityColumn, "percent-change column to bin (CSV only)")
	f.BoolVar(&markovNationalOnly, "national-only", false, "skip sub-region rows (CSV only)")
	f.StringVar(&markovOrder, "order", "", "comma-separated state order (default: sorted)")
	f.BoolVar(&markovRejectMulti, "reject-multiple-closed", false, "fail when the chain has more than one closed class")
}

func runMarkov(cmd *cobra.Command, args []string) error {
	seq, err := markovSequence(args)
	if err != nil {
		return err
	}
	logger.Info("sequence loaded", "length", len(seq), "source", sequenceSource())

	opts := []markov.Option{
		markov.WithTolerance(cfg.Tolerance),
		markov.WithMaxIter(cfg.MaxIter),
	}
	if order := splitList(markovOrder); len(order) > 0 {
		opts = append(opts, markov.WithStateOrder(order...))
	}
	if markovRejectMulti {
		opts = append(opts, markov.WithRejectMultipleClosedClasses())
	}

	chain, err := markov.Build(seq, opts...)
	if err != nil {
		return fmt.Errorf("build chain: %w", err)
	}
	rep, err := markov.Analyze(chain, opts...)
	if err != nil {
		return fmt.Errorf("analyze chain: %w", err)
	}
	logConvergence("steady state", rep.SteadyState)
	if rep.FirstPassage != nil && len(rep.FirstPassage.Singular) > 0 {
		logger.Info("first passage has unreachable pairs", "count", len(rep.FirstPassage.Singular))
	}
	if rep.AbsorptionSingular {
		logger.Warn("absorption system is singular")
	}

	p, err := printer(cmd)
	if err != nil {
		return err
	}
	ctx := report.Context{}
	if markovCSV != "" {
		ctx = report.Context{Country: markovCountry, Year: markovYear, Category: markovColumn}
	}
	return p.Print(report.Markov(rep, ctx), rep)
}

func markovSequence(args []string) ([]string, error) {
	if markovCSV == "" {
		if len(args) == 0 {
			return nil, errors.New("give a state sequence as arguments or --csv")
		}
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New("state arguments and --csv are mutually exclusive")
	}

	file, err := os.Open(markovCSV)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	seq, err := mobility.ReadStates(file, mobility.Filter{
		Country:      markovCountry,
		Year:         markovYear,
		Column:       markovColumn,
		NationalOnly: markovNationalOnly,
	})
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("%s: no rows match country %q, year %d, column %q",
			markovCSV, markovCountry, markovYear, markovColumn)
	}
	return seq, nil
}

func sequenceSource() string {
	if markovCSV != "" {
		return markovCSV
	}
	return "args"
}

// splitList splits a comma-separated flag value, trimming blanks and dropping
// empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
