// SPDX-License-Identifier: MIT

// Package report renders analysis results for people and machines.
//
// The Markov, HMM and Queue builders produce Markdown. Probabilities are shown
// with 6 decimals and times with 4; the underlying reports keep full
// precision and are what the JSON output carries. Printer decides how a
// document reaches the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stochastic/hmm"
	"github.com/katalvlaran/stochastic/markov"
	"github.com/katalvlaran/stochastic/queue"
)

const (
	probFmt = "%.6f"
	timeFmt = "%.4f"
	missing = "n/a"
)

// Context describes where a state sequence came from. Every field is optional.
type Context struct {
	Country  string
	Year     int
	Category string
}

// Summary is the one-sentence reading of a steady state.
func Summary(dominant string, ctx Context) string {
	if dominant == "" {
		return ""
	}
	if ctx.Country == "" || ctx.Year == 0 || ctx.Category == "" {
		return fmt.Sprintf("The most stable behavior was '%s'.", dominant)
	}

	return fmt.Sprintf("In %d, the most stable mobility behavior in %s was '%s'. "+
		"This means people mostly showed '%s' activity in the category '%s'.",
		ctx.Year, ctx.Country, dominant, strings.ToLower(dominant), ctx.Category)
}

// Markov renders a chain report.
func Markov(rep *markov.Report, ctx Context) string {
	var b strings.Builder
	b.WriteString("# Markov chain report\n\n")
	if s := Summary(rep.Dominant, ctx); s != "" {
		b.WriteString(s + "\n\n")
	}

	b.WriteString("## Transition matrix\n\n")
	header(&b, `from \ to`, rep.States)
	for i, from := range rep.States {
		cells := make([]string, len(rep.States))
		for j := range rep.States {
			cells[j] = fmt.Sprintf("%.4f", rep.Transitions[i][j])
		}
		row(&b, from, cells)
	}

	if d := rep.SteadyState; d != nil {
		b.WriteString("\n## Steady state\n\n")
		header(&b, "state", []string{"probability", "mean recurrence time"})
		for i, s := range d.States {
			rt := missing
			if rep.Recurrence != nil {
				if v, ok := rep.Recurrence.Times[s]; ok {
					rt = fmt.Sprintf(timeFmt, v)
				}
			}
			row(&b, s, []string{fmt.Sprintf(probFmt, d.Probs[i]), rt})
		}
		b.WriteString("\n" + convergence(d) + "\n")
	}

	if fp := rep.FirstPassage; fp != nil {
		b.WriteString("\n## Mean first passage times\n\n")
		header(&b, `from \ to`, rep.States)
		for _, from := range rep.States {
			cells := make([]string, len(rep.States))
			for j, to := range rep.States {
				cells[j] = missing
				if v, ok := fp.Time(from, to); ok {
					cells[j] = fmt.Sprintf(timeFmt, v)
				}
			}
			row(&b, from, cells)
		}
		if len(fp.Singular) > 0 {
			fmt.Fprintf(&b, "\n%d pair(s) have no finite passage time.\n", len(fp.Singular))
		}
	}

	b.WriteString("\n## Absorption\n\n")
	switch {
	case rep.AbsorptionSingular:
		b.WriteString("The transient block is singular: some transient states never reach an absorbing state.\n")
	case rep.Absorption == nil:
		b.WriteString("No absorbing states.\n")
	default:
		fmt.Fprintf(&b, "Absorbing: %s.\n\n", strings.Join(escapeAll(rep.Absorption.Absorbing), ", "))
		header(&b, "transient state", []string{"expected steps to absorption"})
		for _, s := range rep.Absorption.Transient {
			row(&b, s, []string{fmt.Sprintf(timeFmt, rep.Absorption.Times[s])})
		}
	}

	if len(rep.Classes) > 0 {
		b.WriteString("\n## Communicating classes\n\n")
		for _, c := range rep.Classes {
			kind := "transient"
			if c.Closed {
				kind = "closed"
			}
			fmt.Fprintf(&b, "- {%s} (%s)\n", strings.Join(escapeAll(c.States), ", "), kind)
		}
	}

	return b.String()
}

// HMM renders a hidden Markov model report.
func HMM(rep *hmm.Report) string {
	var b strings.Builder
	b.WriteString("# Hidden Markov model report\n\n")
	fmt.Fprintf(&b, "Observations: %d. Likelihood P(O|λ) = %.6g.\n", len(rep.Observations), rep.Likelihood)

	if rep.Path != nil {
		b.WriteString("\n## Most likely hidden path\n\n")
		header(&b, "t", []string{"observation", "hidden state"})
		for t, s := range rep.Path.States {
			row(&b, fmt.Sprint(t+1), []string{escape(rep.Observations[t]), escape(s)})
		}
		fmt.Fprintf(&b, "\nPath probability: %.6g.\n", rep.Path.Probability)
	}

	if d := rep.SteadyState; d != nil {
		b.WriteString("\n## Hidden steady state\n\n")
		header(&b, "state", []string{"probability"})
		for i, s := range d.States {
			row(&b, s, []string{fmt.Sprintf(probFmt, d.Probs[i])})
		}
		b.WriteString("\n" + convergence(d) + "\n")
		if rep.Dominant != "" {
			fmt.Fprintf(&b, "\nIn the long run the model spends most time in '%s'.\n", rep.Dominant)
		}
	}

	return b.String()
}

// Queue renders M/M/1 metrics.
func Queue(m *queue.Metrics) string {
	var b strings.Builder
	b.WriteString("# M/M/1 queue\n\n")
	header(&b, "metric", []string{"value"})
	for _, kv := range []struct {
		name string
		v    float64
	}{
		{"arrival rate λ", m.ArrivalRate},
		{"service rate μ", m.ServiceRate},
		{"utilization ρ", m.Utilization},
		{"customers in system L", m.L},
		{"customers waiting Lq", m.Lq},
		{"time in system W", m.W},
		{"time waiting Wq", m.Wq},
		{"idle probability P0", m.P0},
	} {
		row(&b, kv.name, []string{fmt.Sprintf(timeFmt, kv.v)})
	}

	return b.String()
}

func convergence(d *markov.Distribution) string {
	c := d.Convergence
	status := "converged"
	if !c.Converged {
		status = "did not converge"
	}
	return fmt.Sprintf("_Power iteration %s after %d iterations (residual %.3g)._", status, c.Iterations, c.Residual)
}

func header(b *strings.Builder, first string, cols []string) {
	b.WriteString("| " + escape(first))
	for _, c := range cols {
		b.WriteString(" | " + escape(c))
	}
	b.WriteString(" |\n|---")
	for range cols {
		b.WriteString("|---")
	}
	b.WriteString("|\n")
}

// row escapes the label only; cells are expected to be preformatted.
func row(b *strings.Builder, label string, cells []string) {
	b.WriteString("| " + escape(label))
	for _, c := range cells {
		b.WriteString(" | " + c)
	}
	b.WriteString(" |\n")
}

func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

func escapeAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = escape(s)
	}
	return out
}
