// Package stochastic is a small toolkit for discrete stochastic models:
// Markov chains built from observed state sequences, hidden Markov models,
// and the M/M/1 queue.
//
// 🚀 What is in the box?
//
//	• matrix   : dense row-major matrices, Gaussian elimination with pivoting,
//	             power iteration, transitive closure
//	• markov   : transition matrix estimation, steady state, recurrence,
//	             mean first passage, absorption, communicating classes
//	• hmm      : Forward likelihood, Viterbi decoding, hidden steady state
//	• queue    : M/M/1 performance metrics
//	• mobility : percent-change binning and a mobility-report CSV reader
//
// Every analysis is a pure function of its inputs: no globals, no caches,
// scratch buffers are allocated per call, so concurrent callers never share
// state. Iteration caps are the only termination guard.
//
// Quick example:
//
//	c, _ := markov.Build([]string{"Low", "Low", "High", "Low"})
//	rep, _ := markov.Analyze(c)
//	fmt.Println(rep.Dominant) // Low
//
// The cmd/stochastic binary wraps all of it behind a cobra CLI:
//
//	go install github.com/katalvlaran/stochastic/cmd/stochastic@latest
package stochastic
