// Package mobility turns a percent-change-from-baseline signal into the
// categorical state sequences analysed by package markov.
//
// Bins maps each value into Low, Moderate or High using right-closed intervals
// (DefaultBins: (−∞,−20], (−20,5], (5,∞)). ReadStates streams a mobility
// report CSV, keeps the rows of one country and year, bins the chosen column
// and returns the states in file order.
package mobility
