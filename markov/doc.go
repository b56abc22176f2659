// Package markov estimates and analyses first-order discrete-time Markov chains
// over categorical states.
//
// Overview:
//
//   - Build turns one observed state sequence into a Chain: a row-stochastic
//     transition matrix plus a canonical state order (sorted unique labels by
//     default, or an explicit order via WithStateOrder).
//   - NewChain wraps a caller-supplied transition matrix after validating it.
//   - SteadyState, RecurrenceTimes, FirstPassage, Absorption and Classify derive
//     the long-run quantities of a chain; Analyze runs all of them at once.
//
// Numerical policy:
//
//   - Rows without observed outgoing transitions become absorbing self-loops.
//     This is a definition, not an approximation.
//   - The steady state is found by power iteration from the uniform distribution,
//     never by eigen-decomposition. Running out of iterations is reported through
//     Distribution.Convergence, not as an error.
//   - First-passage and absorption times come from dense linear solves
//     (matrix.Solve). A singular system surfaces as matrix.ErrSingular.
//   - A state is absorbing iff its diagonal entry is exactly 1.0.
//
// Multiple closed classes:
//
//	A chain with more than one closed class has no unique stationary distribution;
//	the iteration then converges to a mixture that depends on the uniform start.
//	SteadyState reports that mixture as-is. Pass WithRejectMultipleClosedClasses
//	to fail with ErrMultipleClosedClasses instead; Classify lists the classes.
//
// Concurrency:
//
//	Chains are immutable and every analysis allocates its own buffers, so
//	concurrent analyses of the same or different chains are safe.
//
// Complexity (N states):
//
//   - Build:        O(L + N²) for a sequence of length L.
//   - SteadyState:  O(k·N²) for k iterations.
//   - FirstPassage: O(N⁵) (N² independent solves of size N).
//   - Absorption:   O(N³).
//   - Classify:     O(N³).
package markov
