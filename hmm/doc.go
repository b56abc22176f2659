// Package hmm runs inference on discrete Hidden Markov Models.
//
// A Spec describes the model with keyed maps (start, transition and emission
// probabilities); New resolves every key once into dense indexed tables, and
// the resulting Model answers three questions:
//
//   - Forward:     total likelihood P(O) of an observation sequence.
//   - Viterbi:     most likely hidden-state path, with a fixed tie-break
//     (strictly greater replaces, lowest index wins).
//   - SteadyState: long-run distribution of the hidden chain, by the same power
//     iteration as markov.SteadyState.
//
// Unseen emissions:
//
//	A symbol absent from a state's emission table is given a small nonzero
//	probability (DefaultUnseenEmission = 1e-6, see WithUnseenEmission), so an
//	unexpected observation never collapses the likelihood to exact zero.
//
// Validation:
//
//	Probabilities are not required to be normalised; the engine tolerates any
//	finite values. Structural problems (no states, duplicate or unknown state
//	names, NaN/Inf) are rejected by New.
//
// No parameter learning (Baum-Welch) is provided. Models are immutable and
// safe for concurrent use.
package hmm
