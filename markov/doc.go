// Package markov represents finite discrete-time Markov chains and
// simulates trajectories through them on the random context.
//
// A Chain is an immutable value: a finite state set, one ordered transition
// row per state (probabilities summing to 1), and a designated initial
// state. NewChain validates the whole structure up front; Simulate then
// consumes exactly one ambient draw per transition, bucketing the draw
// cumulatively over the row in its given order — the order is part of the
// reproducibility contract, since it decides floating-point tie-breaks.
//
// Chains can also be defined externally in YAML and loaded with LoadChain:
//
//	initial: sunny
//	states:
//	  sunny:
//	    - {next: sunny, prob: 0.8}
//	    - {next: rainy, prob: 0.2}
//	  rainy:
//	    - {next: sunny, prob: 0.4}
//	    - {next: rainy, prob: 0.6}
package markov
