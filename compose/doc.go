// Package compose builds larger stochastic programs out of the bet
// primitives: deterministic chaining, in-order repetition, function
// composition over a shared draw, stochastic map/filter, predicate-driven
// repetition, and batch sampling.
//
// Draw accounting is part of every contract here: combinators either consume
// no randomness themselves (Chain) or document exactly how their draws
// sequence, so seeded pipelines stay reproducible end to end.
//
// ⚠️ Liveness note: Until loops for as long as its predicate rejects, by
// design. With a predicate of zero probability it never terminates; use
// UntilLimit when an iteration cap is required.
package compose
