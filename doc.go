// Package ternbet is a small, reproducible probabilistic-choice library built
// around one primitive: the ternary bet — a uniform random selection among
// exactly three alternatives.
//
// 🚀 What is ternbet?
//
//	A deterministic-by-seed probability toolkit that brings together:
//		• randctx — a scoped, seedable random context with stack discipline
//		• bet     — the ternary selection family (plain, weighted, conditional, lazy)
//		• compose — chaining, repetition, stochastic map/filter, batch draws
//		• dist    — parametric samplers (normal, binomial, poisson, exponential, walks)
//		• markov  — finite discrete-time chain simulation, loadable from YAML
//		• stats   — pure analysis: entropy, correlation, chi-square, bootstrap & more
//
// ✨ Why choose ternbet?
//
//   - Reproducible – every draw routes through one explicit context; a seed
//     pins the whole pipeline bit-for-bit
//   - Nestable – seeded scopes push and pop without perturbing the parent stream
//   - Pure Go – no cgo, generics for any comparable outcome type
//   - Honest errors – sentinel errors, never panics, never silent defaults
//
// Quick taste:
//
//	rc := randctx.NewSeeded(42)
//	coin := bet.Bet(rc, "rock", "paper", "scissors")
//	walk, _ := dist.RandomWalk(rc, 100)
//	h := stats.Entropy(walk)
//
// Every sampling function takes the context as its first argument; the same
// seed therefore replays the same program, draws included, on any platform.
//
//	go get github.com/katalvlaran/ternbet
package ternbet
