// Package dist provides parametric samplers built directly on the random
// context: normal, binomial, poisson, exponential, uniform, bernoulli,
// ternary random walks, and collection helpers (shuffle, sample).
//
// Reproducibility contract: every sampler documents its exact transform and
// how many ambient draws it consumes. Given the same seed, the same call
// sequence yields bit-identical output across runs and platforms. The pinned
// transforms are:
//
//   - Normal      — Box–Muller, exactly 2 draws
//   - Exponential — inverse CDF, exactly 1 draw
//   - Binomial    — n Bernoulli trials, exactly n draws
//   - Poisson     — Knuth multiplication method; the draw count varies with
//     the outcome but is fully determined by the stream
//   - RandomWalk  — one ternary draw per step via bet.Bet(rc, -1, 0, 1)
//
// Parameter validation is synchronous and sentinel-based; no sampler
// consumes a draw when it rejects its arguments.
package dist
