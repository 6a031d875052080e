// Package stats analyzes sample sequences produced by the sampling
// packages: descriptive statistics, empirical frequency and entropy,
// correlation, goodness-of-fit, smoothing, and bootstrap resampling.
//
// Everything here is pure and seed-independent — the same input always
// yields the same output — with one deliberate exception: Bootstrap, whose
// resampling draws route through the random context like every other source
// of randomness in ternbet.
//
// Error policy: empty or mismatched inputs are rejected with sentinel
// errors, never papered over with defaults (an empty sequence has no mean,
// not mean zero).
package stats
