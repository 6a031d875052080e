package dist

import (
	"errors"
	"math"

	"github.com/katalvlaran/ternbet/bet"
	"github.com/katalvlaran/ternbet/randctx"
)

// Sentinel errors for sampler parameter validation.
var (
	// ErrNonPositiveSigma is returned when a standard deviation is not positive.
	ErrNonPositiveSigma = errors.New("dist: sigma must be positive")

	// ErrNonPositiveRate is returned when a rate parameter (lambda) is not positive.
	ErrNonPositiveRate = errors.New("dist: rate must be positive")

	// ErrInvalidProbability is returned when a probability lies outside [0, 1].
	ErrInvalidProbability = errors.New("dist: probability must lie in [0, 1]")

	// ErrNegativeCount is returned when a trial or step count is negative.
	ErrNegativeCount = errors.New("dist: count must be non-negative")

	// ErrBadInterval is returned by Uniform when high <= low.
	ErrBadInterval = errors.New("dist: interval must satisfy low < high")

	// ErrSampleTooLarge is returned by Sample when k exceeds the population size.
	ErrSampleTooLarge = errors.New("dist: sample size exceeds population")
)

// Normal samples N(mu, sigma²) via the Box–Muller transform.
//
// Draws: exactly 2 uniforms (u1, u2); the result is
// mu + sigma·sqrt(−2·ln(1−u1))·cos(2π·u2). Using 1−u1 keeps the logarithm
// finite for the u1 == 0 corner of the uniform range.
//
// Returns ErrNonPositiveSigma for sigma <= 0; no draw is consumed on error.
func Normal(rc *randctx.Context, mu, sigma float64) (float64, error) {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 0, ErrNonPositiveSigma
	}

	u1 := rc.Float64()
	u2 := rc.Float64()
	r := math.Sqrt(-2 * math.Log(1-u1))

	return mu + sigma*r*math.Cos(2*math.Pi*u2), nil
}

// Uniform samples a uniform real in [low, high).
//
// Draws: exactly 1 uniform. Returns ErrBadInterval unless low < high.
func Uniform(rc *randctx.Context, low, high float64) (float64, error) {
	if !(low < high) {
		return 0, ErrBadInterval
	}

	return low + rc.Float64()*(high-low), nil
}

// Bernoulli samples a coin flip with success probability p.
//
// Draws: exactly 1 uniform. Returns ErrInvalidProbability for p outside [0, 1].
func Bernoulli(rc *randctx.Context, p float64) (bool, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return false, ErrInvalidProbability
	}

	return rc.Float64() < p, nil
}

// Binomial samples the number of successes in n Bernoulli(p) trials.
//
// Draws: exactly n uniforms, one per trial, so the stream position after a
// call depends only on n.
//
// Returns ErrNegativeCount for n < 0 and ErrInvalidProbability for p
// outside [0, 1]; no draw is consumed on error.
func Binomial(rc *randctx.Context, n int, p float64) (int, error) {
	if n < 0 {
		return 0, ErrNegativeCount
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, ErrInvalidProbability
	}

	successes := 0
	for i := 0; i < n; i++ {
		if rc.Float64() < p {
			successes++
		}
	}

	return successes, nil
}

// Poisson samples a Poisson(lambda) count using Knuth's multiplication
// method: multiply uniforms until the running product drops below e^(−λ).
//
// Draws: k+1 uniforms for an outcome of k — variable, but fully determined
// by the stream, so seeded runs remain bit-identical. Suitable for moderate
// lambda (the product underflows near lambda ≈ 700).
//
// Returns ErrNonPositiveRate for lambda <= 0.
func Poisson(rc *randctx.Context, lambda float64) (int, error) {
	if lambda <= 0 || math.IsNaN(lambda) {
		return 0, ErrNonPositiveRate
	}

	threshold := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rc.Float64()
		if p <= threshold {
			return k, nil
		}
		k++
	}
}

// Exponential samples Exp(lambda) via the inverse CDF: −ln(1−u)/λ.
//
// Draws: exactly 1 uniform. Returns ErrNonPositiveRate for lambda <= 0.
func Exponential(rc *randctx.Context, lambda float64) (float64, error) {
	if lambda <= 0 || math.IsNaN(lambda) {
		return 0, ErrNonPositiveRate
	}

	return -math.Log(1-rc.Float64()) / lambda, nil
}

// RandomWalk produces a ternary random walk of steps steps.
//
// The result has length steps+1; index 0 is exactly 0, and each subsequent
// term adds one step drawn via bet.Bet(rc, -1, 0, 1) — one ambient draw per
// step.
//
// Returns ErrNegativeCount for steps < 0.
func RandomWalk(rc *randctx.Context, steps int) ([]int, error) {
	if steps < 0 {
		return nil, ErrNegativeCount
	}

	walk := make([]int, steps+1)
	for i := 1; i <= steps; i++ {
		walk[i] = walk[i-1] + bet.Bet(rc, -1, 0, 1)
	}

	return walk, nil
}
