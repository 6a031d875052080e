package bet

import (
	"errors"
	"math"

	"github.com/katalvlaran/ternbet/randctx"
)

// ErrNonPositiveWeight is returned by BetWeighted when any weight is
// negative, any weight is NaN, or the weights sum to zero.
var ErrNonPositiveWeight = errors.New("bet: weights must be non-negative with a positive sum")

// Bet selects uniformly among a, b and c with one draw from rc.
// Each alternative has probability 1/3.
//
// Complexity: O(1), exactly one ambient draw.
func Bet[T any](rc *randctx.Context, a, b, c T) T {
	switch rc.IntN(3) {
	case 0:
		return a
	case 1:
		return b
	default:
		return c
	}
}

// WeightedOutcome pairs a value with its non-negative selection weight.
type WeightedOutcome[T any] struct {
	Value  T
	Weight float64
}

// W is shorthand for constructing a WeightedOutcome.
func W[T any](v T, weight float64) WeightedOutcome[T] {
	return WeightedOutcome[T]{Value: v, Weight: weight}
}

// BetWeighted selects among three weighted outcomes; outcome i wins with
// probability Weight_i / ΣWeight.
//
// Contracts:
//   - Exactly one ambient draw (a uniform real in [0, ΣWeight), bucketed
//     cumulatively) — never three independent draws, so the stream cost of a
//     weighted bet equals that of a plain Bet.
//   - Returns ErrNonPositiveWeight when any weight is negative or NaN, or
//     when the weights sum to zero. No draw is consumed on error.
//
// Complexity: O(1).
func BetWeighted[T any](rc *randctx.Context, o1, o2, o3 WeightedOutcome[T]) (T, error) {
	var zero T
	for _, w := range [3]float64{o1.Weight, o2.Weight, o3.Weight} {
		if w < 0 || math.IsNaN(w) {
			return zero, ErrNonPositiveWeight
		}
	}

	total := o1.Weight + o2.Weight + o3.Weight
	if total <= 0 {
		return zero, ErrNonPositiveWeight
	}

	// One uniform real in [0, total); cumulative thresholds pick the bucket.
	r := rc.Float64() * total
	switch {
	case r < o1.Weight:
		return o1.Value, nil
	case r < o1.Weight+o2.Weight:
		return o2.Value, nil
	default:
		return o3.Value, nil
	}
}

// BetConditional short-circuits on pred: when pred is true it returns a with
// no random draw at all (fully deterministic, zero entropy). When pred is
// false it performs Bet(rc, b, c, a) — one uniform draw over all three
// original arguments, with b and c listed first and a reintroduced at 1/3.
func BetConditional[T any](rc *randctx.Context, pred bool, a, b, c T) T {
	if pred {
		return a
	}

	return Bet(rc, b, c, a)
}

// BetLazy draws once to select one of three thunks, then invokes exactly
// that thunk exactly once. The other two are never invoked, so side effects
// of unselected branches cannot occur.
func BetLazy[T any](rc *randctx.Context, fa, fb, fc func() T) T {
	switch rc.IntN(3) {
	case 0:
		return fa()
	case 1:
		return fb()
	default:
		return fc()
	}
}

// Generator is a reusable selector. Each call performs one fresh ternary
// draw against the context supplied at call time, not at construction time.
type Generator[T any] func(rc *randctx.Context) T

// MakeGenerator binds three outcomes into a Generator. The outcomes are
// fixed at creation; the randomness source is whichever context each
// invocation receives.
func MakeGenerator[T any](a, b, c T) Generator[T] {
	return func(rc *randctx.Context) T {
		return Bet(rc, a, b, c)
	}
}
