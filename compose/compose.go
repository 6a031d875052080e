package compose

import (
	"errors"

	"github.com/katalvlaran/ternbet/bet"
	"github.com/katalvlaran/ternbet/randctx"
)

// Sentinel errors for composition combinators.
var (
	// ErrNegativeCount is returned when a repetition or batch count is negative.
	ErrNegativeCount = errors.New("compose: count must be non-negative")

	// ErrLimitExceeded is returned by UntilLimit when the predicate was not
	// satisfied within the given number of attempts.
	ErrLimitExceeded = errors.New("compose: iteration limit exceeded")
)

// Chain applies f exactly n times starting from init and returns the final
// value; n == 0 returns init unchanged.
//
// Chain itself is purely deterministic and consumes no randomness. f may
// draw internally through a context it closes over; the chaining mechanism
// is still plain repetition.
//
// Returns ErrNegativeCount for n < 0.
//
// Complexity: O(n) applications of f.
func Chain[T any](n int, f func(T) T, init T) (T, error) {
	if n < 0 {
		var zero T

		return zero, ErrNegativeCount
	}

	acc := init
	for i := 0; i < n; i++ {
		acc = f(acc)
	}

	return acc, nil
}

// Repeat invokes thunk exactly n times in order and collects the results.
// Each invocation draws independently from rc.
//
// Returns ErrNegativeCount for n < 0.
func Repeat[T any](rc *randctx.Context, n int, thunk func(*randctx.Context) T) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]T, n)
	for i := range out {
		out[i] = thunk(rc)
	}

	return out, nil
}

// Compose lifts three functions into a ternary selector: the returned
// function computes f(x), g(x) and h(x), then performs one fresh ternary
// draw to pick among the results.
//
// Note the evaluation order: all three candidate values are computed before
// the draw (use bet.BetLazy directly when unselected branches must not run).
func Compose[T, U any](f, g, h func(U) T) func(*randctx.Context, U) T {
	return func(rc *randctx.Context, x U) T {
		return bet.Bet(rc, f(x), g(x), h(x))
	}
}

// Map applies a stochastic transform to every element of xs in order.
// f receives the context and may draw; one element in, one element out.
func Map[T, U any](rc *randctx.Context, f func(*randctx.Context, T) U, xs []T) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = f(rc, x)
	}

	return out
}

// Filter keeps the elements of xs accepted by a stochastic predicate.
// The result is always a valid subsequence of xs — original order, no
// duplication, no foreign elements — but which elements survive may vary
// from run to run under an unseeded context.
func Filter[T any](rc *randctx.Context, pred func(*randctx.Context, T) bool, xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(rc, x) {
			out = append(out, x)
		}
	}

	return out
}

// Until repeatedly invokes thunk, each call drawing fresh randomness, and
// returns the first result satisfying pred.
//
// Liveness, not safety: when pred has zero probability of being satisfied
// under thunk's distribution, Until never returns. That gap is part of the
// contract; see UntilLimit for a bounded variant.
func Until[T any](rc *randctx.Context, pred func(T) bool, thunk func(*randctx.Context) T) T {
	for {
		if v := thunk(rc); pred(v) {
			return v
		}
	}
}

// UntilLimit behaves like Until but gives up after limit attempts,
// returning ErrLimitExceeded. limit < 1 also yields ErrLimitExceeded
// (zero attempts cannot satisfy any predicate).
func UntilLimit[T any](rc *randctx.Context, pred func(T) bool, thunk func(*randctx.Context) T, limit int) (T, error) {
	for i := 0; i < limit; i++ {
		if v := thunk(rc); pred(v) {
			return v, nil
		}
	}

	var zero T

	return zero, ErrLimitExceeded
}

// Parallel produces exactly n independent Bet(a, b, c) draws.
//
// “Parallel” denotes logical independence, not concurrent execution: the
// draws are taken sequentially in index order, which is the reference order
// for reproducibility. See ParallelForked for actual concurrency.
//
// Returns ErrNegativeCount for n < 0.
func Parallel[T any](rc *randctx.Context, n int, a, b, c T) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]T, n)
	for i := range out {
		out[i] = bet.Bet(rc, a, b, c)
	}

	return out, nil
}
