// Package dist - collection-level randomization: in-place shuffling and
// sampling without replacement. (Sampling with replacement lives in
// stats.Bootstrap, where it serves resampling.)
package dist

import "github.com/katalvlaran/ternbet/randctx"

// Shuffle permutes xs in place with a Fisher–Yates walk.
//
// Draws: exactly len(xs)−1 uniforms for len(xs) > 1, none otherwise.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](rc *randctx.Context, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rc.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Sample draws k distinct elements from xs without replacement, preserving
// xs itself. The returned order is the draw order.
//
// Draws: exactly k uniforms. Returns ErrNegativeCount for k < 0 and
// ErrSampleTooLarge for k > len(xs).
//
// Complexity: O(n + k) time, O(n) space for the working copy.
func Sample[T any](rc *randctx.Context, xs []T, k int) ([]T, error) {
	if k < 0 {
		return nil, ErrNegativeCount
	}
	if k > len(xs) {
		return nil, ErrSampleTooLarge
	}

	// Partial Fisher–Yates over a copy: position i receives a uniform pick
	// from the not-yet-chosen suffix.
	pool := make([]T, len(xs))
	copy(pool, xs)

	out := make([]T, k)
	for i := 0; i < k; i++ {
		j := i + rc.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out[i] = pool[i]
	}

	return out, nil
}
