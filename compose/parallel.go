// Package compose - concurrent batch sampling.
//
// ParallelForked runs its draws on real goroutines. Reproducibility survives
// concurrency because each index i samples from its own forked child context:
// the children are derived sequentially up front, so the result at index i is
// a pure function of the parent seed and i, regardless of scheduling.
//
// The forked stream assignment differs from Parallel's sequential stream, so
// the two functions agree in distribution but not draw-for-draw.
package compose

import (
	"sync"

	"github.com/katalvlaran/ternbet/bet"
	"github.com/katalvlaran/ternbet/randctx"
)

// ParallelForked produces exactly n independent Bet(a, b, c) draws,
// executed concurrently on per-index forked contexts.
//
// Contracts:
//   - Deterministic for a seeded parent: identical parent seed ⇒ identical
//     result slice, independent of goroutine scheduling.
//   - Consumes exactly n draws from the parent (one per Fork), taken before
//     any goroutine starts.
//
// Returns ErrNegativeCount for n < 0.
//
// Complexity: O(n) work, O(n) goroutines.
func ParallelForked[T any](rc *randctx.Context, n int, a, b, c T) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	// Fork all children sequentially first; this is the deterministic part.
	kids := make([]*randctx.Context, n)
	for i := range kids {
		kids[i] = rc.Fork(uint64(i))
	}

	out := make([]T, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			out[i] = bet.Bet(kids[i], a, b, c)
		}(i)
	}
	wg.Wait()

	return out, nil
}
