// Package randctx provides the scoped, seedable random context that every
// sampling operation in ternbet draws from.
//
// A Context owns a stack of pseudo-random generators. The top of the stack is
// the active generator; WithSeed pushes a deterministically seeded generator,
// runs a body against it, and pops it again, leaving the parent stream exactly
// where it was. Nesting seeded scopes therefore reproduces identical results
// for identical seeds no matter how many draws preceded scope entry.
//
// ⚙️ Usage:
//
//	rc := randctx.New()                       // unseeded: system entropy on first draw
//	x := randctx.WithSeed(rc, 42, func() int {
//	    return rc.IntN(3)                     // deterministic under seed 42
//	})
//
// Determinism policy:
//   - Same seed ⇒ identical draw sequence across platforms (math/rand/v2 PCG).
//   - No time-based sources anywhere; an unseeded Context reads system
//     entropy exactly once, lazily, for its bottom frame.
//
// Concurrency:
//   - A Context is NOT goroutine-safe and must never be shared across
//     concurrent callers. Use Fork to derive independent deterministic
//     child contexts for parallel work.
package randctx
