// Package randctx_test provides runnable examples for seeded scopes.
// Each example runs via “go test -run Example”, showing code and output.
package randctx_test

import (
	"fmt"

	"github.com/katalvlaran/ternbet/randctx"
)

// ExampleWithSeed demonstrates that a seeded scope replays the same draws
// every time, while leaving the surrounding context alone.
func ExampleWithSeed() {
	// 1) Build a context; the outer seed pins the whole program.
	rc := randctx.NewSeeded(7)

	// 2) Run the same seeded scope twice; both runs see identical streams.
	first := randctx.WithSeed(rc, 42, func() int { return rc.IntN(100) })
	second := randctx.WithSeed(rc, 42, func() int { return rc.IntN(100) })

	// 3) The two scoped draws match because seed 42 resets the stream.
	fmt.Println(first == second)
	// Output: true
}

// ExampleContext_Fork demonstrates deriving independent deterministic
// streams for parallel workers.
func ExampleContext_Fork() {
	// Children of identically seeded parents replay identically, so forked
	// parallel work stays reproducible.
	a := randctx.NewSeeded(1).Fork(3)
	b := randctx.NewSeeded(1).Fork(3)

	fmt.Println(a.IntN(1000) == b.IntN(1000))
	// Output: true
}
