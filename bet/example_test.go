// Package bet_test provides runnable examples for the selection family.
package bet_test

import (
	"fmt"

	"github.com/katalvlaran/ternbet/bet"
	"github.com/katalvlaran/ternbet/randctx"
)

// ExampleBet demonstrates a reproducible ternary selection.
func ExampleBet() {
	// 1) Two contexts with the same seed replay the same program.
	first := randctx.NewSeeded(42)
	second := randctx.NewSeeded(42)

	// 2) One draw each selects uniformly among the three alternatives —
	//    and both draws agree because the seeds agree.
	a := bet.Bet(first, "rock", "paper", "scissors")
	b := bet.Bet(second, "rock", "paper", "scissors")
	fmt.Println(a == b)
	// Output: true
}

// ExampleBetConditional demonstrates the zero-draw fast path.
func ExampleBetConditional() {
	rc := randctx.NewSeeded(1)

	// A true predicate always returns the first value, deterministically.
	fmt.Println(bet.BetConditional(rc, true, "keep", "swap", "drop"))
	// Output: keep
}

// ExampleBetLazy demonstrates that unselected branches never run.
func ExampleBetLazy() {
	rc := randctx.NewSeeded(3)

	ran := [3]bool{}
	bet.BetLazy(rc,
		func() int { ran[0] = true; return 0 },
		func() int { ran[1] = true; return 1 },
		func() int { ran[2] = true; return 2 },
	)

	total := 0
	for _, r := range ran {
		if r {
			total++
		}
	}
	fmt.Println("thunks invoked:", total)
	// Output: thunks invoked: 1
}
