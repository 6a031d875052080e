// Package bet_test validates the ternary selection family: degenerate and
// conditional identities, single-invocation laziness, long-run uniformity
// under a fixed seed, and weighted selection ordering.
package bet_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternbet/bet"
	"github.com/katalvlaran/ternbet/randctx"
)

// ------------------------------------------------------------------------
// 1. Identities: properties that hold for every draw.
// ------------------------------------------------------------------------

func TestBet_DegenerateIdentity(t *testing.T) {
	// bet(a,a,a) = a for any a, on every draw.
	rc := randctx.NewSeeded(1)
	for i := 0; i < 100; i++ {
		require.Equal(t, "a", bet.Bet(rc, "a", "a", "a"))
	}
}

func TestBet_AlwaysOneOfThree(t *testing.T) {
	rc := randctx.NewSeeded(2)
	for i := 0; i < 300; i++ {
		got := bet.Bet(rc, 10, 20, 30)
		require.Contains(t, []int{10, 20, 30}, got)
	}
}

func TestBetConditional_TruePredicate(t *testing.T) {
	// A true predicate always yields the first argument and consumes no
	// randomness: the context stream must be byte-identical afterwards.
	rc := randctx.NewSeeded(3)
	ref := randctx.NewSeeded(3)

	for i := 0; i < 50; i++ {
		require.Equal(t, "a", bet.BetConditional(rc, true, "a", "b", "c"))
	}
	require.Equal(t, ref.Uint64(), rc.Uint64(), "true branch must not consume a draw")
}

func TestBetConditional_FalsePredicateRotation(t *testing.T) {
	// The false branch is one uniform draw over (b, c, a) in that order.
	rc := randctx.NewSeeded(4)
	ref := randctx.NewSeeded(4)

	for i := 0; i < 200; i++ {
		require.Equal(t,
			bet.Bet(ref, "b", "c", "a"),
			bet.BetConditional(rc, false, "a", "b", "c"))
	}
}

// ------------------------------------------------------------------------
// 2. Laziness: exactly one thunk runs exactly once per call.
// ------------------------------------------------------------------------

func TestBetLazy_SingleInvocation(t *testing.T) {
	rc := randctx.NewSeeded(5)

	for i := 0; i < 100; i++ {
		var calls [3]int
		got := bet.BetLazy(rc,
			func() int { calls[0]++; return 0 },
			func() int { calls[1]++; return 1 },
			func() int { calls[2]++; return 2 },
		)

		require.Equal(t, 1, calls[got], "selected thunk must run exactly once")
		require.Equal(t, 1, calls[0]+calls[1]+calls[2], "unselected thunks must not run")
	}
}

// ------------------------------------------------------------------------
// 3. Distribution: long-run frequencies under a fixed seed.
// ------------------------------------------------------------------------

func TestBet_Uniformity3000(t *testing.T) {
	rc := randctx.NewSeeded(2024)

	counts := map[string]int{}
	for i := 0; i < 3000; i++ {
		counts[bet.Bet(rc, "A", "B", "C")]++
	}

	for _, v := range []string{"A", "B", "C"} {
		require.InDelta(t, 1000, counts[v], 150, "outcome %s drifted: %d", v, counts[v])
	}
}

func TestBetWeighted_Ordering1000(t *testing.T) {
	// Weights 1:3:6 over 1000 draws: rare < uncommon < common,
	// and common lands within ±100 of its expectation 600.
	rc := randctx.NewSeeded(777)

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		got, err := bet.BetWeighted(rc,
			bet.W("rare", 1),
			bet.W("uncommon", 3),
			bet.W("common", 6),
		)
		require.NoError(t, err)
		counts[got]++
	}

	require.Less(t, counts["rare"], counts["uncommon"])
	require.Less(t, counts["uncommon"], counts["common"])
	require.InDelta(t, 600, counts["common"], 100)
}

func TestBetWeighted_SingleDraw(t *testing.T) {
	// A weighted bet must cost exactly one draw, same as a plain Bet.
	rc := randctx.NewSeeded(6)
	ref := randctx.NewSeeded(6)

	_, err := bet.BetWeighted(rc, bet.W(1, 1), bet.W(2, 2), bet.W(3, 3))
	require.NoError(t, err)

	ref.Float64() // the one draw
	require.Equal(t, ref.Uint64(), rc.Uint64(), "streams must align after one draw each")
}

func TestBetWeighted_ZeroWeightNeverSelected(t *testing.T) {
	rc := randctx.NewSeeded(7)
	for i := 0; i < 500; i++ {
		got, err := bet.BetWeighted(rc, bet.W("never", 0), bet.W("x", 1), bet.W("y", 1))
		require.NoError(t, err)
		require.NotEqual(t, "never", got)
	}
}

func TestBetWeighted_InvalidWeights(t *testing.T) {
	rc := randctx.NewSeeded(8)

	cases := [][3]float64{
		{0, 0, 0},
		{-1, 1, 1},
		{math.NaN(), 1, 1},
	}
	for _, ws := range cases {
		_, err := bet.BetWeighted(rc, bet.W(1, ws[0]), bet.W(2, ws[1]), bet.W(3, ws[2]))
		require.True(t, errors.Is(err, bet.ErrNonPositiveWeight), "weights %v", ws)
	}
}

// ------------------------------------------------------------------------
// 4. Generators: late binding of the randomness source.
// ------------------------------------------------------------------------

func TestMakeGenerator_AmbientAtCallTime(t *testing.T) {
	gen := bet.MakeGenerator(1, 2, 3)

	// The same generator replays identically when handed equally seeded
	// contexts, because the draw happens at call time.
	a := randctx.NewSeeded(9)
	b := randctx.NewSeeded(9)
	for i := 0; i < 50; i++ {
		require.Equal(t, gen(a), gen(b))
	}
}

func TestBet_SeededDeterminism(t *testing.T) {
	run := func() []string {
		rc := randctx.NewSeeded(31337)
		out := make([]string, 64)
		for i := range out {
			out[i] = bet.Bet(rc, "x", "y", "z")
		}

		return out
	}

	require.Equal(t, run(), run())
}
