// Package bet implements the ternary selection family — the core primitive
// of ternbet: one random draw choosing among exactly three alternatives.
//
// Variants:
//   - Bet            — uniform 1/3 selection over three values
//   - BetWeighted    — selection proportional to three non-negative weights,
//     implemented as exactly one draw (cumulative bucketing)
//   - BetConditional — a predicate short-circuits to the first value with
//     zero draws; otherwise one uniform draw over all three
//   - BetLazy        — one draw picks one of three thunks; exactly that thunk
//     runs exactly once, so unselected side effects never occur
//   - MakeGenerator  — a reusable selector bound to three outcomes, drawing
//     from whichever context it is handed at call time
//
// All variants draw exclusively through *randctx.Context, so a seeded context
// replays every selection bit-for-bit.
//
// Outcomes are generic: any Go type works, and equality-based invariants
// (Bet(a,a,a) == a) hold for comparable types by structural equality.
package bet
