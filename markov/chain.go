package markov

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ternbet/randctx"
)

// probTolerance is the floating tolerance for row sums: each state's
// transition probabilities must sum to 1 within this bound.
const probTolerance = 1e-9

// Sentinel errors for chain construction and simulation.
var (
	// ErrNoStates is returned when the state set is empty.
	ErrNoStates = errors.New("markov: chain needs at least one state")

	// ErrDuplicateState is returned when the state set lists an ID twice.
	ErrDuplicateState = errors.New("markov: duplicate state")

	// ErrUnknownState is returned when the initial state, a transition row
	// key, or a transition target is not a member of the state set.
	ErrUnknownState = errors.New("markov: unknown state referenced")

	// ErrMissingRow is returned when a state has no transition row.
	ErrMissingRow = errors.New("markov: state has no transition row")

	// ErrBadProbability is returned when a transition probability is
	// negative or NaN.
	ErrBadProbability = errors.New("markov: transition probability must be non-negative")

	// ErrProbabilitySum is returned when a row does not sum to 1 within
	// tolerance.
	ErrProbabilitySum = errors.New("markov: transition probabilities must sum to 1")

	// ErrNegativeSteps is returned when a simulation step count is negative.
	ErrNegativeSteps = errors.New("markov: steps must be non-negative")
)

// Transition is one entry of a state's transition row: the next state and
// the probability of moving there.
type Transition struct {
	Next string
	Prob float64
}

// Chain is an immutable finite Markov chain. Build one with NewChain or
// LoadChain; the zero value is not usable.
type Chain struct {
	states  []string
	table   map[string][]Transition
	initial string
}

// NewChain validates and builds a Chain.
//
// Contracts:
//   - states must be non-empty and free of duplicates.
//   - initial must be a member of states.
//   - Every state must have a transition row in table; rows for states not
//     in the set are rejected.
//   - Every Transition.Next must be a member of states, every probability
//     non-negative, and every row must sum to 1 within 1e-9.
//
// The rows are copied; later mutation of table does not affect the Chain.
//
// Complexity: O(S + T) over S states and T transitions.
func NewChain(states []string, table map[string][]Transition, initial string) (*Chain, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	member := make(map[string]bool, len(states))
	for _, s := range states {
		if member[s] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s)
		}
		member[s] = true
	}

	if !member[initial] {
		return nil, fmt.Errorf("%w: initial state %q", ErrUnknownState, initial)
	}
	for s := range table {
		if !member[s] {
			return nil, fmt.Errorf("%w: row key %q", ErrUnknownState, s)
		}
	}

	copied := make(map[string][]Transition, len(states))
	for _, s := range states {
		row, ok := table[s]
		if !ok || len(row) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingRow, s)
		}

		sum := 0.0
		for _, tr := range row {
			if !member[tr.Next] {
				return nil, fmt.Errorf("%w: target %q in row %q", ErrUnknownState, tr.Next, s)
			}
			if tr.Prob < 0 || math.IsNaN(tr.Prob) {
				return nil, fmt.Errorf("%w: %v in row %q", ErrBadProbability, tr.Prob, s)
			}
			sum += tr.Prob
		}
		if math.Abs(sum-1) > probTolerance {
			return nil, fmt.Errorf("%w: row %q sums to %v", ErrProbabilitySum, s, sum)
		}

		copied[s] = append([]Transition(nil), row...)
	}

	return &Chain{
		states:  append([]string(nil), states...),
		table:   copied,
		initial: initial,
	}, nil
}

// States returns the state set in construction order.
func (c *Chain) States() []string {
	return append([]string(nil), c.states...)
}

// Initial returns the designated initial state.
func (c *Chain) Initial() string { return c.initial }

// Row returns a copy of the transition row for state s and whether s exists.
func (c *Chain) Row(s string) ([]Transition, bool) {
	row, ok := c.table[s]
	if !ok {
		return nil, false
	}

	return append([]Transition(nil), row...), true
}

// Option configures a simulation run.
type Option func(*simOptions)

type simOptions struct {
	onStep func(step int, state string)
}

// WithOnStep registers a callback invoked after every transition with the
// 1-based step number and the state just entered.
func WithOnStep(fn func(step int, state string)) Option {
	return func(o *simOptions) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

// Simulate walks the chain for steps transitions and returns the trajectory
// of steps+1 states, beginning at the initial state.
//
// Each transition consumes exactly one ambient draw; the next state is
// chosen by cumulative-probability bucketing over the current row in its
// given order. If accumulated floating error leaves the draw above the
// final threshold, the last entry of the row wins.
//
// Returns ErrNegativeSteps for steps < 0.
//
// Complexity: O(steps · R) with R the maximum row length.
func (c *Chain) Simulate(rc *randctx.Context, steps int, opts ...Option) ([]string, error) {
	if steps < 0 {
		return nil, ErrNegativeSteps
	}

	var o simOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]string, steps+1)
	out[0] = c.initial

	cur := c.initial
	for i := 1; i <= steps; i++ {
		row := c.table[cur]
		r := rc.Float64()

		acc := 0.0
		next := row[len(row)-1].Next // fallback for floating drift
		for _, tr := range row {
			acc += tr.Prob
			if r < acc {
				next = tr.Next

				break
			}
		}

		cur = next
		out[i] = cur
		if o.onStep != nil {
			o.onStep(i, cur)
		}
	}

	return out, nil
}

// StationaryDistribution estimates the chain's long-run state distribution
// by power iteration: start with all mass on the initial state and push it
// through the transition table iters times. Consumes no randomness.
//
// For ergodic chains this converges to the stationary distribution; for
// periodic or reducible chains it reports the mass after exactly iters
// pushes, which is still well-defined and deterministic.
//
// Returns ErrNegativeSteps for iters < 0.
//
// Complexity: O(iters · T) over T transitions.
func (c *Chain) StationaryDistribution(iters int) (map[string]float64, error) {
	if iters < 0 {
		return nil, ErrNegativeSteps
	}

	mass := map[string]float64{c.initial: 1}
	for i := 0; i < iters; i++ {
		next := make(map[string]float64, len(c.states))
		// Iterate states in construction order for deterministic float
		// accumulation.
		for _, s := range c.states {
			m := mass[s]
			if m == 0 {
				continue
			}
			for _, tr := range c.table[s] {
				next[tr.Next] += m * tr.Prob
			}
		}
		mass = next
	}

	// Report every state, including zero-mass ones, for a stable shape.
	out := make(map[string]float64, len(c.states))
	for _, s := range c.states {
		out[s] = mass[s]
	}

	return out, nil
}

// sortedStates returns the state set in lexical order; used by LoadChain,
// where YAML mappings carry no order of their own.
func sortedStates(rows map[string][]Transition) []string {
	out := make([]string, 0, len(rows))
	for s := range rows {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
