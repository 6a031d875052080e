// Package markov_test provides runnable examples for chain simulation.
package markov_test

import (
	"fmt"

	"github.com/katalvlaran/ternbet/markov"
	"github.com/katalvlaran/ternbet/randctx"
)

// ExampleChain_Simulate demonstrates a reproducible weather trajectory.
func ExampleChain_Simulate() {
	// 1) Two states, rows summing to 1, starting sunny.
	ch, err := markov.NewChain(
		[]string{"sunny", "rainy"},
		map[string][]markov.Transition{
			"sunny": {{Next: "sunny", Prob: 0.8}, {Next: "rainy", Prob: 0.2}},
			"rainy": {{Next: "sunny", Prob: 0.4}, {Next: "rainy", Prob: 0.6}},
		},
		"sunny",
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 2) Simulate one week; steps+1 states, one draw per transition.
	traj, _ := ch.Simulate(randctx.NewSeeded(2024), 7)
	fmt.Println("days:", len(traj), "first:", traj[0])
	// Output: days: 8 first: sunny
}

// ExampleLoadChain demonstrates defining a chain in YAML.
func ExampleLoadChain() {
	ch, err := markov.LoadChain([]byte(`
initial: idle
states:
  idle:
    - {next: idle, prob: 0.5}
    - {next: busy, prob: 0.5}
  busy:
    - {next: idle, prob: 1.0}
`))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(ch.Initial(), ch.States())
	// Output: idle [busy idle]
}
