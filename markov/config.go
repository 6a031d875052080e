// Package markov - YAML chain definitions.
//
// ChainConfig mirrors the on-disk shape documented in doc.go. Loading goes
// through the same validation as NewChain, so a config that decodes cleanly
// but describes a bad chain (row not summing to 1, unknown target) fails
// with the same sentinels as programmatic construction.
package markov

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig is returned when the YAML itself cannot be decoded or names
// no states at all.
var ErrBadConfig = errors.New("markov: invalid chain config")

// TransitionConfig is the YAML form of one transition.
type TransitionConfig struct {
	Next string  `yaml:"next"`
	Prob float64 `yaml:"prob"`
}

// ChainConfig is the YAML form of a whole chain. The state set is the key
// set of States; keys are sorted lexically to fix construction order, since
// YAML mappings are unordered.
type ChainConfig struct {
	Initial string                        `yaml:"initial"`
	States  map[string][]TransitionConfig `yaml:"states"`
}

// Chain validates the config and builds the immutable Chain value.
func (cfg *ChainConfig) Chain() (*Chain, error) {
	if len(cfg.States) == 0 {
		return nil, fmt.Errorf("%w: no states defined", ErrBadConfig)
	}

	table := make(map[string][]Transition, len(cfg.States))
	for s, row := range cfg.States {
		converted := make([]Transition, len(row))
		for i, tr := range row {
			converted[i] = Transition{Next: tr.Next, Prob: tr.Prob}
		}
		table[s] = converted
	}

	return NewChain(sortedStates(table), table, cfg.Initial)
}

// LoadChain decodes a YAML document into a validated Chain.
func LoadChain(data []byte) (*Chain, error) {
	var cfg ChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return cfg.Chain()
}

// LoadChainFile reads path and decodes it with LoadChain.
func LoadChainFile(path string) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return LoadChain(data)
}
