package montecarlo

import (
	"fmt"

	"github.com/golake/golake/agent"
	"github.com/golake/golake/environment"
)

// Config represents a configuration for the MonteCarlo agent
type Config struct {
	// Epsilon is the initial ε of the behaviour policy. It is decayed
	// on a GLIE schedule regardless of its starting value.
	Epsilon float64
}

// CreateAgent creates the agent described by the Config. Action values
// are initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyMonteCarlo
}
