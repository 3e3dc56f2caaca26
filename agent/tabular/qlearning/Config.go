package qlearning

import (
	"fmt"

	"github.com/golake/golake/agent"
	"github.com/golake/golake/environment"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon      float64 // ε for the behaviour policy
	LearningRate float64

	// DecayEpsilon decays the behaviour policy's ε on a GLIE schedule
	// (ε = 1/(k+2) after episode k) when set
	DecayEpsilon bool
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
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %v",
			c.LearningRate)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyQLearning
}
