package agent

import "github.com/golake/golake/environment"

// Type describes the type of agent constructed by a Config
type Type string

// Agent types that can be constructed from Configs
const (
	EGreedyQLearning  Type = "EGreedyQLearning"
	EGreedySarsa      Type = "EGreedySarsa"
	EGreedyMonteCarlo Type = "EGreedyMonteCarlo"
)

// Config represents a configuration from which an agent can be
// constructed. Configs are plain structs of hyperparameters and are
// JSON serializable.
type Config interface {
	// CreateAgent creates the agent described by the Config on the
	// argument environment
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// Validate ensures that the Config describes a valid agent
	Validate() error

	// Type returns the type of agent constructed by the Config
	Type() Type
}
