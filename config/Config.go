// Package config loads run configuration for the golake binaries from
// defaults, an optional configuration file, and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	env "github.com/golake/golake/environment"
	"github.com/golake/golake/environment/frozenlake"
	ts "github.com/golake/golake/timestep"
)

// Lake map names available for configuration
const (
	FourByFour   string = "4x4"
	EightByEight string = "8x8"
)

// Algorithms available for the model-free binary
const (
	QLearning  string = "qlearning"
	Sarsa      string = "sarsa"
	MonteCarlo string = "montecarlo"
)

// Config is the root configuration struct containing all settings
type Config struct {
	Lake    LakeConfig    `mapstructure:"lake"`
	Plan    PlanConfig    `mapstructure:"plan"`
	Learn   LearnConfig   `mapstructure:"learn"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LakeConfig describes the environment both binaries run on
type LakeConfig struct {
	Map      string  `mapstructure:"map"`      // 4x4 or 8x8
	Slippery bool    `mapstructure:"slippery"` // stochastic movement
	Discount float64 `mapstructure:"discount"`
	Cutoff   int     `mapstructure:"cutoff"` // episode step limit
	Seed     uint64  `mapstructure:"seed"`
}

// PlanConfig contains settings for the model-based planners
type PlanConfig struct {
	Theta         float64 `mapstructure:"theta"` // convergence threshold
	MaxIterations int     `mapstructure:"max_iterations"`
}

// LearnConfig contains settings for the model-free agents
type LearnConfig struct {
	Algorithm    string  `mapstructure:"algorithm"`
	MaxSteps     uint    `mapstructure:"max_steps"`
	Epsilon      float64 `mapstructure:"epsilon"`
	LearningRate float64 `mapstructure:"learning_rate"`
	DecayEpsilon bool    `mapstructure:"decay_epsilon"`
	EvalEpisodes int     `mapstructure:"eval_episodes"`
	ReturnsFile  string  `mapstructure:"returns_file"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or text
}

// Load loads configuration from defaults, the optional configuration
// file at configPath, and GOLAKE_* environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load: could not read config file: %v",
				err)
		}
	}

	v.SetEnvPrefix("GOLAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load: could not unmarshal config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load: %v", err)
	}

	return &cfg, nil
}

// Validate ensures that the configuration is valid
func (c *Config) Validate() error {
	switch c.Lake.Map {
	case FourByFour, EightByEight:
	default:
		return fmt.Errorf("no such lake map %q", c.Lake.Map)
	}

	if c.Lake.Discount < 0 || c.Lake.Discount >= 1 {
		return fmt.Errorf("discount must be in [0, 1), got %v",
			c.Lake.Discount)
	}
	if c.Lake.Cutoff <= 0 {
		return fmt.Errorf("episode cutoff must be positive, got %d",
			c.Lake.Cutoff)
	}

	if c.Plan.Theta <= 0 {
		return fmt.Errorf("convergence threshold must be positive, got %v",
			c.Plan.Theta)
	}
	if c.Plan.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d",
			c.Plan.MaxIterations)
	}

	switch c.Learn.Algorithm {
	case QLearning, Sarsa, MonteCarlo:
	default:
		return fmt.Errorf("no such algorithm %q", c.Learn.Algorithm)
	}

	if c.Learn.Epsilon < 0 || c.Learn.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v",
			c.Learn.Epsilon)
	}
	if c.Learn.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %v",
			c.Learn.LearningRate)
	}
	if c.Learn.EvalEpisodes <= 0 {
		return fmt.Errorf("eval episodes must be positive, got %d",
			c.Learn.EvalEpisodes)
	}

	return nil
}

// CreateEnvironment creates the FrozenLake environment described by
// the configuration
func (c *Config) CreateEnvironment() (*frozenlake.FrozenLake, ts.TimeStep,
	error) {
	var rows [][]string
	switch c.Lake.Map {
	case FourByFour:
		rows = frozenlake.FourByFour
	case EightByEight:
		rows = frozenlake.EightByEight
	default:
		return nil, ts.TimeStep{}, fmt.Errorf("createEnvironment: no such "+
			"lake map %q", c.Lake.Map)
	}

	lake, err := frozenlake.NewLake(rows)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createEnvironment: %v", err)
	}

	var task env.Task = frozenlake.NewReachGoal(lake, c.Lake.Cutoff,
		c.Lake.Seed)

	return frozenlake.New(lake, task, c.Lake.Discount, c.Lake.Slippery,
		c.Lake.Seed)
}
