package config

import "github.com/spf13/viper"

// setDefaults registers the default value of every configuration key
func setDefaults(v *viper.Viper) {
	v.SetDefault("lake.map", FourByFour)
	v.SetDefault("lake.slippery", false)
	v.SetDefault("lake.discount", 0.9)
	v.SetDefault("lake.cutoff", 100)
	v.SetDefault("lake.seed", 192382)

	v.SetDefault("plan.theta", 1e-8)
	v.SetDefault("plan.max_iterations", 10_000)

	v.SetDefault("learn.algorithm", QLearning)
	v.SetDefault("learn.max_steps", 100_000)
	v.SetDefault("learn.epsilon", 0.1)
	v.SetDefault("learn.learning_rate", 0.1)
	v.SetDefault("learn.decay_epsilon", false)
	v.SetDefault("learn.eval_episodes", 500)
	v.SetDefault("learn.returns_file", "./returns.bin")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
