// lakelearn trains a model-free agent on a FrozenLake environment
// from sampled transitions only, tracking episodic returns and
// evaluating the learned greedy policy.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golake/golake/agent"
	"github.com/golake/golake/agent/tabular/montecarlo"
	"github.com/golake/golake/agent/tabular/qlearning"
	"github.com/golake/golake/agent/tabular/sarsa"
	"github.com/golake/golake/config"
	"github.com/golake/golake/experiment"
	"github.com/golake/golake/experiment/trackers"
	"github.com/golake/golake/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lakelearn: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging)

	f, _, err := cfg.CreateEnvironment()
	if err != nil {
		log.Fatalf("Could not create environment: %v", err)
	}
	log.Infof("Training %v on %v lake (slippery: %v) for %d steps",
		cfg.Learn.Algorithm, cfg.Lake.Map, cfg.Lake.Slippery,
		cfg.Learn.MaxSteps)

	var agentConfig agent.Config
	switch cfg.Learn.Algorithm {
	case config.QLearning:
		agentConfig = qlearning.Config{
			Epsilon:      cfg.Learn.Epsilon,
			LearningRate: cfg.Learn.LearningRate,
			DecayEpsilon: cfg.Learn.DecayEpsilon,
		}
	case config.Sarsa:
		agentConfig = sarsa.Config{
			Epsilon:      cfg.Learn.Epsilon,
			LearningRate: cfg.Learn.LearningRate,
			DecayEpsilon: cfg.Learn.DecayEpsilon,
		}
	case config.MonteCarlo:
		agentConfig = montecarlo.Config{Epsilon: cfg.Learn.Epsilon}
	default:
		log.Fatalf("No such algorithm %q", cfg.Learn.Algorithm)
	}

	a, err := agentConfig.CreateAgent(f, cfg.Lake.Seed)
	if err != nil {
		log.Fatalf("Could not create agent: %v", err)
	}

	returns := trackers.NewReturn(cfg.Learn.ReturnsFile)
	e := experiment.NewOnline(f, a, cfg.Learn.MaxSteps,
		[]trackers.Tracker{returns})
	e.DisplayProgress()

	if err := e.Run(); err != nil {
		log.Fatalf("Experiment failed: %v", err)
	}
	if err := e.Save(); err != nil {
		log.Fatalf("Could not save tracked data: %v", err)
	}

	episodeReturns := returns.Returns()
	log.Infof("Completed %d episodes", len(episodeReturns))
	if n := len(episodeReturns); n >= 10 {
		log.Infof("Last 10 episodic returns: %v", episodeReturns[n-10:])
	}

	greedier, ok := a.(agent.GreedyPolicier)
	if !ok {
		log.Fatalf("Agent %T cannot provide a greedy policy", a)
	}
	greedy := greedier.GreedyPolicy()

	rate, err := experiment.SuccessRate(f, greedy, cfg.Learn.EvalEpisodes,
		cfg.Lake.Cutoff)
	if err != nil {
		log.Fatalf("Could not evaluate policy: %v", err)
	}
	log.Infof("Greedy policy success rate over %d episodes: %.2f%%",
		cfg.Learn.EvalEpisodes, rate*100)

	fmt.Println("Greedy trajectory:")
	episodeReturn, done, err := experiment.RenderEpisode(f, greedy,
		cfg.Lake.Cutoff, os.Stdout)
	if err != nil {
		log.Fatalf("Could not render episode: %v", err)
	}
	if !done {
		log.Warnf("The agent did not reach a terminal state in %d steps",
			cfg.Lake.Cutoff)
	} else {
		log.Infof("Episode return: %v", episodeReturn)
	}
}
