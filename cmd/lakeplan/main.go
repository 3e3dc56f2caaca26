// lakeplan solves a FrozenLake environment with a known model,
// computing an optimal policy with both Value Iteration and Policy
// Iteration and rendering the greedy policy acting in the
// environment.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/config"
	"github.com/golake/golake/environment/frozenlake"
	"github.com/golake/golake/experiment"
	"github.com/golake/golake/logger"
	"github.com/golake/golake/planner"
	"github.com/golake/golake/utils/matutils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lakeplan: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging)

	f, _, err := cfg.CreateEnvironment()
	if err != nil {
		log.Fatalf("Could not create environment: %v", err)
	}
	log.Infof("Planning on %v lake (slippery: %v, discount: %v)",
		cfg.Lake.Map, cfg.Lake.Slippery, cfg.Lake.Discount)

	model := f.Model()

	vi, err := planner.NewValueIteration(model, cfg.Lake.Discount,
		cfg.Plan.Theta, cfg.Plan.MaxIterations)
	if err != nil {
		log.Fatalf("Could not create Value Iteration planner: %v", err)
	}
	viResult := vi.Plan()
	log.Infof("Value Iteration converged after %d sweeps",
		viResult.Iterations)

	pi, err := planner.NewPolicyIteration(model, cfg.Lake.Discount,
		cfg.Plan.Theta, cfg.Plan.MaxIterations)
	if err != nil {
		log.Fatalf("Could not create Policy Iteration planner: %v", err)
	}
	piResult := pi.Plan()
	log.Infof("Policy Iteration stable after %d improvement steps",
		piResult.Iterations)

	fmt.Println("Optimal state values:")
	fmt.Println(matutils.Format(frozenlake.ValueGrid(f.Lake(),
		viResult.Values)))
	fmt.Println()
	fmt.Println("Value Iteration policy:")
	fmt.Println(frozenlake.PolicyString(f.Lake(), viResult.Policy))
	fmt.Println()
	fmt.Println("Policy Iteration policy:")
	fmt.Println(frozenlake.PolicyString(f.Lake(), piResult.Policy))
	fmt.Println()

	greedy, err := policy.NewDeterministic(viResult.Policy)
	if err != nil {
		log.Fatalf("Could not create greedy policy: %v", err)
	}

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
