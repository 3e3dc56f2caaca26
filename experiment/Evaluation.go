package experiment

import (
	"fmt"

	"github.com/golake/golake/agent"
	env "github.com/golake/golake/environment"
)

// SuccessRate evaluates how often a policy reaches the goal of an
// environment's task. The policy is run for the argument number of
// episodes, each cut off after maxSteps steps, and the fraction of
// episodes ending in a goal state is returned.
func SuccessRate(environment env.Environment, p agent.Policy,
	episodes, maxSteps int) (float64, error) {
	if episodes <= 0 {
		return 0, fmt.Errorf("successRate: episodes must be positive, "+
			"got %d", episodes)
	}

	var successes float64
	for i := 0; i < episodes; i++ {
		step, err := environment.Reset()
		if err != nil {
			return 0, fmt.Errorf("successRate: could not reset "+
				"environment: %v", err)
		}

		for j := 0; j < maxSteps && !step.Last(); j++ {
			action := p.SelectAction(step)
			step, _, err = environment.Step(action)
			if err != nil {
				return 0, fmt.Errorf("successRate: could not step "+
					"environment: %v", err)
			}
		}

		if environment.AtGoal(step.Observation) {
			successes++
		}
	}

	return successes / float64(episodes), nil
}
