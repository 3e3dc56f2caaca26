package experiment

import (
	"fmt"
	"io"

	"github.com/golake/golake/agent"
	env "github.com/golake/golake/environment"
)

// RenderEpisode runs a single episode of a policy acting in a
// renderable environment, writing the rendered environment to w after
// every step. The episodic return is returned, along with whether the
// episode reached a terminal state within maxSteps steps.
func RenderEpisode(r env.Renderer, p agent.Policy, maxSteps int,
	w io.Writer) (float64, bool, error) {
	step, err := r.Reset()
	if err != nil {
		return 0, false, fmt.Errorf("renderEpisode: could not reset "+
			"environment: %v", err)
	}
	fmt.Fprintf(w, "%v\n", r.Render())

	var episodeReturn float64
	for i := 0; i < maxSteps && !step.Last(); i++ {
		action := p.SelectAction(step)
		step, _, err = r.Step(action)
		if err != nil {
			return episodeReturn, false, fmt.Errorf("renderEpisode: could "+
				"not step environment: %v", err)
		}
		episodeReturn += step.Reward

		fmt.Fprintf(w, "%v\n", r.Render())
	}

	return episodeReturn, step.Last(), nil
}
