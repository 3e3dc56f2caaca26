package experiment

import (
	"fmt"

	"github.com/golake/golake/agent"
	env "github.com/golake/golake/environment"
	"github.com/golake/golake/experiment/trackers"
	ts "github.com/golake/golake/timestep"
	"github.com/golake/golake/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	environment  env.Environment
	agent        agent.Agent
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
	pbar         *progressbar.ProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many environmental timesteps the experiment is run for, and the t
// parameter is a slice of trackers.Tracker which determine what data
// is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t []trackers.Tracker) *Online {
	return &Online{
		environment: e,
		agent:       a,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with an Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// DisplayProgress makes the experiment display a progress bar over
// its total timesteps while running
func (o *Online) DisplayProgress() {
	o.pbar = progressbar.New(50, int(o.maxSteps))
}

// RunEpisode runs a single episode of the experiment, returning
// whether or not the max timestep limit has been reached
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset "+
			"environment: %v", err)
	}
	o.agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select an action and take it in the environment
		action := o.agent.SelectAction(step)
		step, _, err = o.environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: could not step "+
				"environment: %v", err)
		}

		o.track(step)

		// Observe the timestep and update the agent
		o.agent.Observe(action, step)
		o.agent.Step()

		if o.pbar != nil {
			o.pbar.Increment()
		}
	}

	if step.Last() {
		o.agent.EndEpisode()
	}
	if o.pbar != nil {
		o.pbar.Display()
	}

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	ended := false

	for !ended {
		var err error
		ended, err = o.RunEpisode()
		if err != nil {
			return err
		}
	}
	if o.pbar != nil {
		o.pbar.Close()
	}

	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
