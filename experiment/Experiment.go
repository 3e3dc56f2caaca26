// Package experiment implements functionality for running an
// experiment.
//
// Experiments track environment TimeSteps, caching data from each
// TimeStep in RAM through trackers.Tracker values. The Save() function
// then takes all cached data and saves it to disk, usually after the
// experiment has been run. The Run() method runs episodes until the
// maximum timestep limit is reached, and RunEpisode() runs a single
// episode.
package experiment

import (
	"github.com/golake/golake/experiment/trackers"
	ts "github.com/golake/golake/timestep"
)

// Experiment outlines structs that can run experiments
type Experiment interface {
	// Run runs the experiment until its timestep limit
	Run() error

	// RunEpisode runs a single episode, returning whether the
	// experiment's timestep limit has been reached
	RunEpisode() (bool, error)

	// Register adds a new Tracker to the (possibly already running)
	// experiment. Useful to track data only after a specified event.
	Register(t trackers.Tracker)

	// Save all tracked data to disk
	Save() error

	// track sends the current timestep to all Trackers
	track(ts.TimeStep)
}
