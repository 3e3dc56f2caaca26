package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/golake/golake/timestep"
)

// EpisodeLength tracks and saves the number of timesteps in each
// episode of an experiment
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength creates and returns a new *EpisodeLength Tracker
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the length of an episode when the episode's last
// timestep is tracked
func (e *EpisodeLength) Track(step ts.TimeStep) {
	if step.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(step.Number))
	}
}

// EpisodeLengths returns the episode lengths tracked so far
func (e *EpisodeLength) EpisodeLengths() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() error {
	file, err := os.Create(e.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(e.episodeLengths); err != nil {
		return fmt.Errorf("save: could not encode episode length data: %v",
			err)
	}
	return nil
}
