// Package trackers implements tracking and saving of data generated
// during experiments
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/golake/golake/timestep"
)

// Tracker tracks data generated during an experiment, caching it in
// RAM. The Save() function takes all cached data and saves it to disk,
// and is usually called after an experiment has been run.
type Tracker interface {
	// Track caches the data of interest on a timestep
	Track(t ts.TimeStep)

	// Save all tracked data to disk
	Save() error
}

// LoadData reads back the data saved to disk by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %v", err)
	}
	defer file.Close()

	var data []float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %v", err)
	}

	return data, nil
}
