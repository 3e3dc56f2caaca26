// Package floatutils provides utilities for working with floats
package floatutils

// MaxSlice gets the maximum value and the indices of all maximum
// values in a slice of float64
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i, value := range values[1:] {
		if value > max {
			max = value
			indices = []int{i + 1}
		} else if value == max {
			indices = append(indices, i+1)
		}
	}
	return
}
