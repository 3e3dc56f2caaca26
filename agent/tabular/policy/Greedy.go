package policy

import "github.com/golake/golake/environment"

// NewGreedy creates a new Greedy policy, which always selects a
// maximal-valued action. Ties are broken uniformly at random.
func NewGreedy(seed uint64, env environment.Environment) (*EGreedy, error) {
	return NewEGreedy(0.0, seed, env)
}
