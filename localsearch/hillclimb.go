// Package localsearch implements three metaheuristics over rack
// layouts. All of them minimize layout.Objective and return, along with
// the best layout found, the history of objective values that tests and
// plots can inspect.
//
// Every run is deterministic under an injected seeded rand source; no
// global randomness is consulted.
package localsearch

import "github.com/warekit/warekit/layout"

// HillClimb performs steepest-descent hill climbing from initial:
// at each round it evaluates every single-rack-move neighbor and steps
// to the best one, stopping at the first round with no strict
// improvement (a local optimum) or after MaxIterations rounds.
//
// Returns the final layout and the objective history, one entry for the
// initial layout plus one per accepted improvement.
//
// Complexity per round: O(N·M) objective evaluations for N racks and
// M ≤ 4N candidate moves.
func HillClimb(initial *layout.Layout, opts ...Option) (*layout.Layout, []float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if initial == nil {
		return nil, nil, ErrNilLayout
	}
	maxIters := o.MaxIterations
	if maxIters == 0 {
		maxIters = DefaultHillIterations
	}

	current := initial.Clone()
	currentObj := current.Objective()
	history := []float64{currentObj}

	for iter := 0; iter < maxIters; iter++ {
		neighbors := current.Neighbors()
		if len(neighbors) == 0 {
			break
		}
		// Pick the strictly best neighbor; generation order is
		// deterministic, so ties resolve to the first candidate.
		best := neighbors[0]
		bestObj := best.Objective()
		for _, n := range neighbors[1:] {
			if obj := n.Objective(); obj < bestObj {
				best, bestObj = n, obj
			}
		}
		if bestObj >= currentObj {
			break // local optimum
		}
		current, currentObj = best, bestObj
		history = append(history, currentObj)
	}

	return current, history, nil
}
