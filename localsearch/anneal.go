package localsearch

import (
	"math"

	"github.com/warekit/warekit/layout"
)

// Anneal performs simulated annealing from initial: each iteration
// proposes a random single-rack relocation (layout.Mutate) and accepts
// it when it improves the objective, or otherwise with the Metropolis
// probability exp(-Δ/T). The temperature follows the geometric schedule
// T ← Cooling·T from InitialTemp, and the loop stops after
// MaxIterations proposals or once T underflows the floor.
//
// Returns the best layout seen and the best-objective history, one
// entry for the initial layout plus one per iteration.
func Anneal(initial *layout.Layout, opts ...Option) (*layout.Layout, []float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if initial == nil {
		return nil, nil, ErrNilLayout
	}
	maxIters := o.MaxIterations
	if maxIters == 0 {
		maxIters = DefaultAnnealIterations
	}

	current := initial.Clone()
	currentObj := current.Objective()
	best := current.Clone()
	bestObj := currentObj
	temp := o.InitialTemp
	history := []float64{currentObj}

	for iter := 0; iter < maxIters; iter++ {
		candidate := current.Mutate(o.Rand)
		candidateObj := candidate.Objective()
		delta := candidateObj - currentObj

		if delta < 0 || o.Rand.Float64() < math.Exp(-delta/math.Max(temp, tempFloor)) {
			current, currentObj = candidate, candidateObj
			if currentObj < bestObj {
				best, bestObj = current.Clone(), currentObj
			}
		}
		history = append(history, bestObj)

		temp *= o.Cooling
		if temp < tempFloor {
			break
		}
	}

	return best, history, nil
}
