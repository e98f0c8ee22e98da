package agent

import (
	"math/rand"

	"github.com/warekit/warekit/grid"
)

// Greedy is a Manhattan-greedy agent with loop handling: it remembers
// its last LoopHistory positions and, on revisiting one, spends
// EscapeSteps moves in escape mode before resuming plain greed. Without
// the detector the agent oscillates forever in concave wall pockets.
type Greedy struct {
	rng         *rand.Rand
	loopHistory int
	escapeSteps int

	recent  []grid.Position // ring buffer of recent positions
	escape  int             // remaining escape moves
}

// NewGreedy builds a greedy agent; tune it with WithLoopHistory,
// WithEscapeSteps, and WithRand/WithSeed.
func NewGreedy(opts ...Option) (*Greedy, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Greedy{
		rng:         o.Rand,
		loopHistory: o.LoopHistory,
		escapeSteps: o.EscapeSteps,
	}, nil
}

// Reset clears the loop detector and escape counter.
func (a *Greedy) Reset() {
	a.recent = a.recent[:0]
	a.escape = 0
}

// Select chooses the next action.
func (a *Greedy) Select(obs grid.Observation, g *grid.Grid) grid.Action {
	pos := obs.Robot

	// On a pickup/dropoff tile, do the matching action.
	if !obs.Carrying && pos == obs.Pickup {
		return grid.Pick
	}
	if obs.Carrying && pos == obs.Dropoff {
		return grid.Drop
	}

	// Standing on the dropoff bay without the item: head for the pickup.
	if !obs.Carrying && pos == obs.Dropoff {
		if best := reducingMoves(g, pos, obs.Pickup); len(best) > 0 {
			return choose(a.rng, best)
		}

		return randomValidMove(a.rng, g, pos)
	}

	target := obs.Pickup
	if obs.Carrying {
		target = obs.Dropoff
	}

	// Mid-escape: keep moving, goal-directed when possible.
	if a.escape > 0 {
		a.escape--
		if best := reducingMoves(g, pos, target); len(best) > 0 {
			return choose(a.rng, best)
		}

		return randomValidMove(a.rng, g, pos)
	}

	// Loop detection: revisiting a recent cell triggers escape mode.
	if a.visitedRecently(pos) {
		a.escape = a.escapeSteps
		if best := reducingMoves(g, pos, target); len(best) > 0 {
			return choose(a.rng, best)
		}

		return randomValidMove(a.rng, g, pos)
	}
	a.remember(pos)

	// Plain greed: any move that reduces the Manhattan distance.
	if best := reducingMoves(g, pos, target); len(best) > 0 {
		return choose(a.rng, best)
	}

	// Stuck in a local pocket: wander.
	return randomValidMove(a.rng, g, pos)
}

// visitedRecently reports whether pos is in the history window.
func (a *Greedy) visitedRecently(pos grid.Position) bool {
	for _, p := range a.recent {
		if p == pos {
			return true
		}
	}

	return false
}

// remember appends pos, evicting the oldest entry beyond the window.
func (a *Greedy) remember(pos grid.Position) {
	a.recent = append(a.recent, pos)
	if len(a.recent) > a.loopHistory {
		a.recent = a.recent[1:]
	}
}
