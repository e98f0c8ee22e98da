package agent

import (
	"math/rand"

	"github.com/warekit/warekit/grid"
)

// Reflex is a stateless condition-action agent:
//
//   - on the pickup tile without the item: Pick
//   - on the dropoff tile with the item: Drop
//   - otherwise step toward the current target (pickup when empty,
//     dropoff when carrying), preferring the axis with the larger
//     remaining distance
//   - when the preferred move is blocked, fall back to any valid
//     distance-reducing move, then to a random valid move
//
// Reflex keeps no history: every decision uses only the current
// percept, so Reset is a no-op.
type Reflex struct {
	rng *rand.Rand
}

// NewReflex builds a reflex agent. Only WithRand/WithSeed matter here.
func NewReflex(opts ...Option) (*Reflex, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Reflex{rng: o.Rand}, nil
}

// Reset is a no-op: the reflex agent is stateless.
func (a *Reflex) Reset() {}

// Select applies the condition-action rules to obs.
func (a *Reflex) Select(obs grid.Observation, g *grid.Grid) grid.Action {
	if !obs.Carrying && obs.Robot == obs.Pickup {
		return grid.Pick
	}
	if obs.Carrying && obs.Robot == obs.Dropoff {
		return grid.Drop
	}

	target := obs.Pickup
	if obs.Carrying {
		target = obs.Dropoff
	}

	// Prefer the axis with the larger remaining distance.
	dr := target.Row - obs.Robot.Row
	dc := target.Col - obs.Robot.Col
	var preferred grid.Action
	if abs(dr) >= abs(dc) {
		preferred = grid.South
		if dr < 0 {
			preferred = grid.North
		}
	} else {
		preferred = grid.West
		if dc > 0 {
			preferred = grid.East
		}
	}
	if _, ok := g.Neighbor(obs.Robot, preferred); ok {
		return preferred
	}

	if best := reducingMoves(g, obs.Robot, target); len(best) > 0 {
		return choose(a.rng, best)
	}

	return randomValidMove(a.rng, g, obs.Robot)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
