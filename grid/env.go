package grid

import (
	"fmt"
	"math/rand"
)

// Env runs one warehouse episode: a robot that must reach the pickup
// shelf, grab the item, carry it to the dropoff bay, and drop it, all
// before the step cap or the battery runs out.
//
// Env is not safe for concurrent use; run one episode per Env value.
// It satisfies the search core's terrain contract via IsBlocked.
type Env struct {
	grid    *Grid
	opts    EnvOptions
	start   Position
	pickup  Position
	dropoff Position

	robot    Position
	carrying bool
	battery  int
	steps    int
	done     bool
}

// NewEnv builds an environment over g with the given marker cells.
// All three markers must be present, in bounds, and passable.
// Returns ErrMissingMarker or ErrBlockedCell otherwise.
func NewEnv(g *Grid, m Markers, opts ...EnvOption) (*Env, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	o := DefaultEnvOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.HasStart || !m.HasPickup || !m.HasDropoff {
		return nil, fmt.Errorf("%w: need start, pickup and dropoff", ErrMissingMarker)
	}
	for _, p := range []Position{m.Start, m.Pickup, m.Dropoff} {
		if g.IsBlocked(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: marker at (%d,%d)", ErrBlockedCell, p.Row, p.Col)
		}
	}

	e := &Env{
		grid:    g,
		opts:    o,
		start:   m.Start,
		pickup:  m.Pickup,
		dropoff: m.Dropoff,
	}
	e.Reset()

	return e, nil
}

// Grid returns the static floor the episode runs on.
func (e *Env) Grid() *Grid { return e.grid }

// IsBlocked reports whether (row, col) is impassable on the floor.
// Present so an *Env can be handed directly to the search core.
func (e *Env) IsBlocked(row, col int) bool { return e.grid.IsBlocked(row, col) }

// Reset rewinds the episode to its initial state and returns the first
// observation. With randomize=true, start, pickup, and dropoff are
// re-drawn from distinct passable cells using the configured source.
func (e *Env) Reset(randomize ...bool) Observation {
	if len(randomize) > 0 && randomize[0] {
		e.randomizeMarkers(e.opts.Rand)
	}
	e.robot = e.start
	e.carrying = false
	e.battery = e.opts.Battery
	e.steps = 0
	e.done = false

	return e.Observe()
}

// randomizeMarkers draws three distinct passable cells for start,
// pickup, and dropoff.
func (e *Env) randomizeMarkers(r *rand.Rand) {
	cells := e.grid.PassableCells()
	if len(cells) < 3 {
		return
	}
	r.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	e.start, e.pickup, e.dropoff = cells[0], cells[1], cells[2]
}

// Observe returns the current percept.
func (e *Env) Observe() Observation {
	return Observation{
		Robot:    e.robot,
		Pickup:   e.pickup,
		Dropoff:  e.dropoff,
		Carrying: e.carrying,
		Battery:  e.battery,
		Step:     e.steps,
	}
}

// Step executes one action and returns the next observation, the step
// reward, and the terminated/truncated flags. A terminated episode only
// ends by a successful Drop at the dropoff bay; truncation happens at
// the step cap or battery exhaustion. Unknown actions return
// ErrUnknownAction; stepping a finished episode is a no-op observation.
func (e *Env) Step(act Action) (Observation, float64, bool, bool, error) {
	if e.done {
		return e.Observe(), 0, true, false, nil
	}

	reward := RewardStep
	terminated := false

	switch act {
	case North, East, South, West:
		if next, ok := e.grid.Neighbor(e.robot, act); ok {
			e.robot = next
		} else {
			reward += RewardInvalid
		}
	case Pick:
		if !e.carrying && e.robot == e.pickup {
			e.carrying = true
			reward += RewardPick
		} else {
			reward += RewardInvalid
		}
	case Drop:
		if e.carrying && e.robot == e.dropoff {
			e.carrying = false
			reward += RewardDrop
			terminated = true
		} else {
			reward += RewardInvalid
		}
	case Wait:
		// deliberate no-op, still pays the step cost
	default:
		return e.Observe(), 0, false, false, fmt.Errorf("%w: %q", ErrUnknownAction, act)
	}

	e.steps++
	e.battery--
	truncated := !terminated && (e.steps >= e.opts.MaxSteps || e.battery <= 0)
	e.done = terminated || truncated

	return e.Observe(), reward, terminated, truncated, nil
}

// RenderGrid returns the current floor as a rune matrix frame:
// '#' wall, '.' floor, 'P' pickup, 'D' dropoff, 'R' robot
// ('C' while carrying). The robot overdraws markers it stands on.
func (e *Env) RenderGrid() [][]rune {
	frame := make([][]rune, e.grid.height)
	for r := 0; r < e.grid.height; r++ {
		frame[r] = make([]rune, e.grid.width)
		for c := 0; c < e.grid.width; c++ {
			if e.grid.walls[r][c] {
				frame[r][c] = cellWall
			} else {
				frame[r][c] = cellFloor
			}
		}
	}
	frame[e.pickup.Row][e.pickup.Col] = cellPickup
	frame[e.dropoff.Row][e.dropoff.Col] = cellDropoff
	robot := 'R'
	if e.carrying {
		robot = 'C'
	}
	frame[e.robot.Row][e.robot.Col] = robot

	return frame
}
