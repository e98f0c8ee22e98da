// Package grid defines core types, options, and sentinel errors
// for the warehouse grid world.
package grid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for grid construction and episode execution.
var (
	// ErrEmptyGrid indicates the input map has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates an unrecognized map character.
	ErrUnknownCell = errors.New("grid: unknown cell character")
	// ErrMissingMarker indicates a map without a required S/P/D marker.
	ErrMissingMarker = errors.New("grid: map is missing a required marker")
	// ErrBlockedCell indicates a marker or robot placed on a wall or out of bounds.
	ErrBlockedCell = errors.New("grid: cell is blocked or out of bounds")
	// ErrUnknownAction indicates an action the environment does not recognize.
	ErrUnknownAction = errors.New("grid: unknown action")
	// ErrOptionViolation indicates an invalid environment option.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Position identifies one grid cell as a (row, column) pair.
// It is an immutable value type: equality and map keys work by value.
type Position struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance |Δrow| + |Δcol| to other.
func (p Position) Manhattan(other Position) int {
	dr := p.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - other.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Action is one discrete command the robot can execute.
type Action string

// The seven warehouse actions. The four cardinal moves always appear in
// the fixed order N, E, S, W wherever neighbors are generated, which
// makes every traversal in this module reproducible.
const (
	North Action = "N"
	East  Action = "E"
	South Action = "S"
	West  Action = "W"
	Pick  Action = "PICK"
	Drop  Action = "DROP"
	Wait  Action = "WAIT"
)

// Delta is a (row, column) displacement of a single move.
type Delta struct {
	DR, DC int
}

// MoveDeltas maps each cardinal move to its displacement.
// Row 0 is the top row, so North decreases the row index.
var MoveDeltas = map[Action]Delta{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// CardinalActions lists the four move actions in their canonical
// expansion order.
var CardinalActions = [4]Action{North, East, South, West}

// Default episode parameters.
const (
	// DefaultMaxSteps truncates an episode after this many steps.
	DefaultMaxSteps = 200
	// DefaultBattery is the robot's starting charge; each step drains one unit.
	DefaultBattery = 100
)

// Default reward shaping, reconstructed to keep greedy episodes
// mildly penalized for wandering and strongly rewarded for delivery.
const (
	RewardStep    = -0.1
	RewardInvalid = -1.0
	RewardPick    = 10.0
	RewardDrop    = 20.0
)

// EnvOptions holds tunable parameters for a warehouse episode.
type EnvOptions struct {
	// MaxSteps truncates the episode when reached. Must be > 0.
	MaxSteps int
	// Battery is the starting charge; the episode truncates at 0. Must be > 0.
	Battery int
	// Rand is used for randomized resets. Defaults to a fixed-seed source
	// so that Reset(WithRandomize()) is reproducible unless reseeded.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// EnvOption configures an Env via functional arguments.
type EnvOption func(*EnvOptions)

// DefaultEnvOptions returns EnvOptions with the standard episode
// parameters and a deterministic seed-0 random source.
func DefaultEnvOptions() EnvOptions {
	return EnvOptions{
		MaxSteps: DefaultMaxSteps,
		Battery:  DefaultBattery,
		Rand:     rand.New(rand.NewSource(0)),
	}
}

// WithMaxSteps overrides the episode step cap.
// n <= 0 is invalid and surfaces as ErrOptionViolation.
func WithMaxSteps(n int) EnvOption {
	return func(o *EnvOptions) {
		if n <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxSteps = n
	}
}

// WithBattery overrides the starting battery charge.
// n <= 0 is invalid and surfaces as ErrOptionViolation.
func WithBattery(n int) EnvOption {
	return func(o *EnvOptions) {
		if n <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.Battery = n
	}
}

// WithRand injects the random source used by randomized resets.
func WithRand(r *rand.Rand) EnvOption {
	return func(o *EnvOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) EnvOption {
	return func(o *EnvOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// Observation is the percept handed to agents each step: everything the
// small, fully observed warehouse exposes.
type Observation struct {
	Robot    Position
	Pickup   Position
	Dropoff  Position
	Carrying bool
	Battery  int
	Step     int
}
