// Package search provides tunable options, error definitions, and the
// result/statistics types shared by Uniform Cost Search and A*.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/warekit/warekit/grid"
)

// Sentinel errors for search invocation. An unreachable goal is NOT an
// error: both algorithms report it as a nil path with valid Stats.
var (
	// ErrNilTerrain is returned if a nil terrain collaborator is passed.
	ErrNilTerrain = errors.New("search: terrain is nil")

	// ErrInvalidPosition is returned when start or goal is out of bounds
	// or impassable. Wrapped with the offending endpoint.
	ErrInvalidPosition = errors.New("search: position is blocked or out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultMaxExpansions bounds a single search as a safety valve against
// runaway expansion; it is generous for the small grids this library
// targets (≤ tens of thousands of cells).
const DefaultMaxExpansions = 10000

// Terrain is the only capability the search core consumes from the
// environment: a predicate marking impassable cells (walls and
// out-of-bounds alike). Both *grid.Grid and *grid.Env satisfy it.
// Move vectors come from grid.MoveDeltas in grid.CardinalActions order.
type Terrain interface {
	IsBlocked(row, col int) bool
}

// Heuristic estimates the remaining cost from a position to the goal.
// It must be admissible (never overestimate) for A* to stay optimal,
// and consistent for the simple visited-set bookkeeping to be valid.
type Heuristic func(from, goal grid.Position) int

// ManhattanDistance is the default heuristic: |Δrow| + |Δcol|.
// On a unit-cost grid with cardinal moves it is both admissible and
// consistent, so A* returns the same optimal path length as UCS.
func ManhattanDistance(from, goal grid.Position) int {
	return from.Manhattan(goal)
}

// Stats records execution diagnostics of one search call.
type Stats struct {
	// Expanded counts finalized nodes (popped and committed), not
	// merely generated ones.
	Expanded int
	// PathLength is the returned path length in cells, including both
	// endpoints; 0 when no path was found.
	PathLength int
	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
	// FrontierPeak is the maximum frontier size observed.
	FrontierPeak int
}

// Millis reports Elapsed in milliseconds.
func (s Stats) Millis() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// Options holds the parameters of one search call.
type Options struct {
	// MaxExpansions aborts the search once exceeded. Must be > 0.
	MaxExpansions int
	// Heuristic is consulted by A* only; UCS behaves as if it were
	// identically zero. Must be non-nil.
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic and the
// standard expansion cap.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: DefaultMaxExpansions,
		Heuristic:     ManhattanDistance,
	}
}

// WithMaxExpansions overrides the expansion safety cap.
//
//	n > 0:  abort after n expansions
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the heuristic used by A*.
// A nil heuristic is invalid and surfaces as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: Heuristic must be non-nil", ErrOptionViolation)

			return
		}
		o.Heuristic = h
	}
}
