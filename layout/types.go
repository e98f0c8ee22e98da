// Package layout defines the rack-placement toy optimization problem:
// a fixed number of racks on a square grid, scored by average Manhattan
// distance to a depot plus a congestion penalty for crowding it.
package layout

import (
	"errors"

	"github.com/warekit/warekit/grid"
)

// Sentinel errors for layout construction.
var (
	// ErrBadGridSize indicates a grid too small to be meaningful.
	ErrBadGridSize = errors.New("layout: grid size must be at least 2")
	// ErrTooManyRacks indicates more racks than free cells.
	ErrTooManyRacks = errors.New("layout: rack count exceeds available cells")
	// ErrPositionConflict indicates duplicate, out-of-bounds, or
	// depot-overlapping rack positions.
	ErrPositionConflict = errors.New("layout: invalid rack position")
)

// Problem defaults, matching the classroom instance: twenty racks on a
// 20×20 floor around a central depot.
const (
	DefaultGridSize         = 20
	DefaultRackCount        = 20
	DefaultLambda           = 2.0
	DefaultCongestionRadius = 5
)

// DefaultDepot returns the canonical depot cell (10, 10).
func DefaultDepot() grid.Position {
	return grid.Position{Row: 10, Col: 10}
}

// Options parameterizes a layout problem instance.
type Options struct {
	// GridSize is the side length of the square floor. Must be ≥ 2.
	GridSize int
	// RackCount is the number of racks to place.
	RackCount int
	// Depot is the fixed depot cell racks are scored against.
	Depot grid.Position
	// Lambda weights the congestion penalty in the objective.
	Lambda float64
	// CongestionRadius is the Manhattan distance below which a rack
	// counts as congesting the depot.
	CongestionRadius int
}

// DefaultOptions returns the classroom problem instance.
func DefaultOptions() Options {
	return Options{
		GridSize:         DefaultGridSize,
		RackCount:        DefaultRackCount,
		Depot:            DefaultDepot(),
		Lambda:           DefaultLambda,
		CongestionRadius: DefaultCongestionRadius,
	}
}
