package layout

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/warekit/warekit/grid"
)

// Layout is one candidate rack placement: RackCount unique passable
// positions on a GridSize×GridSize floor, never on the depot. Layouts
// are immutable from the caller's point of view; every operation
// returns fresh copies.
type Layout struct {
	opts      Options
	positions []grid.Position
}

// New builds a layout from explicit rack positions, validating bounds,
// uniqueness, and depot avoidance. Positions are deep-copied.
func New(positions []grid.Position, opts Options) (*Layout, error) {
	if opts.GridSize < 2 {
		return nil, ErrBadGridSize
	}
	if len(positions) > opts.GridSize*opts.GridSize-1 {
		return nil, ErrTooManyRacks
	}
	seen := make(map[grid.Position]struct{}, len(positions))
	for _, p := range positions {
		if p.Row < 0 || p.Row >= opts.GridSize || p.Col < 0 || p.Col >= opts.GridSize {
			return nil, fmt.Errorf("%w: (%d,%d) out of bounds", ErrPositionConflict, p.Row, p.Col)
		}
		if p == opts.Depot {
			return nil, fmt.Errorf("%w: (%d,%d) is the depot", ErrPositionConflict, p.Row, p.Col)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: (%d,%d) duplicated", ErrPositionConflict, p.Row, p.Col)
		}
		seen[p] = struct{}{}
	}
	cp := make([]grid.Position, len(positions))
	copy(cp, positions)

	return &Layout{opts: opts, positions: cp}, nil
}

// Random draws RackCount distinct non-depot cells using r.
func Random(r *rand.Rand, opts Options) (*Layout, error) {
	if opts.GridSize < 2 {
		return nil, ErrBadGridSize
	}
	free := freeCells(opts, nil)
	if opts.RackCount > len(free) {
		return nil, ErrTooManyRacks
	}
	r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	return &Layout{opts: opts, positions: free[:opts.RackCount:opts.RackCount]}, nil
}

// freeCells lists every cell that is neither the depot nor occupied.
func freeCells(opts Options, occupied []grid.Position) []grid.Position {
	taken := make(map[grid.Position]struct{}, len(occupied)+1)
	taken[opts.Depot] = struct{}{}
	for _, p := range occupied {
		taken[p] = struct{}{}
	}
	cells := make([]grid.Position, 0, opts.GridSize*opts.GridSize-len(taken))
	for x := 0; x < opts.GridSize; x++ {
		for y := 0; y < opts.GridSize; y++ {
			p := grid.Position{Row: x, Col: y}
			if _, t := taken[p]; !t {
				cells = append(cells, p)
			}
		}
	}

	return cells
}

// Options returns the problem instance this layout belongs to.
func (l *Layout) Options() Options { return l.opts }

// Positions returns a copy of the rack positions.
func (l *Layout) Positions() []grid.Position {
	cp := make([]grid.Position, len(l.positions))
	copy(cp, l.positions)

	return cp
}

// Objective scores the layout: mean Manhattan distance from depot to
// each rack, plus Lambda × (number of racks closer than
// CongestionRadius). Lower is better. O(RackCount).
func (l *Layout) Objective() float64 {
	if len(l.positions) == 0 {
		return 0
	}
	sum, congested := 0, 0
	for _, p := range l.positions {
		d := l.opts.Depot.Manhattan(p)
		sum += d
		if d < l.opts.CongestionRadius {
			congested++
		}
	}

	return float64(sum)/float64(len(l.positions)) + l.opts.Lambda*float64(congested)
}

// Clone returns an independent copy.
func (l *Layout) Clone() *Layout {
	return &Layout{opts: l.opts, positions: l.Positions()}
}

// Neighbors generates every layout reachable by moving exactly one rack
// one cell in a cardinal direction, preserving bounds, uniqueness, and
// depot avoidance. O(RackCount²) including uniqueness checks.
func (l *Layout) Neighbors() []*Layout {
	occupied := make(map[grid.Position]struct{}, len(l.positions))
	for _, p := range l.positions {
		occupied[p] = struct{}{}
	}
	var out []*Layout
	for i, p := range l.positions {
		for _, act := range grid.CardinalActions {
			d := grid.MoveDeltas[act]
			n := grid.Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
			if n.Row < 0 || n.Row >= l.opts.GridSize || n.Col < 0 || n.Col >= l.opts.GridSize {
				continue
			}
			if n == l.opts.Depot {
				continue
			}
			if _, taken := occupied[n]; taken {
				continue
			}
			moved := l.Clone()
			moved.positions[i] = n
			out = append(out, moved)
		}
	}

	return out
}

// Mutate relocates one random rack to a random free cell, returning the
// mutated copy. If no free cell exists, the clone is unchanged.
func (l *Layout) Mutate(r *rand.Rand) *Layout {
	next := l.Clone()
	free := freeCells(l.opts, l.positions)
	if len(free) == 0 || len(next.positions) == 0 {
		return next
	}
	i := r.Intn(len(next.positions))
	next.positions[i] = free[r.Intn(len(free))]

	return next
}

// Render draws the floor as text: 'X' depot, 'R' racks, '.' floor.
func (l *Layout) Render() string {
	rows := make([][]rune, l.opts.GridSize)
	for r := range rows {
		rows[r] = make([]rune, l.opts.GridSize)
		for c := range rows[r] {
			rows[r][c] = '.'
		}
	}
	rows[l.opts.Depot.Row][l.opts.Depot.Col] = 'X'
	for _, p := range l.positions {
		rows[p.Row][p.Col] = 'R'
	}
	var b strings.Builder
	for r := range rows {
		b.WriteString(string(rows[r]))
		b.WriteByte('\n')
	}

	return b.String()
}
