// Package grid models the warehouse floor as a rectangular matrix of
// passable and blocked cells, plus the episode dynamics on top of it.
//
// The static Grid answers exactly two questions for the search core:
// which four displacements exist (MoveDeltas) and whether a cell is
// impassable (IsBlocked, true for walls and out-of-bounds alike).
package grid

import "fmt"

// Grid is the immutable wall matrix of a warehouse floor.
// walls[r][c] == true marks an obstacle at row r, column c.
type Grid struct {
	height, width int
	walls         [][]bool
}

// Map cell characters accepted by ParseRunes and map files.
const (
	cellWall    = '#'
	cellFloor   = '.'
	cellStart   = 'S'
	cellPickup  = 'P'
	cellDropoff = 'D'
)

// New constructs a Grid from a wall matrix, deep-copying the input.
// Returns ErrEmptyGrid for empty input and ErrNonRectangular when row
// lengths differ. Complexity: O(H×W) time and memory.
func New(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(walls[0])
	for r, row := range walls {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation.
	cp := make([][]bool, len(walls))
	for r := range walls {
		cp[r] = make([]bool, w)
		copy(cp[r], walls[r])
	}

	return &Grid{height: len(walls), width: w, walls: cp}, nil
}

// ParseRunes builds a Grid plus marker positions from rows of map
// characters: '#' wall, '.' floor, 'S' start, 'P' pickup, 'D' dropoff.
// Marker cells are passable floor. Returns ErrUnknownCell for any other
// character; missing markers are reported by the caller (an Env needs
// all three, a bare pathfinding grid does not).
func ParseRunes(rows []string) (*Grid, Markers, error) {
	var m Markers
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, m, ErrEmptyGrid
	}
	walls := make([][]bool, len(rows))
	width := len([]rune(rows[0]))
	for r, line := range rows {
		cells := []rune(line)
		if len(cells) != width {
			return nil, m, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(cells), width)
		}
		walls[r] = make([]bool, width)
		for c, ch := range cells {
			switch ch {
			case cellWall:
				walls[r][c] = true
			case cellFloor:
			case cellStart:
				m.Start, m.HasStart = Position{r, c}, true
			case cellPickup:
				m.Pickup, m.HasPickup = Position{r, c}, true
			case cellDropoff:
				m.Dropoff, m.HasDropoff = Position{r, c}, true
			default:
				return nil, m, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownCell, ch, r, c)
			}
		}
	}
	g, err := New(walls)

	return g, m, err
}

// Markers carries the optional special cells found while parsing a map.
type Markers struct {
	Start, Pickup, Dropoff          Position
	HasStart, HasPickup, HasDropoff bool
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies within the grid. O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsBlocked reports whether (row, col) is impassable: out of bounds or
// a wall. This is the predicate the search core navigates by. O(1).
func (g *Grid) IsBlocked(row, col int) bool {
	return !g.InBounds(row, col) || g.walls[row][col]
}

// PassableCells returns all passable positions in row-major order.
// Handy for randomized placement and for reachability assertions.
func (g *Grid) PassableCells() []Position {
	cells := make([]Position, 0, g.height*g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if !g.walls[r][c] {
				cells = append(cells, Position{r, c})
			}
		}
	}

	return cells
}

// Neighbor returns the cell reached from p by act and whether the move
// stays passable. Non-move actions never relocate. O(1).
func (g *Grid) Neighbor(p Position, act Action) (Position, bool) {
	d, ok := MoveDeltas[act]
	if !ok {
		return p, false
	}
	n := Position{p.Row + d.DR, p.Col + d.DC}

	return n, !g.IsBlocked(n.Row, n.Col)
}
