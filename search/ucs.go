// Package search implements Uniform Cost Search and A* over any
// grid-shaped terrain with unit-cost cardinal moves.
//
// Both algorithms share one contract: they return the optimal
// start→goal cell sequence (or nil when no path exists) together with
// execution statistics. "No path" and "expansion cap exhausted" are
// ordinary outcomes, never errors.
//
// Complexity (V passable cells, E ≤ 4V unit edges):
//
//   - Time:  O((V + E) log V)
//   - Each cell is finalized at most once: V pops that expand.
//   - Each relaxation may push a duplicate entry: up to E pushes
//     under the lazy-decrease-key strategy.
//   - Space: O(V + E) for the node arena, best-cost map, and heap.
package search

import (
	"fmt"
	"time"

	"github.com/warekit/warekit/grid"
)

// UniformCost expands nodes in increasing order of accumulated path
// cost g and returns the optimal path from start to goal, both
// inclusive, or nil when goal is unreachable or the expansion cap is
// exhausted first. Because every move costs exactly 1, the first time a
// cell is finalized it is at its true shortest-path cost.
//
// Ties between equal-cost nodes break by insertion order, so repeated
// calls with identical inputs return identical paths and statistics
// (Stats.Elapsed aside).
//
// Validation (in order): bad options → ErrOptionViolation, nil terrain
// → ErrNilTerrain, blocked or out-of-bounds endpoints →
// ErrInvalidPosition.
func UniformCost(start, goal grid.Position, t Terrain, opts ...Option) ([]grid.Position, Stats, error) {
	o, err := buildOptions(start, goal, t, opts)
	if err != nil {
		return nil, Stats{}, err
	}

	began := time.Now()
	var (
		nodes arena
		fr    frontier
		stats Stats
	)
	// best maps each position to the lowest cost at which it was
	// finalized; stale, higher-cost frontier duplicates are filtered on
	// pop against it.
	best := make(map[grid.Position]int)

	fr.push(0, nodes.add(node{pos: start, parent: noParent, g: 0, f: 0}))

	for fr.len() > 0 {
		it := fr.pop()
		n := nodes.at(it.node)

		// Goal test on pop: popping the goal commits to its optimal cost.
		if n.pos == goal {
			path := nodes.path(it.node)
			stats.PathLength = len(path)
			stats.FrontierPeak = fr.peak
			stats.Elapsed = time.Since(began)

			return path, stats, nil
		}

		// Skip stale entries: a cheaper (or equal) finalization exists.
		if c, done := best[n.pos]; done && c <= n.g {
			continue
		}

		// Finalize at cost g; the standard UCS argument guarantees this
		// is the true shortest-path cost (non-negative unit edges, pops
		// in non-decreasing cost order).
		best[n.pos] = n.g
		stats.Expanded++
		if stats.Expanded > o.MaxExpansions {
			break
		}

		expandUniform(&nodes, &fr, t, best, it.node, n)
	}

	// Frontier exhausted or cap hit: no path. Not an error.
	stats.FrontierPeak = fr.peak
	stats.Elapsed = time.Since(began)

	return nil, stats, nil
}

// expandUniform generates the passable cardinal neighbors of n,
// pushing each one whose candidate cost improves on (or first reaches)
// its recorded finalized cost.
func expandUniform(nodes *arena, fr *frontier, t Terrain, best map[grid.Position]int, idx int32, n node) {
	for _, act := range grid.CardinalActions {
		d := grid.MoveDeltas[act]
		nr, nc := n.pos.Row+d.DR, n.pos.Col+d.DC
		if t.IsBlocked(nr, nc) {
			continue
		}
		next := grid.Position{Row: nr, Col: nc}
		cost := n.g + 1
		if c, done := best[next]; done && c <= cost {
			continue
		}
		fr.push(cost, nodes.add(node{pos: next, parent: idx, action: act, g: cost, f: cost}))
	}
}

// buildOptions applies functional options and validates the call.
func buildOptions(start, goal grid.Position, t Terrain, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if t == nil {
		return o, ErrNilTerrain
	}
	if t.IsBlocked(start.Row, start.Col) {
		return o, fmt.Errorf("%w: start (%d,%d)", ErrInvalidPosition, start.Row, start.Col)
	}
	if t.IsBlocked(goal.Row, goal.Col) {
		return o, fmt.Errorf("%w: goal (%d,%d)", ErrInvalidPosition, goal.Row, goal.Col)
	}

	return o, nil
}
