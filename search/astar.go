package search

import (
	"time"

	"github.com/warekit/warekit/grid"
)

// AStar expands nodes in increasing order of f = g + h(position, goal)
// and returns the optimal path from start to goal, both inclusive, or
// nil when goal is unreachable or the expansion cap is exhausted first.
//
// The heuristic defaults to ManhattanDistance and is replaceable via
// WithHeuristic. With any admissible, consistent heuristic the first
// pop of a position is already optimal, so the explored bookkeeping is
// a plain membership set (no cost comparison, unlike UniformCost), and
// the returned path length always equals UniformCost's for the same
// inputs while expanding no more nodes.
//
// Tie-breaking among equal-f nodes is by insertion order, matching
// UniformCost, so repeated identical calls reproduce the same path and
// statistics (Stats.Elapsed aside).
//
// Validation matches UniformCost: ErrOptionViolation, ErrNilTerrain,
// or ErrInvalidPosition.
func AStar(start, goal grid.Position, t Terrain, opts ...Option) ([]grid.Position, Stats, error) {
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
	// explored is a plain visited set: consistency of h makes the
	// first pop of any position optimal.
	explored := make(map[grid.Position]struct{})

	h0 := o.Heuristic(start, goal)
	fr.push(h0, nodes.add(node{pos: start, parent: noParent, g: 0, f: h0}))

	for fr.len() > 0 {
		it := fr.pop()
		n := nodes.at(it.node)

		if n.pos == goal {
			path := nodes.path(it.node)
			stats.PathLength = len(path)
			stats.FrontierPeak = fr.peak
			stats.Elapsed = time.Since(began)

			return path, stats, nil
		}

		if _, seen := explored[n.pos]; seen {
			continue
		}
		explored[n.pos] = struct{}{}
		stats.Expanded++
		if stats.Expanded > o.MaxExpansions {
			break
		}

		expandInformed(&nodes, &fr, t, explored, o.Heuristic, goal, it.node, n)
	}

	stats.FrontierPeak = fr.peak
	stats.Elapsed = time.Since(began)

	return nil, stats, nil
}

// expandInformed generates the passable cardinal neighbors of n not yet
// explored, pushing each with priority g+1 + h(neighbor, goal).
func expandInformed(nodes *arena, fr *frontier, t Terrain, explored map[grid.Position]struct{}, h Heuristic, goal grid.Position, idx int32, n node) {
	for _, act := range grid.CardinalActions {
		d := grid.MoveDeltas[act]
		nr, nc := n.pos.Row+d.DR, n.pos.Col+d.DC
		if t.IsBlocked(nr, nc) {
			continue
		}
		next := grid.Position{Row: nr, Col: nc}
		if _, seen := explored[next]; seen {
			continue
		}
		cost := n.g + 1
		prio := cost + h(next, goal)
		fr.push(prio, nodes.add(node{pos: next, parent: idx, action: act, g: cost, f: prio}))
	}
}
