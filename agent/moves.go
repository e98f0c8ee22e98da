package agent

import (
	"math/rand"

	"github.com/warekit/warekit/grid"
)

// validMoves returns the cardinal moves from pos that stay passable,
// in canonical N,E,S,W order.
func validMoves(g *grid.Grid, pos grid.Position) []grid.Action {
	var out []grid.Action
	for _, act := range grid.CardinalActions {
		if _, ok := g.Neighbor(pos, act); ok {
			out = append(out, act)
		}
	}

	return out
}

// reducingMoves returns the valid moves that minimize the Manhattan
// distance to target, provided that minimum beats the current distance.
// All equally good reducers are returned so callers can tie-break.
func reducingMoves(g *grid.Grid, pos, target grid.Position) []grid.Action {
	var best []grid.Action
	bestDist := pos.Manhattan(target)
	for _, act := range grid.CardinalActions {
		next, ok := g.Neighbor(pos, act)
		if !ok {
			continue
		}
		switch d := next.Manhattan(target); {
		case d < bestDist:
			bestDist = d
			best = []grid.Action{act}
		case d == bestDist && len(best) > 0:
			best = append(best, act)
		}
	}

	return best
}

// randomValidMove picks a uniformly random valid move, or Wait when the
// robot is completely boxed in.
func randomValidMove(r *rand.Rand, g *grid.Grid, pos grid.Position) grid.Action {
	valid := validMoves(g, pos)
	if len(valid) == 0 {
		return grid.Wait
	}

	return valid[r.Intn(len(valid))]
}

// choose picks uniformly among acts; acts must be non-empty.
func choose(r *rand.Rand, acts []grid.Action) grid.Action {
	return acts[r.Intn(len(acts))]
}
