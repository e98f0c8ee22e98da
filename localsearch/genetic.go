package localsearch

import (
	"github.com/warekit/warekit/grid"
	"github.com/warekit/warekit/layout"
)

// Genetic evolves a population of random layouts for the given problem
// instance. Each generation fills a new population by either breeding
// two tournament-selected parents with order-based crossover
// (probability CrossoverRate) or cloning a tournament winner, then
// mutating the child with probability MutationRate.
//
// Returns the best layout of the final population and the history of
// the best objective, one entry for the initial population plus one per
// generation.
func Genetic(problem layout.Options, opts ...Option) (*layout.Layout, []float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	// Seed the population with random layouts.
	pop := make([]*layout.Layout, o.Population)
	for i := range pop {
		pop[i], err = layout.Random(o.Rand, problem)
		if err != nil {
			return nil, nil, err
		}
	}
	history := []float64{fittest(pop).Objective()}

	for gen := 0; gen < o.Generations; gen++ {
		next := make([]*layout.Layout, 0, o.Population)
		for len(next) < o.Population {
			var child *layout.Layout
			if o.Rand.Float64() < o.CrossoverRate {
				p1 := tournament(pop, o)
				p2 := tournament(pop, o)
				child, err = crossover(p1, p2, o)
				if err != nil {
					return nil, nil, err
				}
			} else {
				child = tournament(pop, o).Clone()
			}
			if o.Rand.Float64() < o.MutationRate {
				child = child.Mutate(o.Rand)
			}
			next = append(next, child)
		}
		pop = next
		history = append(history, fittest(pop).Objective())
	}

	return fittest(pop), history, nil
}

// tournament draws k distinct candidates and returns the fittest.
func tournament(pop []*layout.Layout, o Options) *layout.Layout {
	k := o.Tournament
	if k > len(pop) {
		k = len(pop)
	}
	best := pop[o.Rand.Intn(len(pop))]
	bestObj := best.Objective()
	for i := 1; i < k; i++ {
		c := pop[o.Rand.Intn(len(pop))]
		if obj := c.Objective(); obj < bestObj {
			best, bestObj = c, obj
		}
	}

	return best
}

// crossover builds a child from the first half of p1's racks plus p2's
// racks that do not collide with that prefix, preserving p2's order.
// If the combination cannot fill the rack count (heavy overlap), the
// child is drawn at random instead, as in the classic order-based
// crossover fallback.
func crossover(p1, p2 *layout.Layout, o Options) (*layout.Layout, error) {
	a := p1.Positions()
	b := p2.Positions()
	cut := len(a) / 2
	prefix := a[:cut]
	taken := make(map[grid.Position]struct{}, len(prefix))
	for _, p := range prefix {
		taken[p] = struct{}{}
	}
	child := make([]grid.Position, 0, len(a))
	child = append(child, prefix...)
	for _, p := range b {
		if _, dup := taken[p]; dup {
			continue
		}
		child = append(child, p)
	}
	if len(child) != len(a) {
		return layout.Random(o.Rand, p1.Options())
	}

	return layout.New(child, p1.Options())
}

// fittest returns the lowest-objective layout of pop.
func fittest(pop []*layout.Layout) *layout.Layout {
	best := pop[0]
	bestObj := best.Objective()
	for _, l := range pop[1:] {
		if obj := l.Objective(); obj < bestObj {
			best, bestObj = l, obj
		}
	}

	return best
}
