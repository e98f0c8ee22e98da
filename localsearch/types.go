// Package localsearch provides tunable options and error definitions
// for the metaheuristics over rack layouts: steepest-descent hill
// climbing, simulated annealing, and a genetic algorithm.
package localsearch

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for metaheuristic invocation.
var (
	// ErrNilLayout is returned if a nil initial layout is passed.
	ErrNilLayout = errors.New("localsearch: initial layout is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("localsearch: invalid option supplied")
)

// Per-algorithm defaults, matching the classroom parameterization.
const (
	// DefaultHillIterations caps steepest-descent improvement rounds.
	DefaultHillIterations = 1000
	// DefaultAnnealIterations caps annealing proposals.
	DefaultAnnealIterations = 5000
	// DefaultInitialTemp is the annealing start temperature.
	DefaultInitialTemp = 1.0
	// DefaultCooling is the geometric cooling factor (T ← alpha·T).
	DefaultCooling = 0.995
	// tempFloor stops annealing once the temperature is effectively zero.
	tempFloor = 1e-6

	// DefaultPopulation is the genetic algorithm population size.
	DefaultPopulation = 30
	// DefaultGenerations is the number of genetic generations.
	DefaultGenerations = 200
	// DefaultCrossoverRate is the probability of breeding vs cloning.
	DefaultCrossoverRate = 0.8
	// DefaultMutationRate is the per-child mutation probability.
	DefaultMutationRate = 0.2
	// DefaultTournament is the tournament selection size.
	DefaultTournament = 3
)

// Options holds the shared and per-algorithm metaheuristic parameters.
// Each entry point reads only the fields that concern it.
type Options struct {
	// Rand drives every stochastic choice; inject a seeded source for
	// reproducible runs.
	Rand *rand.Rand
	// MaxIterations caps the main loop. 0 selects the per-algorithm
	// default (hill climbing 1000, annealing 5000).
	MaxIterations int

	// InitialTemp and Cooling shape the annealing schedule.
	InitialTemp float64
	Cooling     float64

	// Population, Generations, CrossoverRate, MutationRate, and
	// Tournament parameterize the genetic algorithm.
	Population    int
	Generations   int
	CrossoverRate float64
	MutationRate  float64
	Tournament    int

	// internal error recorded during option parsing
	err error
}

// Option configures a metaheuristic via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the classroom defaults and a
// deterministic seed-0 random source.
func DefaultOptions() Options {
	return Options{
		Rand:          rand.New(rand.NewSource(0)),
		InitialTemp:   DefaultInitialTemp,
		Cooling:       DefaultCooling,
		Population:    DefaultPopulation,
		Generations:   DefaultGenerations,
		CrossoverRate: DefaultCrossoverRate,
		MutationRate:  DefaultMutationRate,
		Tournament:    DefaultTournament,
	}
}

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxIterations caps the main loop.
//
//	n > 0:  explicit cap
//	n == 0: per-algorithm default
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// WithInitialTemp sets the annealing start temperature (> 0).
func WithInitialTemp(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: InitialTemp must be positive (%g)", ErrOptionViolation, t)

			return
		}
		o.InitialTemp = t
	}
}

// WithCooling sets the geometric cooling factor, in (0, 1).
func WithCooling(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 || alpha >= 1 {
			o.err = fmt.Errorf("%w: Cooling must lie in (0,1) (%g)", ErrOptionViolation, alpha)

			return
		}
		o.Cooling = alpha
	}
}

// WithPopulation sets the genetic population size (≥ 2).
func WithPopulation(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: Population must be at least 2 (%d)", ErrOptionViolation, n)

			return
		}
		o.Population = n
	}
}

// WithGenerations sets the number of genetic generations (> 0).
func WithGenerations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Generations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Generations = n
	}
}

// WithCrossoverRate sets the breeding probability, in [0, 1].
func WithCrossoverRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: CrossoverRate must lie in [0,1] (%g)", ErrOptionViolation, p)

			return
		}
		o.CrossoverRate = p
	}
}

// WithMutationRate sets the per-child mutation probability, in [0, 1].
func WithMutationRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: MutationRate must lie in [0,1] (%g)", ErrOptionViolation, p)

			return
		}
		o.MutationRate = p
	}
}

// WithTournament sets the tournament selection size (≥ 1).
func WithTournament(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Tournament must be at least 1 (%d)", ErrOptionViolation, k)

			return
		}
		o.Tournament = k
	}
}

// buildOptions applies opts over the defaults and surfaces any
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
