// Package agent defines the agent contract, shared options, and error
// definitions for the reactive warehouse agents and the episode runner.
package agent

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/warekit/warekit/grid"
)

// Sentinel errors for agent and episode invocation.
var (
	// ErrNilEnv is returned when the episode runner gets a nil environment.
	ErrNilEnv = errors.New("agent: environment is nil")

	// ErrNilAgent is returned when the episode runner gets a nil agent.
	ErrNilAgent = errors.New("agent: agent is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("agent: invalid option supplied")
)

// Agent selects one action per percept. Implementations may keep
// internal state between steps (loop detectors, escape counters);
// Reset clears it between episodes.
type Agent interface {
	// Reset clears any per-episode internal state.
	Reset()
	// Select chooses the next action given the current percept and the
	// static floor the episode runs on.
	Select(obs grid.Observation, g *grid.Grid) grid.Action
}

// Defaults for the greedy agent's loop handling.
const (
	// DefaultLoopHistory is how many recent positions the greedy agent
	// remembers for loop detection.
	DefaultLoopHistory = 10
	// DefaultEscapeSteps is how many moves the greedy agent spends
	// escaping after detecting a loop.
	DefaultEscapeSteps = 3
)

// Options holds agent and episode-runner parameters.
type Options struct {
	// Rand drives tie-breaks and escape moves.
	Rand *rand.Rand
	// LoopHistory and EscapeSteps tune the greedy agent's loop detector.
	LoopHistory int
	EscapeSteps int
	// MaxSteps optionally caps the episode runner below the
	// environment's own cap. 0 defers to the environment.
	MaxSteps int
	// CollectFrames makes the episode runner record a rendered frame
	// per step, plus per-step reward/battery/distance metrics.
	CollectFrames bool

	// internal error recorded during option parsing
	err error
}

// Option configures agents and episode runs via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the standard loop-detector sizes
// and a deterministic seed-0 random source.
func DefaultOptions() Options {
	return Options{
		Rand:        rand.New(rand.NewSource(0)),
		LoopHistory: DefaultLoopHistory,
		EscapeSteps: DefaultEscapeSteps,
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

// WithLoopHistory sets the loop-detector window size (> 0).
func WithLoopHistory(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: LoopHistory must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.LoopHistory = n
	}
}

// WithEscapeSteps sets the escape burst length (> 0).
func WithEscapeSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: EscapeSteps must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.EscapeSteps = n
	}
}

// WithMaxSteps caps the episode runner's step loop.
//
//	n > 0:  explicit cap
//	n == 0: defer to the environment's own cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxSteps = n
	}
}

// WithFrames enables frame and metric collection during RunEpisode.
func WithFrames() Option {
	return func(o *Options) {
		o.CollectFrames = true
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
