package agent

import "github.com/warekit/warekit/grid"

// StepMetrics records one step's observable signals, mirroring what the
// comparison notebooks plot: reward, remaining battery, and Manhattan
// distances to both special tiles.
type StepMetrics struct {
	Reward      float64
	Battery     int
	DistPickup  int
	DistDropoff int
}

// EpisodeResult summarizes one finished episode.
type EpisodeResult struct {
	// Steps actually executed.
	Steps int
	// TotalReward accumulated over the episode.
	TotalReward float64
	// FinalBattery remaining at the end.
	FinalBattery int
	// Terminated is true for a successful delivery, Truncated for a
	// step-cap or battery stop.
	Terminated bool
	Truncated  bool
	// Frames and Metrics are populated only under WithFrames; both hold
	// one entry per frame (initial state included).
	Frames  [][][]rune
	Metrics []StepMetrics
}

// RunEpisode resets env and a, then steps until the episode terminates,
// truncates, or the optional WithMaxSteps cap is hit. The environment's
// own step cap still applies underneath.
func RunEpisode(env *grid.Env, a Agent, opts ...Option) (EpisodeResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return EpisodeResult{}, err
	}
	if env == nil {
		return EpisodeResult{}, ErrNilEnv
	}
	if a == nil {
		return EpisodeResult{}, ErrNilAgent
	}

	obs := env.Reset()
	a.Reset()

	var res EpisodeResult
	if o.CollectFrames {
		res.Frames = append(res.Frames, env.RenderGrid())
		res.Metrics = append(res.Metrics, observe(obs, 0))
	}

	for o.MaxSteps == 0 || res.Steps < o.MaxSteps {
		act := a.Select(obs, env.Grid())
		next, reward, terminated, truncated, stepErr := env.Step(act)
		if stepErr != nil {
			return res, stepErr
		}
		obs = next
		res.Steps++
		res.TotalReward += reward
		if o.CollectFrames {
			res.Frames = append(res.Frames, env.RenderGrid())
			res.Metrics = append(res.Metrics, observe(obs, reward))
		}
		if terminated || truncated {
			res.Terminated = terminated
			res.Truncated = truncated

			break
		}
	}
	res.FinalBattery = obs.Battery

	return res, nil
}

// observe converts one observation into its metrics row.
func observe(obs grid.Observation, reward float64) StepMetrics {
	return StepMetrics{
		Reward:      reward,
		Battery:     obs.Battery,
		DistPickup:  obs.Robot.Manhattan(obs.Pickup),
		DistDropoff: obs.Robot.Manhattan(obs.Dropoff),
	}
}
