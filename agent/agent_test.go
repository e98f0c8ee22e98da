// Package agent_test contains unit tests for the reflex and greedy
// agents and the episode runner.
package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warekit/warekit/agent"
	"github.com/warekit/warekit/grid"
)

// floor builds a grid + env from rows, failing the test on bad input.
func floor(t *testing.T, rows []string, opts ...grid.EnvOption) (*grid.Grid, *grid.Env) {
	t.Helper()
	g, m, err := grid.ParseRunes(rows)
	require.NoError(t, err)
	env, err := grid.NewEnv(g, m, opts...)
	require.NoError(t, err)

	return g, env
}

// obsAt fabricates a percept for rule-level tests.
func obsAt(robot, pickup, dropoff grid.Position, carrying bool) grid.Observation {
	return grid.Observation{
		Robot:    robot,
		Pickup:   pickup,
		Dropoff:  dropoff,
		Carrying: carrying,
		Battery:  grid.DefaultBattery,
	}
}

// ------------------------------------------------------------------------
// 1. Reflex rules.
// ------------------------------------------------------------------------

func TestReflex_PickAndDropRules(t *testing.T) {
	g, _ := floor(t, []string{
		"#####",
		"#S.P#",
		"#..D#",
		"#####",
	})
	a, err := agent.NewReflex()
	require.NoError(t, err)

	pickup := grid.Position{Row: 1, Col: 3}
	dropoff := grid.Position{Row: 2, Col: 3}

	assert.Equal(t, grid.Pick, a.Select(obsAt(pickup, pickup, dropoff, false), g))
	assert.Equal(t, grid.Drop, a.Select(obsAt(dropoff, pickup, dropoff, true), g))
	// On the pickup tile while already carrying: just keep moving.
	assert.NotEqual(t, grid.Pick, a.Select(obsAt(pickup, pickup, dropoff, true), g))
}

func TestReflex_PrefersLargerAxis(t *testing.T) {
	g, _ := floor(t, []string{
		"######",
		"#S...#",
		"#....#",
		"#..P.#",
		"#...D#",
		"######",
	})
	a, err := agent.NewReflex()
	require.NoError(t, err)

	// Robot (1,1), pickup (3,3): vertical distance 2 ≥ horizontal 2,
	// so the vertical move (South) wins.
	act := a.Select(obsAt(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 3, Col: 3}, grid.Position{Row: 4, Col: 4}, false), g)
	assert.Equal(t, grid.South, act)

	// Robot (3,1): horizontal distance 2 > vertical 0 → East.
	act = a.Select(obsAt(grid.Position{Row: 3, Col: 1}, grid.Position{Row: 3, Col: 3}, grid.Position{Row: 4, Col: 4}, false), g)
	assert.Equal(t, grid.East, act)
}

func TestReflex_BlockedPreferredFallsBack(t *testing.T) {
	// Preferred move South is walled; the agent must still move toward
	// the pickup with a distance-reducing alternative (East).
	g, _ := floor(t, []string{
		"#####",
		"#S..#",
		"###.#",
		"#D.P#",
		"#####",
	})
	a, err := agent.NewReflex(agent.WithSeed(1))
	require.NoError(t, err)

	act := a.Select(obsAt(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 3, Col: 3}, grid.Position{Row: 3, Col: 1}, false), g)
	assert.Equal(t, grid.East, act)
}

func TestReflex_SolvesOpenFloor(t *testing.T) {
	_, env := floor(t, []string{
		"#######",
		"#S....#",
		"#.....#",
		"#..P..#",
		"#....D#",
		"#######",
	})
	a, err := agent.NewReflex(agent.WithSeed(0))
	require.NoError(t, err)

	res, err := agent.RunEpisode(env, a)
	require.NoError(t, err)
	assert.True(t, res.Terminated, "reflex agent should deliver on an open floor")
	assert.False(t, res.Truncated)
}

// ------------------------------------------------------------------------
// 2. Greedy agent.
// ------------------------------------------------------------------------

func TestGreedy_PickAndDropRules(t *testing.T) {
	g, _ := floor(t, []string{
		"#####",
		"#S.P#",
		"#..D#",
		"#####",
	})
	a, err := agent.NewGreedy()
	require.NoError(t, err)

	pickup := grid.Position{Row: 1, Col: 3}
	dropoff := grid.Position{Row: 2, Col: 3}

	assert.Equal(t, grid.Pick, a.Select(obsAt(pickup, pickup, dropoff, false), g))
	assert.Equal(t, grid.Drop, a.Select(obsAt(dropoff, pickup, dropoff, true), g))
}

func TestGreedy_MovesReduceDistance(t *testing.T) {
	g, _ := floor(t, []string{
		"#######",
		"#S....#",
		"#.....#",
		"#..P.D#",
		"#######",
	})
	a, err := agent.NewGreedy(agent.WithSeed(2))
	require.NoError(t, err)
	a.Reset()

	robot := grid.Position{Row: 1, Col: 1}
	pickup := grid.Position{Row: 3, Col: 3}
	obs := obsAt(robot, pickup, grid.Position{Row: 3, Col: 5}, false)

	act := a.Select(obs, g)
	next, ok := g.Neighbor(robot, act)
	require.True(t, ok)
	assert.Less(t, next.Manhattan(pickup), robot.Manhattan(pickup))
}

func TestGreedy_SolvesOpenFloor(t *testing.T) {
	_, env := floor(t, []string{
		"#######",
		"#S....#",
		"#.....#",
		"#..P..#",
		"#....D#",
		"#######",
	})
	a, err := agent.NewGreedy(agent.WithSeed(0))
	require.NoError(t, err)

	res, err := agent.RunEpisode(env, a)
	require.NoError(t, err)
	assert.True(t, res.Terminated)
	assert.Greater(t, res.TotalReward, 0.0, "pick+drop rewards should dominate step costs")
}

func TestGreedy_EscapesPocket(t *testing.T) {
	// A concave pocket between the robot and pickup: pure greed
	// oscillates at the pocket mouth; the loop detector must get the
	// agent out and deliver within the step budget.
	_, env := floor(t, []string{
		"#########",
		"#...#...#",
		"#.S.#.P.#",
		"#...#...#",
		"#...#..D#",
		"#.......#",
		"#########",
	}, grid.WithMaxSteps(5000), grid.WithBattery(5000))
	a, err := agent.NewGreedy(agent.WithSeed(3))
	require.NoError(t, err)

	res, err := agent.RunEpisode(env, a)
	require.NoError(t, err)
	assert.True(t, res.Terminated, "greedy agent should escape the pocket and deliver")
}

func TestGreedy_ResetClearsState(t *testing.T) {
	g, _ := floor(t, []string{
		"#####",
		"#S.P#",
		"#..D#",
		"#####",
	})
	a, err := agent.NewGreedy(agent.WithSeed(4))
	require.NoError(t, err)

	obs := obsAt(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 1, Col: 3}, grid.Position{Row: 2, Col: 3}, false)
	for i := 0; i < 5; i++ {
		a.Select(obs, g)
	}
	a.Reset()
	// After a reset the first decision is the plain greedy move again.
	assert.Equal(t, grid.East, a.Select(obs, g))
}

// ------------------------------------------------------------------------
// 3. Episode runner.
// ------------------------------------------------------------------------

func TestRunEpisode_Validation(t *testing.T) {
	_, env := floor(t, []string{"#####", "#S.P#", "#..D#", "#####"})
	a, err := agent.NewGreedy()
	require.NoError(t, err)

	_, err = agent.RunEpisode(nil, a)
	require.ErrorIs(t, err, agent.ErrNilEnv)

	_, err = agent.RunEpisode(env, nil)
	require.ErrorIs(t, err, agent.ErrNilAgent)

	_, err = agent.RunEpisode(env, a, agent.WithMaxSteps(-1))
	require.ErrorIs(t, err, agent.ErrOptionViolation)
}

func TestRunEpisode_StepCap(t *testing.T) {
	_, env := floor(t, []string{
		"##########",
		"#S.......#",
		"#........#",
		"#.......P#",
		"#.......D#",
		"##########",
	})
	a, err := agent.NewReflex(agent.WithSeed(0))
	require.NoError(t, err)

	res, err := agent.RunEpisode(env, a, agent.WithMaxSteps(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Steps)
	assert.False(t, res.Terminated)
}

func TestRunEpisode_CollectsFramesAndMetrics(t *testing.T) {
	_, env := floor(t, []string{"#####", "#S.P#", "#..D#", "#####"})
	a, err := agent.NewGreedy(agent.WithSeed(0))
	require.NoError(t, err)

	res, err := agent.RunEpisode(env, a, agent.WithFrames())
	require.NoError(t, err)
	// One frame per step plus the initial state.
	require.Len(t, res.Frames, res.Steps+1)
	require.Len(t, res.Metrics, res.Steps+1)
	// The initial metrics row has the starting battery and distances.
	assert.Equal(t, grid.DefaultBattery, res.Metrics[0].Battery)
	assert.Equal(t, 2, res.Metrics[0].DistPickup)
}
