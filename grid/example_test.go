package grid_test

import (
	"fmt"

	"github.com/warekit/warekit/grid"
)

// ExampleParseRunes builds a floor from map characters and inspects it.
func ExampleParseRunes() {
	g, m, err := grid.ParseRunes([]string{
		"#####",
		"#S.P#",
		"#..D#",
		"#####",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("size:", g.Height(), "x", g.Width())
	fmt.Println("start:", m.Start)
	fmt.Println("wall at (0,0):", g.IsBlocked(0, 0))
	// Output:
	// size: 4 x 5
	// start: {1 1}
	// wall at (0,0): true
}

// ExampleEnv_Step walks a tiny delivery episode by hand.
func ExampleEnv_Step() {
	g, m, err := grid.ParseRunes([]string{
		"#####",
		"#S.P#",
		"#..D#",
		"#####",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	env, err := grid.NewEnv(g, m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	env.Reset()

	for _, act := range []grid.Action{grid.East, grid.East, grid.Pick, grid.South, grid.Drop} {
		obs, _, terminated, _, stepErr := env.Step(act)
		if stepErr != nil {
			fmt.Println("error:", stepErr)

			return
		}
		if terminated {
			fmt.Println("delivered after", obs.Step, "steps")
		}
	}
	// Output:
	// delivered after 5 steps
}
