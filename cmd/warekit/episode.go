package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warekit/warekit/agent"
	"github.com/warekit/warekit/grid"
)

func episodeCmd() *cobra.Command {
	var (
		mapPath   string
		agentName string
		seed      int64
		randomize bool
		maxSteps  int
	)

	cmd := &cobra.Command{
		Use:   "episode",
		Short: "Run one agent episode on a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, m, envOpts, err := grid.LoadMap(mapPath)
			if err != nil {
				return err
			}
			envOpts = append(envOpts, grid.WithSeed(seed))
			env, err := grid.NewEnv(g, m, envOpts...)
			if err != nil {
				return err
			}
			if randomize {
				env.Reset(true)
			}

			var a agent.Agent
			switch agentName {
			case "greedy":
				a, err = agent.NewGreedy(agent.WithSeed(seed))
			case "reflex":
				a, err = agent.NewReflex(agent.WithSeed(seed))
			default:
				return fmt.Errorf("unknown agent %q (want greedy or reflex)", agentName)
			}
			if err != nil {
				return err
			}

			var runOpts []agent.Option
			if maxSteps > 0 {
				runOpts = append(runOpts, agent.WithMaxSteps(maxSteps))
			}
			res, err := agent.RunEpisode(env, a, runOpts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps: %d  total reward: %.2f  battery: %d\n",
				res.Steps, res.TotalReward, res.FinalBattery)
			fmt.Fprintf(out, "terminated: %v  truncated: %v\n", res.Terminated, res.Truncated)
			for _, row := range env.RenderGrid() {
				fmt.Fprintln(out, string(row))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mapPath, "map", "", "YAML map file (required)")
	cmd.Flags().StringVar(&agentName, "agent", "greedy", "agent: greedy or reflex")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "randomize start/pickup/dropoff")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "extra step cap (0 = environment default)")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}
