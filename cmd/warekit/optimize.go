package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/warekit/warekit/layout"
	"github.com/warekit/warekit/localsearch"
)

func optimizeCmd() *cobra.Command {
	var (
		algo  string
		seed  int64
		iters int
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize a random rack layout with a metaheuristic",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			problem := layout.DefaultOptions()
			initial, err := layout.Random(rng, problem)
			if err != nil {
				return err
			}
			initialObj := initial.Objective()

			var (
				best    *layout.Layout
				history []float64
			)
			common := []localsearch.Option{
				localsearch.WithRand(rng),
				localsearch.WithMaxIterations(iters),
			}
			switch algo {
			case "hill":
				best, history, err = localsearch.HillClimb(initial, common...)
			case "anneal":
				best, history, err = localsearch.Anneal(initial, common...)
			case "genetic":
				best, history, err = localsearch.Genetic(problem, localsearch.WithRand(rng))
			default:
				return fmt.Errorf("unknown algorithm %q (want hill, anneal, or genetic)", algo)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "initial objective: %.3f\n", initialObj)
			fmt.Fprintf(out, "best objective:    %.3f  (%d history points)\n", best.Objective(), len(history))
			fmt.Fprint(out, best.Render())

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "anneal", "metaheuristic: hill, anneal, or genetic")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&iters, "iters", 0, "iteration cap (0 = algorithm default)")

	return cmd
}
