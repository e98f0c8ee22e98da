package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warekit/warekit/grid"
	"github.com/warekit/warekit/search"
)

func solveCmd() *cobra.Command {
	var (
		mapPath       string
		algo          string
		maxExpansions int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the optimal start→pickup path on a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, m, _, err := grid.LoadMap(mapPath)
			if err != nil {
				return err
			}
			if !m.HasStart || !m.HasPickup {
				return fmt.Errorf("map %q needs S and P markers", mapPath)
			}

			var (
				path  []grid.Position
				stats search.Stats
			)
			switch algo {
			case "ucs":
				path, stats, err = search.UniformCost(m.Start, m.Pickup, g, search.WithMaxExpansions(maxExpansions))
			case "astar":
				path, stats, err = search.AStar(m.Start, m.Pickup, g, search.WithMaxExpansions(maxExpansions))
			default:
				return fmt.Errorf("unknown algorithm %q (want ucs or astar)", algo)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == nil {
				fmt.Fprintln(out, "no path found")
			} else {
				fmt.Fprint(out, renderPath(g, m, path))
				fmt.Fprintf(out, "path length: %d cells (%d moves)\n", stats.PathLength, stats.PathLength-1)
			}
			fmt.Fprintf(out, "expanded: %d  frontier peak: %d  time: %.2f ms\n",
				stats.Expanded, stats.FrontierPeak, stats.Millis())

			return nil
		},
	}

	cmd.Flags().StringVar(&mapPath, "map", "", "YAML map file (required)")
	cmd.Flags().StringVar(&algo, "algo", "astar", "search algorithm: ucs or astar")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", search.DefaultMaxExpansions, "expansion safety cap")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

// renderPath draws the map with the path overlaid as '*' between the
// S and P endpoints.
func renderPath(g *grid.Grid, m grid.Markers, path []grid.Position) string {
	frame := make([][]rune, g.Height())
	for r := range frame {
		frame[r] = make([]rune, g.Width())
		for c := range frame[r] {
			if g.IsBlocked(r, c) {
				frame[r][c] = '#'
			} else {
				frame[r][c] = '.'
			}
		}
	}
	for _, p := range path {
		frame[p.Row][p.Col] = '*'
	}
	frame[m.Start.Row][m.Start.Col] = 'S'
	frame[m.Pickup.Row][m.Pickup.Col] = 'P'
	if m.HasDropoff {
		frame[m.Dropoff.Row][m.Dropoff.Col] = 'D'
	}

	var out string
	for _, row := range frame {
		out += string(row) + "\n"
	}

	return out
}
