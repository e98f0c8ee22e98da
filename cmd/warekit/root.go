package main

import "github.com/spf13/cobra"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "warekit",
		Short:         "Warehouse pathfinding, agents, and layout optimization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(solveCmd(), episodeCmd(), optimizeCmd())

	return cmd
}
