package main

import (
	"github.com/spf13/cobra"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Display the shortest path found by BFS",
		RunE:  runSolve,
	}

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := loadGrid()
	if err != nil {
		return err
	}

	return solveOnce(g, newDisplay(cmd))
}
