package main

import (
	"bufio"

	"github.com/spf13/cobra"
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Navigate the maze manually with WASD keys",
		Long: `Walk the maze one step at a time: w/a/s/d move, q quits.
Steps into walls or out of bounds are rejected with a message.`,
		RunE: runPlay,
	}

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	g, err := loadGrid()
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	in.Split(bufio.ScanWords)

	return playLoop(g, newDisplay(cmd), in, cmd.OutOrStdout())
}
