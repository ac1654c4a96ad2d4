package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

// runMenu drives the interactive session: show the menu, run the chosen
// mode on a fresh copy of the canonical grid, then offer to return. The
// canonical grid is loaded once and never annotated, so modes cannot
// contaminate each other.
func runMenu(cmd *cobra.Command, args []string) error {
	canonical, err := loadGrid()
	if err != nil {
		return err
	}

	disp := newDisplay(cmd)
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	in.Split(bufio.ScanWords)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "=== Maze Game Menu ===")
		fmt.Fprintln(out, "1 - Play manually (WASD)")
		fmt.Fprintf(out, "2 - Show some possible solutions (up to %d paths)\n", pathsLimit)
		fmt.Fprintln(out, "3 - Show shortest path (BFS)")
		fmt.Fprintln(out, "4 - Exit")
		fmt.Fprint(out, "Your choice: ")
		if !in.Scan() {
			return in.Err()
		}

		switch in.Text() {
		case "1":
			err = playLoop(canonical.Clone(), disp, in, out)
		case "2":
			err = pathsLoop(canonical, disp, in, out, newShuffleSource(pathsSeed), pathsLimit, true)
		case "3":
			err = solveOnce(canonical, disp)
		case "4":
			disp.Info("Goodbye!")

			return nil
		default:
			disp.Alert("Invalid option!")
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "1 - Return to menu")
		fmt.Fprintln(out, "2 - Exit program")
		fmt.Fprint(out, "Your choice: ")
		if !in.Scan() {
			return in.Err()
		}
		if in.Text() != "1" {
			disp.Info("Goodbye!")

			return nil
		}
	}
}
