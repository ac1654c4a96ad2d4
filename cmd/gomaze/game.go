package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/gomaze/bfs"
	"github.com/katalvlaran/gomaze/dfs"
	"github.com/katalvlaran/gomaze/maze"
	"github.com/katalvlaran/gomaze/nav"
	"github.com/katalvlaran/gomaze/render"
)

// keyDirections maps WASD input to movement directions.
var keyDirections = map[string]maze.Direction{
	"w": maze.Up, "W": maze.Up,
	"s": maze.Down, "S": maze.Down,
	"a": maze.Left, "A": maze.Left,
	"d": maze.Right, "D": maze.Right,
}

// playLoop runs manual navigation until the exit is reached, the player
// quits with 'q', or input ends.
func playLoop(g *maze.Grid, disp render.Display, in *bufio.Scanner, out io.Writer) error {
	session, err := nav.NewSession(g)
	if err != nil {
		return err
	}

	for {
		pos := session.Position()
		if err = disp.Frame(g, &pos); err != nil {
			return err
		}
		if session.Reached() {
			disp.Success("Congratulations! You reached the exit!")

			return nil
		}

		fmt.Fprint(out, "Move (w a s d) or q to quit: ")
		if !in.Scan() {
			return in.Err()
		}
		key := in.Text()
		if key == "q" || key == "Q" {
			disp.Alert("You quit the game.")

			return nil
		}

		dir, ok := keyDirections[key]
		if !ok {
			disp.Alert("Invalid movement! Use w, a, s, d or q to quit.")
			continue
		}
		if session.Move(dir) == nav.Blocked {
			disp.Alert("Invalid movement! Cannot go through walls or out of bounds.")
		}
	}
}

// pathsLoop enumerates up to limit randomized routes, prompting between
// paths unless prompt is false. Each route is rendered on a fresh working
// copy so earlier markers never leak into later frames.
func pathsLoop(g *maze.Grid, disp render.Display, in *bufio.Scanner, out io.Writer, rng *rand.Rand, limit int, prompt bool) error {
	disp.Info("Searching for possible paths...")

	count := 0
	for count < limit {
		path, err := dfs.FindPath(g, dfs.WithRand(rng))
		if errors.Is(err, dfs.ErrNoPath) {
			disp.Alert("No more paths found.")

			return nil
		}
		if err != nil {
			return err
		}
		count++

		annotated := g.MarkPath(path, maze.PathMark)
		disp.Info("--- Possible Path #%d (length: %d steps) ---", count, path.Steps())
		if err = disp.Frame(annotated, nil); err != nil {
			return err
		}
		log.WithField("steps", path.Steps()).Debug("path found")

		if count >= limit {
			disp.Info("Maximum number of paths reached.")

			return nil
		}
		if !prompt {
			continue
		}
		fmt.Fprint(out, "Do you want to see another path? (y/n): ")
		if !in.Scan() {
			return in.Err()
		}
		if answer := in.Text(); answer != "y" && answer != "Y" {
			return nil
		}
	}

	return nil
}

// solveOnce computes and renders the BFS shortest path.
func solveOnce(g *maze.Grid, disp render.Display) error {
	res, err := bfs.ShortestPath(g)
	if errors.Is(err, bfs.ErrNoPath) {
		disp.Alert("No path exists!")

		return nil
	}
	if err != nil {
		return err
	}

	annotated := g.MarkPath(res.Path, maze.ShortestMark)
	disp.Info("Shortest path (length: %d steps):", res.Steps)

	return disp.Frame(annotated, nil)
}
