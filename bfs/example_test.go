package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gomaze/bfs"
	"github.com/katalvlaran/gomaze/maze"
)

// ExampleShortestPath solves the canonical 3×3 maze and renders the route.
// Ties between the two equal-length routes resolve to the left-hand one
// because neighbors are always offered up, down, left, right.
func ExampleShortestPath() {
	g, _ := maze.Load(strings.NewReader("S..\n.#.\n..E\n"), maze.DefaultLoadOptions())

	res, err := bfs.ShortestPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("steps:", res.Steps)
	fmt.Print(g.MarkPath(res.Path, maze.ShortestMark))
	// Output:
	// steps: 4
	// S..
	// b#.
	// bbE
}

// ExampleShortestPath_noPath shows the disconnected-maze outcome.
func ExampleShortestPath_noPath() {
	g, _ := maze.Load(strings.NewReader("S#E\n"), maze.DefaultLoadOptions())

	_, err := bfs.ShortestPath(g)
	fmt.Println(err)
	// Output:
	// bfs: no path exists
}
