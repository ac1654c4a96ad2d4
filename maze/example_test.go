package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gomaze/maze"
)

// ExampleLoad parses a tiny maze and inspects its shape.
func ExampleLoad() {
	source := "S..\n.#.\n..E\n"
	g, err := maze.Load(strings.NewReader(source), maze.DefaultLoadOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%dx%d\n", g.Rows(), g.Cols())
	fmt.Println("start:", g.Start())
	fmt.Println("exit:", g.Exit())
	fmt.Print(g)
	// Output:
	// 3x3
	// start: {0 0}
	// exit: {2 2}
	// S..
	// .#.
	// ..E
}

// ExampleGrid_MarkPath annotates a route on a working copy, leaving the
// canonical grid untouched.
func ExampleGrid_MarkPath() {
	g, _ := maze.Load(strings.NewReader("S..\n.#.\n..E\n"), maze.DefaultLoadOptions())
	route := maze.Path{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 2, Col: 2},
	}

	fmt.Print(g.MarkPath(route, maze.PathMark))
	fmt.Println("steps:", route.Steps())
	// Output:
	// S^^
	// .#^
	// ..E
	// steps: 4
}
