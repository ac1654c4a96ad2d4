// Package dfs enumerates maze paths with randomized recursive backtracking.
package dfs

import (
	"math/rand"

	"github.com/katalvlaran/gomaze/maze"
)

// walker encapsulates mutable state for one FindPath invocation.
type walker struct {
	grid    *maze.Grid
	opts    Options
	exit    maze.Position
	visited [][]bool
	path    maze.Path
}

// FindPath searches for one Start→Exit path using depth-first backtracking.
// At every cell the four directions are shuffled with the configured random
// source, so repeated calls explore different traversal orders and, with
// high probability, return different paths. Returned paths are valid but
// not necessarily shortest, and distinct calls may repeat a path.
//
// Returns ErrGridNil for a nil grid, ErrNoPath when Exit is unreachable,
// the context error on cancellation, or any error from the OnVisit hook.
// Complexity: O(rows×cols) time and memory per call; recursion depth is
// bounded by the number of passable cells.
func FindPath(g *maze.Grid, opts ...Option) (maze.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		exit:    g.Exit(),
		visited: make([][]bool, g.Rows()),
		path:    make(maze.Path, 0, g.CellCount()),
	}
	for i := 0; i < g.Rows(); i++ {
		w.visited[i] = make([]bool, g.Cols())
	}

	found, err := w.search(g.Start())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoPath
	}

	return w.path, nil
}

// search tries to extend the current path through p. The cell is marked
// visited on entry and un-marked on backtrack: the mark is scoped to the
// current path attempt, so a cell rejected on one branch stays eligible for
// a sibling branch explored later in the same call. Path pushes mirror the
// marking and pops mirror the un-marking.
func (w *walker) search(p maze.Position) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.path = append(w.path, p)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			return false, err
		}
	}
	if p == w.exit {
		return true, nil
	}
	w.visited[p.Row][p.Col] = true

	dirs := shuffledDirections(w.opts.Rand)
	for _, d := range dirs {
		next := d.Apply(p)
		if !w.grid.IsPassable(next) || w.visited[next.Row][next.Col] {
			continue
		}
		found, err := w.search(next)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	w.visited[p.Row][p.Col] = false
	w.path = w.path[:len(w.path)-1]

	return false, nil
}

// shuffledDirections returns the four directions in Fisher–Yates order
// drawn from rng.
func shuffledDirections(rng *rand.Rand) [4]maze.Direction {
	dirs := [4]maze.Direction{maze.Up, maze.Down, maze.Left, maze.Right}
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}

	return dirs
}

// FindPaths collects up to limit paths by invoking FindPath repeatedly with
// the same options, sharing one random stream so every attempt shuffles
// differently. Duplicate paths are possible; the limit bounds volume, not
// uniqueness. Returns ErrLimit for limit < 1 and ErrNoPath when the maze is
// disconnected.
func FindPaths(g *maze.Grid, limit int, opts ...Option) ([]maze.Path, error) {
	if limit < 1 {
		return nil, ErrLimit
	}
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	paths := make([]maze.Path, 0, limit)
	for i := 0; i < limit; i++ {
		// Reuse the advanced stream so each attempt shuffles differently.
		p, err := FindPath(g, WithContext(o.Ctx), WithRand(o.Rand), WithOnVisit(o.OnVisit))
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}
