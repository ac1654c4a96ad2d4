// Package maze provides the grid model for gomaze: loading a rectangular
// character maze from a line-oriented source, validating it, and exposing
// cell queries plus 4-directional adjacency. It supports:
//
//   - Loading from any io.Reader or a file path
//   - Strict validation: rectangular rows, exactly one 'S' and one 'E'
//   - Passability and stable neighbor enumeration (up, down, left, right)
//   - Deep-copied working grids for path annotation
//
// The canonical Grid is never mutated by solvers; annotation happens on
// clones produced by Clone or MarkPath.
package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Grid is a loaded maze: a rectangular 2D cell array with fixed Start and
// Exit positions. Construct one with Load or LoadFile.
type Grid struct {
	rows, cols  int
	cells       [][]Cell
	start, exit Position
}

// Load reads a maze from r, one row per line. Trailing '\r' and '\n' are
// stripped and fully empty lines skipped. The first non-empty line fixes the
// column count; any later line of a different length fails with
// ErrNonRectangular. Exceeding opts.MaxRows or opts.MaxCols fails with
// ErrTooLarge rather than truncating. Exactly one 'S' and one 'E' must be
// present: zero yields ErrMissingStart/ErrMissingExit, more than one
// ErrDuplicateStart/ErrDuplicateExit.
// Complexity: O(rows×cols) time and memory.
func Load(r io.Reader, opts LoadOptions) (*Grid, error) {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultMaxRows
	}
	if opts.MaxCols <= 0 {
		opts.MaxCols = DefaultMaxCols
	}
	g := &Grid{start: none, exit: none}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if len(line) == 0 {
			continue
		}

		if g.rows == 0 {
			if len(line) > opts.MaxCols {
				return nil, fmt.Errorf("%w: %d columns (max %d)", ErrTooLarge, len(line), opts.MaxCols)
			}
			g.cols = len(line)
		} else if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, g.rows, len(line), g.cols)
		}
		if g.rows == opts.MaxRows {
			return nil, fmt.Errorf("%w: more than %d rows", ErrTooLarge, opts.MaxRows)
		}

		row := make([]Cell, g.cols)
		for i := 0; i < g.cols; i++ {
			cell, err := g.classify(line[i], Position{Row: g.rows, Col: i})
			if err != nil {
				return nil, err
			}
			row[i] = cell
		}
		g.cells = append(g.cells, row)
		g.rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading source: %w", err)
	}

	if g.rows == 0 {
		return nil, ErrEmptyMaze
	}
	if g.start == none {
		return nil, ErrMissingStart
	}
	if g.exit == none {
		return nil, ErrMissingExit
	}

	return g, nil
}

// LoadFile opens path and loads a maze from it.
func LoadFile(path string, opts LoadOptions) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}

// classify maps one source byte to its Cell, recording marker positions and
// rejecting duplicates.
func (g *Grid) classify(b byte, at Position) (Cell, error) {
	switch Cell(b) {
	case Wall:
		return Wall, nil
	case Start:
		if g.start != none {
			return 0, fmt.Errorf("%w: second 'S' at row %d col %d", ErrDuplicateStart, at.Row, at.Col)
		}
		g.start = at

		return Start, nil
	case Exit:
		if g.exit != none {
			return 0, fmt.Errorf("%w: second 'E' at row %d col %d", ErrDuplicateExit, at.Row, at.Col)
		}
		g.exit = at

		return Exit, nil
	default:
		return Open, nil
	}
}

// Rows reports the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellCount reports rows×cols, the upper bound on queue and stack sizes for
// any search over the grid.
func (g *Grid) CellCount() int { return g.rows * g.cols }

// Start returns the position of the unique 'S' cell.
func (g *Grid) Start() Position { return g.start }

// Exit returns the position of the unique 'E' cell.
func (g *Grid) Exit() Position { return g.exit }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid) At(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, p.Row, p.Col)
	}

	return g.cells[p.Row][p.Col], nil
}

// Set writes cell c at p, or returns ErrOutOfBounds. Intended for marker
// annotation on working copies; the canonical grid should stay untouched.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, p.Row, p.Col)
	}
	g.cells[p.Row][p.Col] = c

	return nil
}

// IsPassable reports whether p is in-bounds and not a wall.
// Complexity: O(1).
func (g *Grid) IsPassable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] != Wall
}

// Neighbors returns the passable orthogonal neighbors of p in the stable
// order up, down, left, right. BFS relies on this order for deterministic
// shortest-path tie-breaking; randomized callers shuffle Directions instead.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for d := Up; d <= Right; d++ {
		if n := d.Apply(p); g.IsPassable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Clone returns a deep copy of the grid for annotation; the receiver is
// never aliased.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.rows)
	for i := range g.cells {
		cells[i] = make([]Cell, g.cols)
		copy(cells[i], g.cells[i])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells, start: g.start, exit: g.exit}
}

// MarkPath returns a clone of g with marker written at every path position
// except the Start and Exit cells, which keep their markers.
func (g *Grid) MarkPath(path Path, marker Cell) *Grid {
	annotated := g.Clone()
	for _, p := range path {
		if p == g.start || p == g.exit {
			continue
		}
		annotated.cells[p.Row][p.Col] = marker
	}

	return annotated
}

// String renders the grid as its source text, one row per line. Useful in
// tests and plain (uncolored) display.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for _, row := range g.cells {
		for _, c := range row {
			sb.WriteByte(byte(c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
