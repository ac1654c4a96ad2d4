// Package maze defines core types, load options, and sentinel errors
// for the maze grid model of github.com/katalvlaran/gomaze.
package maze

import (
	"errors"
)

// Sentinel errors for maze loading and cell access.
var (
	// ErrEmptyMaze indicates the source contained no non-empty lines.
	ErrEmptyMaze = errors.New("maze: maze is empty")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = errors.New("maze: maze must contain exactly one 'S'")
	// ErrMissingExit indicates no 'E' marker was found.
	ErrMissingExit = errors.New("maze: maze must contain exactly one 'E'")
	// ErrDuplicateStart indicates more than one 'S' marker was found.
	ErrDuplicateStart = errors.New("maze: duplicate 'S' marker")
	// ErrDuplicateExit indicates more than one 'E' marker was found.
	ErrDuplicateExit = errors.New("maze: duplicate 'E' marker")
	// ErrTooLarge indicates the source exceeds the configured maximum bounds.
	ErrTooLarge = errors.New("maze: maze exceeds configured maximum dimensions")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
)

// Cell is the value stored at one grid position. The values double as the
// on-disk and on-screen byte for that cell.
type Cell byte

const (
	// Wall blocks movement.
	Wall Cell = '#'
	// Open is passable floor. Any source byte that is not a wall, start,
	// or exit marker loads as Open.
	Open Cell = '.'
	// Start is the unique entry cell.
	Start Cell = 'S'
	// Exit is the unique goal cell.
	Exit Cell = 'E'
	// PathMark annotates one enumerated route for display.
	PathMark Cell = '^'
	// ShortestMark annotates the BFS shortest route for display.
	ShortestMark Cell = 'b'
)

// Position identifies a grid cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

// none is the parent-pointer sentinel used during path reconstruction.
var none = Position{Row: -1, Col: -1}

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	// Up decreases the row index.
	Up Direction = iota
	// Down increases the row index.
	Down
	// Left decreases the column index.
	Left
	// Right increases the column index.
	Right
)

// offsets holds per-direction row/column deltas, indexed by Direction.
// The order (up, down, left, right) is the stable neighbor-emission order
// relied on by BFS for deterministic tie-breaking.
var offsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Apply returns the position one step from p in direction d.
func (d Direction) Apply(p Position) Position {
	return Position{Row: p.Row + offsets[d].Row, Col: p.Col + offsets[d].Col}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Path is an ordered sequence of positions from Start to Exit inclusive.
type Path []Position

// Steps reports the number of moves along the path: len(p)-1, or 0 for an
// empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// DefaultMaxRows and DefaultMaxCols bound maze dimensions unless overridden
// via LoadOptions.
const (
	DefaultMaxRows = 105
	DefaultMaxCols = 105
)

// LoadOptions contains tunable parameters for maze loading.
type LoadOptions struct {
	// MaxRows caps the number of rows accepted from the source.
	MaxRows int
	// MaxCols caps the accepted row length.
	MaxCols int
}

// DefaultLoadOptions returns LoadOptions with the default 105×105 bounds.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MaxRows: DefaultMaxRows,
		MaxCols: DefaultMaxCols,
	}
}
