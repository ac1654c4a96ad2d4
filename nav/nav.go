// Package nav implements the manual navigation state machine: a player
// position on a maze.Grid, advanced one validated move at a time.
//
// The machine starts at the grid's Start cell. Each Move attempts one
// orthogonal step: into a wall or out of bounds it is a Blocked no-op (a
// recoverable signal, never an error), onto the Exit cell it terminates the
// session. Rendering, input capture, and quit handling belong to the caller.
package nav

import (
	"errors"

	"github.com/katalvlaran/gomaze/maze"
)

// ErrGridNil is returned if a nil grid pointer is passed to NewSession.
var ErrGridNil = errors.New("nav: grid is nil")

// Outcome classifies the result of one attempted move.
type Outcome int

const (
	// Moved: the step was valid and the position advanced.
	Moved Outcome = iota
	// Blocked: the step hit a wall or the boundary; position unchanged.
	Blocked
	// ReachedExit: the step landed on the Exit cell; the session is over.
	ReachedExit
)

// String returns the outcome name for messages and logs.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case ReachedExit:
		return "reached exit"
	default:
		return "unknown"
	}
}

// Session tracks one manual navigation run over a read-only grid.
type Session struct {
	grid    *maze.Grid
	pos     maze.Position
	reached bool
}

// NewSession starts a session at g's Start cell.
func NewSession(g *maze.Grid) (*Session, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	return &Session{grid: g, pos: g.Start()}, nil
}

// Position returns the player's current cell.
func (s *Session) Position() maze.Position { return s.pos }

// Reached reports whether the player has landed on Exit.
func (s *Session) Reached() bool { return s.reached }

// Move attempts one step in direction d. Once the exit has been reached the
// session is terminal and every further call reports ReachedExit without
// moving.
func (s *Session) Move(d maze.Direction) Outcome {
	if s.reached {
		return ReachedExit
	}

	next := d.Apply(s.pos)
	if !s.grid.IsPassable(next) {
		return Blocked
	}

	s.pos = next
	if s.pos == s.grid.Exit() {
		s.reached = true

		return ReachedExit
	}

	return Moved
}
