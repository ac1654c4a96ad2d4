// Package render draws maze grids for humans: colored console frames with
// optional screen clearing and transient messages, plus PNG export of
// annotated grids. It is a collaborator of the core packages: solvers and
// the navigator never render, and nothing here inspects search internals.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/gomaze/maze"
)

// Display is the surface the game loop draws on. Implementations render a
// grid frame (optionally with a player cursor) and short status messages.
type Display interface {
	// Frame draws the whole grid; if player is non-nil that cell is drawn
	// as the player cursor instead of its stored value.
	Frame(g *maze.Grid, player *maze.Position) error

	// Info, Success, and Alert print one transient status line each.
	Info(format string, args ...any)
	Success(format string, args ...any)
	Alert(format string, args ...any)
}

// playerGlyph is drawn at the player's cell during manual play. It reuses
// the path-marker byte, matching how annotated routes look.
const playerGlyph = byte(maze.PathMark)

// ConsoleOptions contains tunable parameters for console rendering.
type ConsoleOptions struct {
	// Color toggles ANSI coloring; plain bytes are written when false.
	Color bool
	// ClearScreen clears the terminal before every frame.
	ClearScreen bool
	// MessageDelay pauses after Alert/Info messages so they are readable
	// before the next frame wipes them. Zero disables the pause.
	MessageDelay time.Duration
}

// DefaultConsoleOptions returns ConsoleOptions with color and clearing on
// and a one-second message delay.
func DefaultConsoleOptions() ConsoleOptions {
	return ConsoleOptions{
		Color:        true,
		ClearScreen:  true,
		MessageDelay: time.Second,
	}
}

// Console renders to an io.Writer with ANSI colors: walls yellow, Start and
// Exit blue, enumerated-path markers and the player red, shortest-path
// markers green.
type Console struct {
	out   io.Writer
	opts  ConsoleOptions
	sleep func(time.Duration) // stubbed in tests

	wall, marker, shortest, gate, note, good, bad *color.Color
}

// NewConsole builds a Console writing to out.
func NewConsole(out io.Writer, opts ConsoleOptions) *Console {
	c := &Console{
		out:      out,
		opts:     opts,
		sleep:    time.Sleep,
		wall:     color.New(color.FgYellow),
		marker:   color.New(color.FgRed),
		shortest: color.New(color.FgGreen),
		gate:     color.New(color.FgHiBlue),
		note:     color.New(color.FgCyan),
		good:     color.New(color.FgGreen),
		bad:      color.New(color.FgRed),
	}
	if !opts.Color {
		for _, cc := range []*color.Color{c.wall, c.marker, c.shortest, c.gate, c.note, c.good, c.bad} {
			cc.DisableColor()
		}
	}

	return c
}

// Frame draws the grid row by row. Implements Display.
func (c *Console) Frame(g *maze.Grid, player *maze.Position) error {
	if c.opts.ClearScreen {
		// ANSI clear + cursor home
		if _, err := fmt.Fprint(c.out, "\x1b[2J\x1b[H"); err != nil {
			return err
		}
	}

	var p maze.Position
	for p.Row = 0; p.Row < g.Rows(); p.Row++ {
		for p.Col = 0; p.Col < g.Cols(); p.Col++ {
			if err := c.cell(g, p, player); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(c.out); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(c.out)

	return err
}

// cell writes one colored cell byte.
func (c *Console) cell(g *maze.Grid, p maze.Position, player *maze.Position) error {
	if player != nil && p == *player {
		_, err := c.marker.Fprintf(c.out, "%c", playerGlyph)

		return err
	}

	cell, err := g.At(p)
	if err != nil {
		return err
	}
	switch cell {
	case maze.Wall:
		_, err = c.wall.Fprintf(c.out, "%c", byte(cell))
	case maze.Start, maze.Exit:
		_, err = c.gate.Fprintf(c.out, "%c", byte(cell))
	case maze.PathMark:
		_, err = c.marker.Fprintf(c.out, "%c", byte(cell))
	case maze.ShortestMark:
		_, err = c.shortest.Fprintf(c.out, "%c", byte(cell))
	default:
		_, err = fmt.Fprintf(c.out, "%c", byte(cell))
	}

	return err
}

// Info prints a cyan status line and pauses. Implements Display.
func (c *Console) Info(format string, args ...any) {
	c.note.Fprintf(c.out, format+"\n", args...)
	c.pause()
}

// Success prints a green status line. Implements Display.
func (c *Console) Success(format string, args ...any) {
	c.good.Fprintf(c.out, format+"\n", args...)
}

// Alert prints a red status line and pauses so it survives the next clear.
// Implements Display.
func (c *Console) Alert(format string, args ...any) {
	c.bad.Fprintf(c.out, format+"\n", args...)
	c.pause()
}

func (c *Console) pause() {
	if c.opts.MessageDelay > 0 {
		c.sleep(c.opts.MessageDelay)
	}
}
