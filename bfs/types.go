// Package bfs provides tunable options and error definitions for the
// breadth-first maze solver.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gomaze/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrNoPath is returned when Start and Exit lie in disconnected
	// regions. It is a normal outcome, not a failure of the solver.
	ErrNoPath = errors.New("bfs: no path exists")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell position and its depth from Start.
	OnEnqueue func(p maze.Position, depth int)

	// OnDequeue is called when a cell is removed from the frontier,
	// immediately before its neighbors are expanded.
	OnDequeue func(p maze.Position, depth int)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Position, int) {},
		OnDequeue: func(maze.Position, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a successful shortest-path search:
//   - Path: positions from Start to Exit inclusive.
//   - Steps: number of moves, always len(Path)-1.
type Result struct {
	Path  maze.Path
	Steps int
}
