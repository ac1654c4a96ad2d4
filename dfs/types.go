// Package dfs defines types, options, and sentinel errors for the
// randomized depth-first path enumerator.
package dfs

import (
	"context"
	"errors"
	"math/rand"

	"github.com/katalvlaran/gomaze/maze"
)

// Sentinel errors for DFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrNoPath is returned when no route from Start to Exit exists.
	// With a fresh shuffle per call this only occurs when the maze is
	// structurally disconnected.
	ErrNoPath = errors.New("dfs: no path exists")

	// ErrLimit is returned by FindPaths for a non-positive path limit.
	ErrLimit = errors.New("dfs: path limit must be positive")
)

// defaultSeed is the fixed seed used when callers pass seed==0, keeping
// unseeded runs reproducible.
const defaultSeed int64 = 1

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for the randomized search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Rand is the source used to shuffle direction order at every cell.
	// Defaults to a deterministic stream from defaultSeed. math/rand.Rand
	// is not goroutine-safe; do not share one across goroutines.
	Rand *rand.Rand

	// OnVisit, if non-nil, is invoked when a cell is entered (pre-order).
	// Returning an error aborts the search with that error.
	OnVisit func(p maze.Position) error
}

// DefaultOptions returns Options with a background context, a deterministic
// default random stream, and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Rand:    rand.New(rand.NewSource(defaultSeed)),
		OnVisit: nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds the direction shuffler deterministically.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(s))
	}
}

// WithRand injects an explicit random source, overriding WithSeed.
// A nil source has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnVisit installs fn as a pre-order hook, called when a cell joins the
// current path attempt.
func WithOnVisit(fn func(p maze.Position) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
