// Package dfs enumerates varied maze paths with randomized depth-first
// backtracking over a maze.Grid.
//
// What
//
//   - FindPath(g, opts...): one Start→Exit path per call; the direction
//     order is re-shuffled at every cell, so repeated calls tend to return
//     different routes.
//   - FindPaths(g, limit, opts...): up to limit paths from one shared
//     random stream. Duplicates are possible; the limit bounds display
//     volume, not uniqueness.
//   - Hooks: OnVisit (pre-order) with error abort; cancellation via
//     context.Context.
//
// Why
//
//	BFS answers "what is the shortest route"; this package answers "show me
//	another route". Randomizing expansion order turns plain backtracking
//	into a cheap sampler over the maze's path space.
//
// Visited discipline
//
//	A cell is marked visited on entry and un-marked on backtrack, so the
//	mark is scoped to the current path attempt rather than the whole
//	search. This is what keeps a cell rejected on one branch eligible for
//	a sibling branch within the same call, and it is the invariant that
//	distinguishes this walker from the BFS one, whose marks are permanent
//	per invocation.
//
// Determinism
//
//   - WithSeed(s): same seed ⇒ identical sequence of paths (seed 0 maps to
//     a fixed default seed, keeping unseeded runs reproducible).
//   - WithRand(r): inject a shared or derived stream.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C) per call in the worst case
//   - Memory: O(R×C) for the visited mask and path buffer; recursion depth
//     is bounded by the number of passable cells
//
// Errors
//
//   - ErrGridNil  if the grid pointer is nil.
//   - ErrNoPath   if the maze is structurally disconnected.
//   - ErrLimit    if FindPaths is given a limit < 1.
//   - ctx.Err()   if cancelled; any error returned by OnVisit.
package dfs
