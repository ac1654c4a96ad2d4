// Package bfs provides a breadth-first shortest-path solver over a
// maze.Grid, with parent-pointer path reconstruction.
//
// What
//
//   - Explore passable cells in non-decreasing distance (step count) from
//     the Start cell.
//   - Returns a Result containing:
//   - Path:  positions from Start to Exit inclusive
//   - Steps: number of moves, always len(Path)-1
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a cell is first discovered)
//   - OnDequeue (when a cell leaves the frontier)
//
// Why
//
//   - Under uniform step cost, the first discovery of Exit is guaranteed to
//     lie on a minimum-length route, so the search stops at enqueue time.
//   - Parent pointers recorded on first visit reconstruct that route in one
//     backward walk.
//
// Determinism
//
//	maze.Grid.Neighbors emits neighbors in the fixed order up, down, left,
//	right, so ties among equal-length paths always resolve to the same
//	route and the visit sequence is fully reproducible.
//
// Queue discipline
//
//	The frontier is a fixed-capacity circular buffer sized to the grid's
//	cell count. Each cell enqueues at most once, so push and pop are O(1)
//	with no reallocation.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C)   (each cell enqueued and expanded at most once)
//   - Memory: O(R×C)   (queue, visited mask, parent matrix)
//
// Usage
//
//	res, err := bfs.ShortestPath(g)
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//	    // disconnected maze: a normal outcome, render "no path exists"
//	case err != nil:
//	    // ErrGridNil or context cancellation
//	default:
//	    fmt.Println("steps:", res.Steps)
//	}
//
// Errors
//
//   - ErrGridNil  if the grid pointer is nil.
//   - ErrNoPath   if Start and Exit are disconnected.
//   - ctx.Err()   if cancelled via WithContext.
package bfs
