// Package bfs computes shortest maze paths with breadth-first search,
// reconstructing the route from parent pointers.
package bfs

import (
	"github.com/katalvlaran/gomaze/maze"
)

// item pairs a cell with its BFS depth.
type item struct {
	pos   maze.Position
	depth int
}

// ring is a fixed-capacity FIFO queue with O(1) push and pop. Capacity is
// the grid's cell count plus one: each cell enqueues at most once, so the
// buffer can never overflow.
type ring struct {
	items []item
	head  int
	tail  int
}

func newRing(capacity int) *ring {
	return &ring{items: make([]item, capacity+1)}
}

func (q *ring) empty() bool { return q.head == q.tail }

func (q *ring) push(it item) {
	q.items[q.tail] = it
	q.tail = (q.tail + 1) % len(q.items)
}

func (q *ring) pop() item {
	it := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)

	return it
}

// walker encapsulates mutable BFS state for one search invocation.
type walker struct {
	grid    *maze.Grid
	opts    Options
	queue   *ring
	visited [][]bool
	parent  [][]maze.Position
}

// ShortestPath runs breadth-first search on g from Start, applying any
// number of functional Options. On success the Result carries the unique
// first-found shortest path (ties broken by the stable neighbor order of
// maze.Grid.Neighbors) and its step count. Returns ErrGridNil for a nil
// grid, ErrNoPath when Exit is unreachable, or the context error if the
// search is cancelled.
// Complexity: O(rows×cols) time and memory.
func ShortestPath(g *maze.Grid, opts ...Option) (*Result, error) {
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
		queue:   newRing(g.CellCount()),
		visited: make([][]bool, g.Rows()),
		parent:  make([][]maze.Position, g.Rows()),
	}
	for i := 0; i < g.Rows(); i++ {
		w.visited[i] = make([]bool, g.Cols())
		w.parent[i] = make([]maze.Position, g.Cols())
	}

	// Seed frontier with Start; its parent is the reconstruction sentinel.
	w.enqueue(g.Start(), 0, maze.Position{Row: -1, Col: -1})

	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoPath
	}

	path := w.reconstruct()

	return &Result{Path: path, Steps: path.Steps()}, nil
}

// enqueue marks pos visited, records its parent, fires OnEnqueue, and adds
// it to the frontier.
func (w *walker) enqueue(pos maze.Position, depth int, parent maze.Position) {
	w.visited[pos.Row][pos.Col] = true
	w.parent[pos.Row][pos.Col] = parent
	w.opts.OnEnqueue(pos, depth)
	w.queue.push(item{pos: pos, depth: depth})
}

// loop processes the frontier until Exit is discovered, the queue empties,
// or the context is cancelled. Exit is detected at enqueue time: BFS level
// ordering guarantees the first discovery is a shortest route, so there is
// nothing left to expand.
func (w *walker) loop() (bool, error) {
	exit := w.grid.Exit()
	for !w.queue.empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		cur := w.queue.pop()
		w.opts.OnDequeue(cur.pos, cur.depth)

		for _, nbr := range w.grid.Neighbors(cur.pos) {
			if w.visited[nbr.Row][nbr.Col] {
				continue
			}
			w.enqueue(nbr, cur.depth+1, cur.pos)
			if nbr == exit {
				return true, nil
			}
		}
	}

	return false, nil
}

// reconstruct walks parent pointers backward from Exit to Start, then
// reverses into Start→Exit order.
func (w *walker) reconstruct() maze.Path {
	path := maze.Path{}
	for cur := w.grid.Exit(); cur.Row != -1; cur = w.parent[cur.Row][cur.Col] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
