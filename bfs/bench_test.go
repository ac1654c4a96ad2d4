package bfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gomaze/bfs"
	"github.com/katalvlaran/gomaze/maze"
)

// openGrid builds an n×n maze with no interior walls, S top-left and E
// bottom-right, the worst case for frontier size.
func openGrid(b *testing.B, n int) *maze.Grid {
	b.Helper()
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == n-1 && c == n-1:
				sb.WriteByte('E')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	g, err := maze.Load(strings.NewReader(sb.String()), maze.LoadOptions{MaxRows: n, MaxCols: n})
	if err != nil {
		b.Fatalf("Load error: %v", err)
	}

	return g
}

// BenchmarkShortestPath measures a full search over a 100×100 open grid.
func BenchmarkShortestPath(b *testing.B) {
	g := openGrid(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.ShortestPath(g); err != nil {
			b.Fatal(err)
		}
	}
}
