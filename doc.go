// Package gomaze is a maze engine and console maze game: load an authored
// maze from a text file, walk it by hand, enumerate varied routes, or let
// BFS hand you the shortest one.
//
// 🚀 What is gomaze?
//
//	A small, dependency-light engine split into focused packages:
//		• maze/   — grid model: loading, validation, cell queries, adjacency
//		• bfs/    — shortest path via breadth-first search + parent links
//		• dfs/    — randomized depth-first enumeration of distinct routes
//		• nav/    — manual navigation state machine for interactive play
//		• render/ — colored console frames and PNG export of annotated grids
//
// ✨ Why choose gomaze?
//
//   - Explicit outcomes – every failure is a distinguishable sentinel error
//   - Deterministic where it counts – stable BFS order, seedable DFS shuffles
//   - Pure core – solvers never render, renderers never solve
//   - Hooks – OnEnqueue/OnDequeue/OnVisit callbacks for tracing and tooling
//
// Maze files are plain text, one row per line: '#' is a wall, 'S' the single
// start, 'E' the single exit, anything else open floor. All rows must share
// one length.
//
// Quick ASCII example:
//
//	    S..
//	    .#.
//	    ..E
//
//	a 3×3 maze whose shortest route takes 4 steps around either side
//	of the center wall.
//
// The cmd/gomaze binary ties it together: an interactive menu, plus play,
// paths, solve and export subcommands.
//
//	go get github.com/katalvlaran/gomaze
package gomaze
