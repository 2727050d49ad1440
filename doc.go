// Package pathfinding is a grid pathfinding engine with the pieces a
// visualizer needs around it: paint walls on a rectangular grid, pick a
// start and an end, run a search and replay its trace.
//
// 🚀 What is inside?
//
//	• Grid model: cells, walls and 4-connected adjacency (up, down, left, right)
//	• Searches: Dijkstra, breadth-first and depth-first, one shared Result
//	• Traces: every finalized cell in order, plus the reconstructed path
//	• Playback: visited reveals every 10ms, then the path every 50ms
//	• Adapters: an HTTP/WebSocket server and the pathviz command
//
// Packages:
//
//	gridgraph/   Coord, Cell and Grid; neighbors, walls, reachability
//	search/      Dijkstra, BFS, DFS, the algorithm registry and Result
//	playback/    frame schedules and timed replay
//	board/       editable visualizer state and text layouts
//	config/      PATHVIZ_* settings from the environment or a .env file
//	server/      REST routes and live playback over WebSocket
//	cmd/pathviz  command line entry point
//
// Quick ASCII example (BFS, '*' path, 'o' visited):
//
//	Soooo
//	*o##o
//	****E
//
// Each search resets its own per-run state, so repeated runs on an
// unmodified grid return identical traces and concurrent read-only runs
// on one grid are safe.
package pathfinding
