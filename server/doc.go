// Package server exposes the search engine and visualizer boards over HTTP.
//
// Routes:
//
//	GET    /api/algorithms              algorithm ids
//	POST   /api/search                  stateless search over a posted layout
//	POST   /api/boards                  create a board
//	GET    /api/boards/{id}             board snapshot
//	GET    /api/boards/{id}/regions     open areas separated by walls
//	DELETE /api/boards/{id}             drop an idle board
//	POST   /api/boards/{id}/walls       toggle (or paint) a wall
//	DELETE /api/boards/{id}/walls       clear every wall
//	POST   /api/boards/{id}/reset       replace the grid with an open one
//	POST   /api/boards/{id}/start       move the start cell
//	POST   /api/boards/{id}/end         move the end cell
//	POST   /api/boards/{id}/run         run a search on the board
//	GET    /ws/boards/{id}?algorithm=   run and stream playback frames
//
// Coordinates travel as [row, col] pairs.
package server
