// Package towerdefense finds the route that takes the least tower damage
// across a square grid.
//
// A board is an n×n grid where 'T' marks a tower. Every tower hits the eight
// cells around it for 10 damage each; hits from several towers add up. An
// entity walks from the top-left cell to the bottom-right cell using north,
// south, east and west moves, never entering a tower, and pays the damage
// of every cell it steps into except the goal.
//
// Under the hood:
//
//	board/     — grid ingestion and validation, textual reader with BOM handling
//	damage/    — tower set and per-cell damage field
//	search/    — uniform-cost search with a deterministic tie-break
//	solver/    — pipeline with tracing and structured logging
//	sink/      — route file and JSON report output
//	render/    — terminal view of board, field and route (tcell)
//	telemetry/ — OpenTelemetry setup
//	cmd/towerdefense — command-line entry point
//
// Quick example:
//
//	...      route  LLSS
//	.T.  →   damage 30
//	...
package towerdefense
