// Package search finds the minimum-damage route from the top-left to the
// bottom-right cell of a tower-defense grid.
//
// Overview:
//
//   - Uniform-cost search (Dijkstra) over open cells with 4-neighbour moves.
//   - The weight of a move into cell B is damage(B), except a move into the
//     goal, which always weighs 0. The start cell contributes nothing.
//   - The route is reported as a string over {N, S, L, O}: north, south,
//     east (leste) and west (oeste).
//
// Tie-break:
//
//	The frontier is a min-heap ordered by the tuple
//	(damage, row, col, route) compared field by field, the route last and
//	byte-wise ('L' < 'N' < 'O' < 'S'). Neighbours are pushed in the order
//	S, N, L, O. Together these fix which of several equal-damage routes is
//	reported, so the output is reproducible to the byte.
//
// Termination:
//
//   - The first pop of the goal ends the search with its route and damage.
//   - A cell is settled on pop; later pops of the same cell are stale and
//     dropped without expansion.
//   - An exhausted frontier yields the empty route with zero damage and
//     Result.Reached == false. This also covers a start or goal that is a
//     tower. On a 1×1 open board the empty route is a real, reached route.
//
// Complexity:
//
//   - Time:  O(n² log n) with at most 4 pushes per settled cell.
//   - Space: O(n²) for the visited set and the heap. Routes are carried in
//     the heap entries, so the worst case adds O(n²·|route|) bytes.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidSize:      n ≤ 0.
//   - ErrNegativeDamage:   the damage map holds a negative value.
//   - ErrNilField:         FromField received a nil field.
//   - ErrBadMaxDamage:     WithMaxDamage received a negative limit (panic).
//   - ErrUnknownDirection: Route.Walk met a symbol outside {N,S,L,O}.
package search
