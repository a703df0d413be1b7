// Package damage derives the damage field of a board: the set of tower
// cells and, for every open cell, the cumulative damage an entity standing
// there would take.
//
// Rule:
//
//	damage(C) = TowerDamage × |{ T tower : max(|C.Row-T.Row|, |C.Col-T.Col|) = 1 }|
//
// i.e. each tower hits its full 8-neighbourhood. Towers themselves never
// appear as keys of the damage map; every open cell does, with 0 where no
// tower is adjacent.
//
// Complexity:
//
//   - Compute: O(n² + 8·|towers|) time, O(n²) memory. Each tower scatters
//     its damage onto its neighbours once, instead of every cell scanning
//     every tower.
//
// Errors:
//
//   - ErrNilBoard:            Compute was handed a nil board.
//   - ErrNegativeTowerDamage: WithTowerDamage received a negative value (panic).
package damage
