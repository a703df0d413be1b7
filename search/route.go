package search

import (
	"fmt"

	"github.com/vythor777/towerdefense/board"
)

// Walk replays r from start and returns every cell visited, start first.
// It does not check bounds or towers; callers validate against their grid.
func (r Route) Walk(start board.Coordinate) ([]board.Coordinate, error) {
	cells := make([]board.Coordinate, 0, len(r)+1)
	cells = append(cells, start)
	at := start
	for i := 0; i < len(r); i++ {
		dr, dc, ok := Direction(r[i]).Delta()
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownDirection, r[i], i)
		}
		at = at.Add(dr, dc)
		cells = append(cells, at)
	}

	return cells, nil
}
