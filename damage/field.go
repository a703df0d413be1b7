package damage

import "github.com/vythor777/towerdefense/board"

// chebyshevRing lists the eight offsets at Chebyshev distance 1.
var chebyshevRing = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Compute derives the tower set and damage map of b.
//
// Steps:
//  1. Collect towers.
//  2. Seed every open cell with 0.
//  3. Let each tower add TowerDamage to each in-bounds, open neighbour.
//
// Complexity: O(n² + 8·|towers|).
func Compute(b *board.Board, opts ...Option) (*Field, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := b.Size()
	towers := b.Towers()
	f := &Field{
		Size:   n,
		Towers: make(TowerSet, len(towers)),
		Damage: make(Map, n*n-len(towers)),
	}
	for _, t := range towers {
		f.Towers[t] = struct{}{}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := board.Coordinate{Row: r, Col: c}
			if !f.Towers.Has(cell) {
				f.Damage[cell] = 0
			}
		}
	}

	for _, t := range towers {
		for _, d := range chebyshevRing {
			nb := t.Add(d[0], d[1])
			if !b.InBounds(nb) || f.Towers.Has(nb) {
				continue
			}
			f.Damage[nb] += cfg.TowerDamage
		}
	}

	return f, nil
}

// At returns the damage at c, 0 for towers and out-of-grid cells.
func (f *Field) At(c board.Coordinate) int {
	return f.Damage[c]
}

// IsTower reports whether c is blocked.
func (f *Field) IsTower(c board.Coordinate) bool {
	return f.Towers.Has(c)
}

// Max returns the largest damage value in the field.
func (f *Field) Max() int {
	m := 0
	for _, d := range f.Damage {
		if d > m {
			m = d
		}
	}

	return m
}
