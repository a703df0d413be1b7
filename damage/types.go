package damage

import (
	"errors"

	"github.com/vythor777/towerdefense/board"
)

// Sentinel errors for damage-field computation.
var (
	// ErrNilBoard indicates Compute was called without a board.
	ErrNilBoard = errors.New("damage: board is nil")
	// ErrNegativeTowerDamage indicates a negative per-tower damage value.
	ErrNegativeTowerDamage = errors.New("damage: tower damage must be non-negative")
)

// DefaultTowerDamage is the damage a single tower deals to each neighbouring cell.
const DefaultTowerDamage = 10

// TowerSet is the set of blocked coordinates.
type TowerSet map[board.Coordinate]struct{}

// Has reports whether c is a tower.
func (s TowerSet) Has(c board.Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Map maps each open coordinate to the damage taken there. Absent keys read as 0.
type Map map[board.Coordinate]int

// Field is the immutable result of Compute.
type Field struct {
	Size   int      // grid dimension n
	Towers TowerSet // blocked cells
	Damage Map      // damage per open cell, 0 included
}

// Options configures Compute.
type Options struct {
	TowerDamage int // damage per adjacent tower
}

// Option represents a functional option for Compute.
type Option func(*Options)

// WithTowerDamage overrides the per-tower damage. Negative values panic with
// ErrNegativeTowerDamage.
func WithTowerDamage(d int) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrNegativeTowerDamage.Error())
		}
		o.TowerDamage = d
	}
}

// DefaultOptions returns Options with TowerDamage = DefaultTowerDamage.
func DefaultOptions() Options {
	return Options{TowerDamage: DefaultTowerDamage}
}
