package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction.
var (
	// ErrDegenerate indicates a grid size of zero or less.
	ErrDegenerate = errors.New("board: size must be at least 1")
	// ErrMalformedBoard indicates a row count or row length that differs from the declared size.
	ErrMalformedBoard = errors.New("board: grid must be n rows of n cells")
	// ErrBadHeader indicates the size line of a textual board could not be parsed.
	ErrBadHeader = errors.New("board: size line is not an integer")
)

// TowerMarker is the cell rune that denotes a tower.
const TowerMarker = 'T'

// Coordinate addresses a single cell. Row grows southwards, Col grows eastwards.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by (dr, dc).
func (c Coordinate) Add(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Board is an immutable n×n grid. cells[row][col] holds the original rune.
type Board struct {
	size  int
	cells [][]rune
}
