package board

import "fmt"

// New builds a Board of size n from rows. It deep-copies the input so the
// Board stays immutable.
// Returns ErrDegenerate if n ≤ 0 and ErrMalformedBoard (wrapped with the
// offending row) if len(rows) != n or any row does not hold exactly n runes.
// Complexity: O(n²) time and memory.
func New(n int, rows []string) (*Board, error) {
	if n <= 0 {
		return nil, ErrDegenerate
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedBoard, len(rows), n)
	}

	cells := make([][]rune, n)
	for r, row := range rows {
		line := []rune(row)
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(line), n)
		}
		cells[r] = line
	}

	return &Board{size: n, cells: cells}, nil
}

// FromRows builds a Board whose size is the number of rows.
func FromRows(rows []string) (*Board, error) {
	return New(len(rows), rows)
}

// Size returns n.
func (b *Board) Size() int { return b.size }

// Start returns the fixed start cell (0,0).
func (b *Board) Start() Coordinate { return Coordinate{} }

// Goal returns the fixed goal cell (n-1,n-1).
func (b *Board) Goal() Coordinate { return Coordinate{Row: b.size - 1, Col: b.size - 1} }

// InBounds reports whether c lies on the grid.
// Complexity: O(1).
func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// At returns the rune stored at c. c must be in bounds.
func (b *Board) At(c Coordinate) rune {
	return b.cells[c.Row][c.Col]
}

// IsTower reports whether c is in bounds and holds a tower.
func (b *Board) IsTower(c Coordinate) bool {
	return b.InBounds(c) && b.cells[c.Row][c.Col] == TowerMarker
}

// Towers lists every tower coordinate in row-major order.
// Complexity: O(n²).
func (b *Board) Towers() []Coordinate {
	var out []Coordinate
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] == TowerMarker {
				out = append(out, Coordinate{Row: r, Col: c})
			}
		}
	}

	return out
}

// Rows returns a copy of the grid as strings, one per row.
func (b *Board) Rows() []string {
	out := make([]string, b.size)
	for r, line := range b.cells {
		out[r] = string(line)
	}

	return out
}
