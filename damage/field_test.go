package damage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/damage"
)

func mustBoard(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := board.FromRows(rows)
	require.NoError(t, err)
	return b
}

// grid renders the field as rows of ints, -1 marking towers.
func grid(f *damage.Field) [][]int {
	out := make([][]int, f.Size)
	for r := range out {
		out[r] = make([]int, f.Size)
		for c := range out[r] {
			cell := board.Coordinate{Row: r, Col: c}
			if f.IsTower(cell) {
				out[r][c] = -1
				continue
			}
			out[r][c] = f.At(cell)
		}
	}
	return out
}

func TestCompute_NilBoard(t *testing.T) {
	_, err := damage.Compute(nil)
	require.ErrorIs(t, err, damage.ErrNilBoard)
}

func TestCompute_CentreTowerFloodsRing(t *testing.T) {
	f, err := damage.Compute(mustBoard(t, "...", ".T.", "..."))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{10, 10, 10},
		{10, -1, 10},
		{10, 10, 10},
	}, grid(f))
	assert.Len(t, f.Damage, 8)
	assert.Len(t, f.Towers, 1)
	assert.Equal(t, 10, f.Max())
}

func TestCompute_OverlappingTowersAccumulate(t *testing.T) {
	f, err := damage.Compute(mustBoard(t,
		".....",
		".T...",
		"...T.",
		".T...",
		".....",
	))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{10, 10, 10, 0, 0},
		{10, -1, 20, 10, 10},
		{20, 20, 30, -1, 10},
		{10, -1, 20, 10, 10},
		{10, 10, 10, 0, 0},
	}, grid(f))
	assert.Equal(t, 30, f.Max())
}

func TestCompute_AdjacentTowersDoNotDamageEachOther(t *testing.T) {
	f, err := damage.Compute(mustBoard(t, "TT", ".."))
	require.NoError(t, err)

	_, ok := f.Damage[board.Coordinate{Row: 0, Col: 0}]
	assert.False(t, ok, "towers must never be keys of the damage map")
	assert.Equal(t, 20, f.At(board.Coordinate{Row: 1, Col: 0}))
	assert.Equal(t, 20, f.At(board.Coordinate{Row: 1, Col: 1}))
}

func TestCompute_EveryOpenCellPresent(t *testing.T) {
	f, err := damage.Compute(mustBoard(t, "....", "....", "....", "...."))
	require.NoError(t, err)

	assert.Len(t, f.Damage, 16)
	for c, d := range f.Damage {
		assert.Zerof(t, d, "cell %v", c)
	}
	assert.Zero(t, f.Max())
}

func TestCompute_SingleCell(t *testing.T) {
	f, err := damage.Compute(mustBoard(t, "T"))
	require.NoError(t, err)
	assert.Empty(t, f.Damage)
	assert.True(t, f.IsTower(board.Coordinate{}))

	f, err = damage.Compute(mustBoard(t, "."))
	require.NoError(t, err)
	assert.Equal(t, damage.Map{{}: 0}, f.Damage)
}

func TestCompute_MultiplesOfTowerDamage(t *testing.T) {
	f, err := damage.Compute(mustBoard(t, "T.T.", "....", ".T..", "...T"))
	require.NoError(t, err)
	for c, d := range f.Damage {
		assert.GreaterOrEqual(t, d, 0)
		assert.Zerof(t, d%damage.DefaultTowerDamage, "cell %v damage %d", c, d)
	}
}

func TestWithTowerDamage(t *testing.T) {
	f, err := damage.Compute(mustBoard(t, "T.", ".."), damage.WithTowerDamage(7))
	require.NoError(t, err)
	assert.Equal(t, 7, f.At(board.Coordinate{Row: 1, Col: 1}))

	assert.PanicsWithValue(t, damage.ErrNegativeTowerDamage.Error(), func() {
		damage.WithTowerDamage(-1)(&damage.Options{})
	})
}
