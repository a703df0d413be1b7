package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/damage"
	"github.com/vythor777/towerdefense/search"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(60, 10)
	t.Cleanup(s.Fini)
	return s
}

func field(t *testing.T, rows ...string) *damage.Field {
	t.Helper()
	b, err := board.FromRows(rows)
	require.NoError(t, err)
	f, err := damage.Compute(b)
	require.NoError(t, err)
	return f
}

// line reads back screen row y, trimmed on the right.
func line(s tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestDraw_Grid(t *testing.T) {
	s := simScreen(t)
	f := field(t, "...", ".T.", "...")

	require.NoError(t, NewRenderer(s).Draw(f, "LLSS"))

	assert.Equal(t, "  S  10  10", line(s, 0, 60))
	assert.Equal(t, " 10   T  10", line(s, 1, 60))
	assert.Equal(t, " 10  10   G", line(s, 2, 60))
	assert.Equal(t, `route="LLSS" damage=30 max-field=10`, line(s, 4, 60))
	assert.True(t, strings.HasPrefix(line(s, 5, 60), "T tower  S start  G goal"))
}

func TestDraw_HighlightsRoute(t *testing.T) {
	s := simScreen(t)
	f := field(t, "..", "..")
	require.NoError(t, NewRenderer(s).Draw(f, "LS"))

	bgAt := func(row, col int) tcell.Color {
		_, _, style, _ := s.GetContent(col*CellWidth, row)
		_, bg, _ := style.Decompose()
		return bg
	}
	assert.Equal(t, tcell.ColorNavy, bgAt(0, 0))
	assert.Equal(t, tcell.ColorNavy, bgAt(0, 1))
	assert.Equal(t, tcell.ColorNavy, bgAt(1, 1))
	assert.NotEqual(t, tcell.ColorNavy, bgAt(1, 0))
}

func TestDraw_Errors(t *testing.T) {
	s := simScreen(t)
	r := NewRenderer(s)
	assert.ErrorIs(t, r.Draw(nil, ""), ErrNilField)
	assert.ErrorIs(t, r.Draw(field(t, "."), "X"), search.ErrUnknownDirection)
}

func TestView_QuitsOnKey(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 8)
	f := field(t, ".T", "..")

	// Queued before View starts polling; other keys are ignored.
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, View(s, f, "SL"))
}
