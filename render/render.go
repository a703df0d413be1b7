// Package render draws a solved board onto a terminal screen with tcell.
//
// It only consumes the damage field (towers and per-cell damage) and the
// route; it never computes anything itself.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/damage"
	"github.com/vythor777/towerdefense/search"
)

// CellWidth is the number of screen columns one grid cell occupies.
const CellWidth = 4

// ErrNilField indicates Draw was called without a damage field.
var ErrNilField = errors.New("render: damage field is nil")

var (
	styleOpen   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHit    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleTower  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRoute  = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleLegend = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for an initialised screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and paints the grid, the route and a two-line legend
// below the grid. Route cells get a highlighted background.
func (r *Renderer) Draw(f *damage.Field, route search.Route) error {
	if f == nil {
		return ErrNilField
	}
	cells, err := route.Walk(board.Coordinate{})
	if err != nil {
		return err
	}
	onRoute := make(map[board.Coordinate]bool, len(cells))
	if route.Len() > 0 {
		for _, c := range cells {
			onRoute[c] = true
		}
	}

	r.screen.Clear()
	goal := board.Coordinate{Row: f.Size - 1, Col: f.Size - 1}
	for row := 0; row < f.Size; row++ {
		for col := 0; col < f.Size; col++ {
			at := board.Coordinate{Row: row, Col: col}
			label, style := cellLabel(f, at, goal)
			if onRoute[at] {
				style = style.Background(tcell.ColorNavy)
			}
			r.drawCell(col*CellWidth, row, label, style)
		}
	}

	r.drawText(0, f.Size+1, fmt.Sprintf("route=%q damage=%d max-field=%d", string(route), routeDamage(f, cells), f.Max()), styleLegend)
	r.drawText(0, f.Size+2, "T tower  S start  G goal  ", styleLegend)
	r.drawText(len("T tower  S start  G goal  "), f.Size+2, " route ", styleRoute)

	r.screen.Show()
	return nil
}

// cellLabel picks the text and style of one cell.
func cellLabel(f *damage.Field, at, goal board.Coordinate) (string, tcell.Style) {
	switch {
	case f.IsTower(at):
		return "T", styleTower
	case at == (board.Coordinate{}):
		return "S", styleMarker
	case at == goal:
		return "G", styleMarker
	}
	d := f.At(at)
	if d == 0 {
		return ".", styleOpen
	}
	label := strconv.Itoa(d)
	if len(label) >= CellWidth {
		label = "++"
	}
	return label, styleHit
}

// routeDamage sums the damage of the intermediate route cells.
func routeDamage(f *damage.Field, cells []board.Coordinate) int {
	total := 0
	for i := 1; i < len(cells)-1; i++ {
		total += f.At(cells[i])
	}
	return total
}

// drawCell right-aligns label in a CellWidth-1 slot followed by one blank column.
func (r *Renderer) drawCell(x, y int, label string, style tcell.Style) {
	pad := CellWidth - 1 - len(label)
	for i := 0; i < CellWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	r.drawText(x+pad, y, label, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// NewScreen creates and initialises the terminal screen used by View.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("render: init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return s, nil
}

// View draws the solution on an initialised screen and blocks until q, Esc
// or Enter is pressed. It takes ownership of screen and finalises it before
// returning.
func View(screen tcell.Screen, f *damage.Field, route search.Route) error {
	defer screen.Fini()

	r := NewRenderer(screen)
	if err := r.Draw(f, route); err != nil {
		return err
	}
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := r.Draw(f, route); err != nil {
				return err
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}
