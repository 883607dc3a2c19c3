package term

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"duality/internal/game"
)

// Upper half block: foreground paints the top pixel, background the bottom.
const halfBlock = '▀'

// Layout places the arena in a terminal of cols x rows cells. Every cell
// covers Step x 2*Step arena pixels.
type Layout struct {
	OffX, OffY int
	Step       int
	Cols, Rows int
}

// Fit picks the smallest step that lets the whole arena fit and centres it.
func Fit(cols, rows int) Layout {
	step := 1
	for step < game.ArenaSize {
		if ceilDiv(game.ArenaSize, step) <= cols && ceilDiv(game.ArenaSize, 2*step) <= rows {
			break
		}
		step++
	}
	w := ceilDiv(game.ArenaSize, step)
	h := ceilDiv(game.ArenaSize, 2*step)
	return Layout{
		OffX: max((cols-w)/2, 0),
		OffY: max((rows-h)/2, 0),
		Step: step,
		Cols: w,
		Rows: h,
	}
}

// ToArena maps a cell to the arena pixel at its top-left corner.
func (l Layout) ToArena(x, y int) (int, int) {
	return (x - l.OffX) * l.Step, (y - l.OffY) * 2 * l.Step
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func rgb(img *image.RGBA, x, y int) tcell.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints img into s using half blocks. The caller calls Show.
func Draw(s tcell.Screen, l Layout, img *image.RGBA, border tcell.Color) {
	s.Fill(' ', tcell.StyleDefault.Background(border))
	for row := range l.Rows {
		for col := range l.Cols {
			x := col * l.Step
			y := row * 2 * l.Step
			style := tcell.StyleDefault.
				Foreground(rgb(img, x, y)).
				Background(rgb(img, x, y+l.Step))
			s.SetContent(l.OffX+col, l.OffY+row, halfBlock, nil, style)
		}
	}
}
