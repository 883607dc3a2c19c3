package render

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"duality/internal/game"
)

// inkScreen draws like Canvas but also renders every text call onto an
// oversized scratch image and records lines whose ink leaves the arena.
type inkScreen struct {
	*Canvas
	clipped []string
}

func (s *inkScreen) Text(text string, x, y int, col game.Color) {
	const margin = 40
	scratch := image.NewAlpha(image.Rect(-margin, -margin, game.ArenaSize+margin, game.ArenaSize+margin))
	d := &font.Drawer{Dst: scratch, Src: image.Opaque, Face: s.face}
	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(x, y+textBaseline+i*lineHeight)
		d.DrawString(line)
	}

	arena := image.Rect(0, 0, game.ArenaSize, game.ArenaSize)
	b := scratch.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if scratch.AlphaAt(px, py).A != 0 && !image.Pt(px, py).In(arena) {
				s.clipped = append(s.clipped, fmt.Sprintf("%q at (%d,%d): ink at (%d,%d)", text, x, y, px, py))
				return
			}
		}
	}
	s.Canvas.Text(text, x, y, col)
}

func TestScreensTextStaysOnCanvas(t *testing.T) {
	screen := &inkScreen{Canvas: NewCanvas()}
	g := game.New(game.Options{
		Screen: screen,
		Store:  &game.MemoryStore{Score: game.MaxScore},
	})
	press := game.InputSnapshot{Gamepads: [game.MaxPlayers]game.Buttons{game.Button1}}
	idle := game.InputSnapshot{}
	run := func(n int) {
		for range n {
			g.Update(idle)
		}
	}

	run(30)
	g.Update(press)
	run(60)
	if g.Screen() != game.ScreenHowToPlay {
		t.Fatalf("screen = %v, want how-to-play", g.Screen())
	}
	g.Update(press)
	run(5)
	if g.Screen() != game.ScreenMainGame {
		t.Fatalf("screen = %v, want main game", g.Screen())
	}
	g.Entities().P1().Lives = 0
	run(30)
	if g.Screen() != game.ScreenGameOver {
		t.Fatalf("screen = %v, want game over", g.Screen())
	}

	for _, c := range screen.clipped {
		t.Error(c)
	}
}
