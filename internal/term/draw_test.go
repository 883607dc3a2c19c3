package term

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       Layout
	}{
		{"classic", 80, 24, Layout{OffX: 20, OffY: 2, Step: 4, Cols: 40, Rows: 20}},
		{"full", 160, 80, Layout{Step: 1, Cols: 160, Rows: 80}},
		{"roomy", 200, 100, Layout{OffX: 20, OffY: 10, Step: 1, Cols: 160, Rows: 80}},
		{"tiny", 10, 5, Layout{Step: 16, Cols: 10, Rows: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.cols, tt.rows); got != tt.want {
				t.Fatalf("Fit(%d,%d) = %+v, want %+v", tt.cols, tt.rows, got, tt.want)
			}
		})
	}
}

func TestLayoutToArena(t *testing.T) {
	l := Fit(80, 24)
	if x, y := l.ToArena(20, 2); x != 0 || y != 0 {
		t.Errorf("origin = (%d,%d)", x, y)
	}
	if x, y := l.ToArena(30, 12); x != 40 || y != 80 {
		t.Errorf("inner = (%d,%d)", x, y)
	}
	if x, _ := l.ToArena(0, 2); x >= 0 {
		t.Errorf("left margin mapped inside arena: %d", x)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	defer screen.Fini()

	img := image.NewRGBA(image.Rect(0, 0, 160, 160))
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	// First cell samples (0,0) on top and (0,4) below.
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 4, green)

	l := Fit(80, 24)
	border := tcell.NewRGBColor(1, 2, 3)
	Draw(screen, l, img, border)

	mainc, _, style, _ := screen.GetContent(l.OffX, l.OffY)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("cell colours = %v / %v", fg, bg)
	}

	mainc, _, style, _ = screen.GetContent(0, 0)
	if mainc != ' ' {
		t.Errorf("margin rune = %q", mainc)
	}
	if _, bg, _ := style.Decompose(); bg != border {
		t.Errorf("margin background = %v", bg)
	}
}
