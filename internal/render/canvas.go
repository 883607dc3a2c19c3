package render

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"duality/internal/game"
)

const (
	// Pixels from the top of a text line to its baseline.
	textBaseline = 9
	lineHeight   = 10
)

// Canvas is the arena framebuffer. It implements game.Screen so the core can
// draw straight into it; frontends then present Image however they can.
type Canvas struct {
	img     *image.RGBA
	palette int
	face    font.Face
}

func NewCanvas() *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, game.ArenaSize, game.ArenaSize)),
		face: basicfont.Face7x13,
	}
}

// Image is the current frame. It stays valid and is overwritten in place.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Palette() Palette { return Palettes[c.palette] }

func (c *Canvas) PaletteIndex() int { return c.palette }

func (c *Canvas) rgb(idx int) color.RGBA {
	return Palettes[c.palette][idx].RGBA()
}

func (c *Canvas) set(x, y, idx int) {
	if idx < 0 {
		return
	}
	c.img.SetRGBA(x, y, c.rgb(idx))
}

func (c *Canvas) Clear(col game.Color) {
	p := paintOf(col)
	if p.fill < 0 {
		return
	}
	rgba := c.rgb(p.fill)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
}

func (c *Canvas) SetPalette(n int) {
	c.palette = ((n % len(Palettes)) + len(Palettes)) % len(Palettes)
}

// Disk paints a circle inscribed in the size x size box at pos, with a one
// pixel outline when the colour has one.
func (c *Canvas) Disk(pos game.Coord, size float64, col game.Color) {
	p := paintOf(col)
	x0, y0, d := int(pos.X), int(pos.Y), int(size)
	if d <= 0 {
		return
	}
	r := float64(d) / 2
	inner := (r - 1) * (r - 1)
	outer := r * r
	for dy := 0; dy < d; dy++ {
		for dx := 0; dx < d; dx++ {
			fx := float64(dx) + 0.5 - r
			fy := float64(dy) + 0.5 - r
			dist := fx*fx + fy*fy
			switch {
			case dist > outer:
				continue
			case dist > inner && p.outline >= 0:
				c.set(x0+dx, y0+dy, p.outline)
			default:
				c.set(x0+dx, y0+dy, p.fill)
			}
		}
	}
}

func (c *Canvas) Pixel(x, y int, col game.Color) {
	c.set(x, y, paintOf(col).fill)
}

// Rect fills w x h pixels. Colours with an outline get a one pixel border.
func (c *Canvas) Rect(x, y, w, h int, col game.Color) {
	p := paintOf(col)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			edge := dx == 0 || dy == 0 || dx == w-1 || dy == h-1
			if edge && p.outline >= 0 {
				c.set(x+dx, y+dy, p.outline)
			} else {
				c.set(x+dx, y+dy, p.fill)
			}
		}
	}
}

// Text renders with the 7x13 bitmap face; newlines start a new line.
func (c *Canvas) Text(text string, x, y int, col game.Color) {
	p := paintOf(col)
	if p.fill < 0 {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.rgb(p.fill)),
		Face: c.face,
	}
	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(x, y+textBaseline+i*lineHeight)
		d.DrawString(line)
	}
}

// TextWidth is the advance of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Round()
}

func (c *Canvas) Icon(icon game.Icon, x, y int, col game.Color) {
	bits, ok := icons[icon]
	if !ok {
		return
	}
	idx := paintOf(col).fill
	for row, b := range bits {
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) != 0 {
				c.set(x+bit, y+row, idx)
			}
		}
	}
}
