package render

import (
	"image/color"

	"duality/internal/game"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Mul scales every channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Palette is four colours, darkest first for most entries.
type Palette [4]RGB

var Palettes = [game.PaletteCount]Palette{
	{Hex(0x120136), Hex(0x035AA6), Hex(0x40BAD5), Hex(0xFCBF1E)},
	{Hex(0x100720), Hex(0x31087B), Hex(0xFA2FB5), Hex(0xFFC23C)},
	{Hex(0xfff6d3), Hex(0xf9a875), Hex(0xeb6b6f), Hex(0x7c3f58)},
	// lospec kirokaze-gameboy
	{Hex(0x332c50), Hex(0x46878f), Hex(0x94e344), Hex(0xe2f3e4)},
	// lospec red-blood-pain
	{Hex(0x7e1f23), Hex(0xc4181f), Hex(0x120a19), Hex(0x5e4069)},
	// lospec lava-gb
	{Hex(0x051f39), Hex(0x4a2480), Hex(0xc53a9d), Hex(0xff8e80)},
	// lospec game-watch-gb
	{Hex(0x06160f), Hex(0x535b4e), Hex(0xb0b3a6), Hex(0xefeee8)},
	{Hex(0x001E6C), Hex(0x035397), Hex(0xE8630A), Hex(0xFCD900)},
	{Hex(0x06113C), Hex(0xFF8C32), Hex(0xDDDDDD), Hex(0xEEEEEE)},
	{Hex(0x12000A), Hex(0x3B9E0C), Hex(0x0A7E48), Hex(0x9E0C50)},
}

// paint is how a game colour lands on the framebuffer: a palette index for
// the fill and one for the outline, -1 meaning transparent.
type paint struct {
	fill, outline int
}

var paints = map[game.Color]paint{
	game.ColorNone:       {-1, -1},
	game.ColorBackground: {0, -1},
	game.ColorA:          {1, 2},
	game.ColorB:          {3, 2},
	game.ColorBomb:       {-1, 2},
	game.ColorStar:       {3, -1},
	game.ColorText:       {1, -1},
	game.ColorHighlight:  {3, -1},
	game.ColorPlain:      {0, -1},
}

func paintOf(c game.Color) paint {
	if p, ok := paints[c]; ok {
		return p
	}
	return paint{-1, -1}
}
