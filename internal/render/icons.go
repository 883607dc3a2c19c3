package render

import "duality/internal/game"

// 8x8 one bit per pixel glyphs, most significant bit leftmost.
var icons = map[game.Icon][8]byte{
	game.IconHeart: {
		0b00000000,
		0b00110110,
		0b01110111,
		0b01111111,
		0b01111111,
		0b00111110,
		0b00011100,
		0b00001000,
	},
	game.IconMouseLeft: {
		0b00111100,
		0b01110010,
		0b01110010,
		0b01111110,
		0b01000010,
		0b01000010,
		0b00100100,
		0b00011000,
	},
	game.IconMouseRight: {
		0b00111100,
		0b01001110,
		0b01001110,
		0b01111110,
		0b01000010,
		0b01000010,
		0b00100100,
		0b00011000,
	},
	game.IconMouseMiddle: {
		0b00111100,
		0b01011010,
		0b01011010,
		0b01111110,
		0b01000010,
		0b01000010,
		0b00100100,
		0b00011000,
	},
}
