package game

// Icon is a small 8x8 glyph the renderer knows how to paint.
type Icon int

const (
	IconHeart Icon = iota
	IconMouseLeft
	IconMouseRight
	IconMouseMiddle
)

// Screen is the drawing surface a frame is rendered onto. Coordinates are
// arena pixels with the origin at the top-left corner.
type Screen interface {
	Clear(c Color)
	SetPalette(n int)
	// Disk paints a filled circle inside the size x size box at pos.
	Disk(pos Coord, size float64, c Color)
	Pixel(x, y int, c Color)
	Rect(x, y, w, h int, c Color)
	// Text draws a single or multi-line string with its top-left at (x, y).
	Text(text string, x, y int, c Color)
	Icon(icon Icon, x, y int, c Color)
}

// Audio receives sound cues and drives the music. Music is called once per
// frame; step advances MusicSpeedCtrl times slower than the frame clock.
type Audio interface {
	Play(c Cue)
	Music(song Song, step uint64)
}

// HighScoreStore persists the single high score value. A failed or empty
// read is reported as 0.
type HighScoreStore interface {
	LoadHighScore() uint32
	SaveHighScore(score uint32)
}

type nopScreen struct{}

func (nopScreen) Clear(Color)                    {}
func (nopScreen) SetPalette(int)                 {}
func (nopScreen) Disk(Coord, float64, Color)     {}
func (nopScreen) Pixel(int, int, Color)          {}
func (nopScreen) Rect(int, int, int, int, Color) {}
func (nopScreen) Text(string, int, int, Color)   {}
func (nopScreen) Icon(Icon, int, int, Color)     {}

type nopAudio struct{}

func (nopAudio) Play(Cue)           {}
func (nopAudio) Music(Song, uint64) {}

// MemoryStore keeps the high score in memory only.
type MemoryStore struct {
	Score uint32
}

func (m *MemoryStore) LoadHighScore() uint32      { return m.Score }
func (m *MemoryStore) SaveHighScore(score uint32) { m.Score = score }
