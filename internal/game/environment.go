package game

// PaletteCount is the number of colour palettes a renderer must provide.
const PaletteCount = 10

type Star struct {
	X, Y int
}

// Environment is the backdrop: the starfield, the active palette and the
// song currently selected. The HUD is not part of it.
type Environment struct {
	Stars    []Star
	PaletteN int
	SongNr   Song
}

func NewEnvironment(rng *Rand) Environment {
	stars := make([]Star, StarCount)
	for i := range stars {
		stars[i] = Star{X: rng.Intn(ArenaSize), Y: rng.Intn(ArenaSize)}
	}
	return Environment{
		Stars:  stars,
		SongNr: IntroSong,
	}
}

// Update clears the frame, feeds the music clock and paints the stars.
func (e *Environment) Update(s Screen, a Audio, songTick uint64) {
	s.Clear(ColorBackground)
	a.Music(e.SongNr, songTick/MusicSpeedCtrl)
	for _, st := range e.Stars {
		s.Pixel(st.X, st.Y, ColorStar)
	}
}

// SetPalette selects palette n, wrapping past the last one.
func (e *Environment) SetPalette(s Screen, n int) {
	e.PaletteN = ((n % PaletteCount) + PaletteCount) % PaletteCount
	s.SetPalette(e.PaletteN)
}
