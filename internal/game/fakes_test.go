package game

type diskCall struct {
	Pos   Coord
	Size  float64
	Color Color
}

type textCall struct {
	Text  string
	X, Y  int
	Color Color
}

// recordingScreen keeps what the last frame drew.
type recordingScreen struct {
	palette int
	clears  int
	disks   []diskCall
	texts   []textCall
	icons   int
}

func (s *recordingScreen) Clear(Color) {
	s.clears++
	s.disks = s.disks[:0]
	s.texts = s.texts[:0]
	s.icons = 0
}

func (s *recordingScreen) SetPalette(n int) { s.palette = n }

func (s *recordingScreen) Disk(pos Coord, size float64, c Color) {
	s.disks = append(s.disks, diskCall{Pos: pos, Size: size, Color: c})
}

func (s *recordingScreen) Pixel(int, int, Color)          {}
func (s *recordingScreen) Rect(int, int, int, int, Color) {}

func (s *recordingScreen) Text(text string, x, y int, c Color) {
	s.texts = append(s.texts, textCall{Text: text, X: x, Y: y, Color: c})
}

func (s *recordingScreen) Icon(Icon, int, int, Color) { s.icons++ }

func (s *recordingScreen) hasText(prefix string) bool {
	for _, t := range s.texts {
		if len(t.Text) >= len(prefix) && t.Text[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

type recordingAudio struct {
	cues  []Cue
	songs []Song
}

func (a *recordingAudio) Play(c Cue)             { a.cues = append(a.cues, c) }
func (a *recordingAudio) Music(s Song, _ uint64) { a.songs = append(a.songs, s) }

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type countingStore struct {
	MemoryStore
	saves int
}

func (s *countingStore) SaveHighScore(score uint32) {
	s.saves++
	s.MemoryStore.SaveHighScore(score)
}

func newTestGame(t Tuning) (*Game, *recordingScreen, *recordingAudio, *countingStore) {
	screen := &recordingScreen{}
	audio := &recordingAudio{}
	store := &countingStore{}
	g := New(Options{Screen: screen, Audio: audio, Store: store, Tuning: t})
	return g, screen, audio, store
}

// startPlaying moves a fresh game from the title screen into the main game
// and removes whatever spawned on the first frame.
func startPlaying(g *Game) {
	g.Update(InputSnapshot{Mouse: MouseLeft})
	g.Update(InputSnapshot{})
	g.Update(InputSnapshot{Mouse: MouseLeft})
	g.Update(InputSnapshot{})
	clear(g.entities.Enemies)
	clear(g.entities.Bombs)
}

func newTestEnemy(pos Coord, c Color) *Enemy {
	e := NewEnemy(pos, c)
	e.Life = e.LifeSpan - e.GraceFrames
	return e
}
