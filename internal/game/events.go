package game

// Cue is a discrete gameplay event hosts react to, mostly with sound.
type Cue int

const (
	CueBombExploded Cue = iota
	CueExtraLife
	CuePlayerDied
	CuePlayerJoined
	CuePaletteChanged
)

func (c Cue) String() string {
	switch c {
	case CueBombExploded:
		return "bomb-exploded"
	case CueExtraLife:
		return "extra-life"
	case CuePlayerDied:
		return "player-died"
	case CuePlayerJoined:
		return "player-joined"
	case CuePaletteChanged:
		return "palette-changed"
	}
	return "unknown"
}

type CueHandler func(Cue)

// CueBus fans cues out to subscribers synchronously, inside the frame that
// produced them.
type CueBus struct {
	handlers map[Cue][]CueHandler
	all      []CueHandler
}

func NewCueBus() *CueBus {
	return &CueBus{
		handlers: make(map[Cue][]CueHandler),
	}
}

func (b *CueBus) Subscribe(c Cue, fn CueHandler) {
	b.handlers[c] = append(b.handlers[c], fn)
}

// SubscribeAll registers fn for every cue kind.
func (b *CueBus) SubscribeAll(fn CueHandler) {
	b.all = append(b.all, fn)
}

func (b *CueBus) Emit(c Cue) {
	for _, fn := range b.all {
		fn(c)
	}
	for _, fn := range b.handlers[c] {
		fn(c)
	}
}
