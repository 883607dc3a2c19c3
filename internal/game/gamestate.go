package game

type ScreenName int

const (
	ScreenTitle ScreenName = iota
	ScreenHowToPlay
	ScreenMainGame
	ScreenGameOver
)

func (s ScreenName) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenHowToPlay:
		return "how-to-play"
	case ScreenMainGame:
		return "main-game"
	case ScreenGameOver:
		return "game-over"
	}
	return "unknown"
}

// Flags tracks which screen is showing and whether the last game beat the
// high score.
type Flags struct {
	CurrentScreen ScreenName
	NewHighScore  bool
}

func NewFlags() Flags {
	return Flags{CurrentScreen: ScreenTitle}
}

// Timers are the frame counters everything else is paced by.
//
// SongTick restarts from zero when a song has to start on its first beat;
// FrameCount never does. DeathCountdown only runs while a killer is set and
// Respite blocks enemy spawns until it drains.
type Timers struct {
	FrameCount     uint64
	DeathCountdown uint64
	Respite        uint64
	SongTick       uint64
}

func NewTimers(t Tuning) Timers {
	return Timers{
		DeathCountdown: t.DeathCountdownDuration,
		Respite:        t.RespiteDuration,
	}
}

// Tick must run exactly once per frame.
func (t *Timers) Tick() {
	t.FrameCount++
	t.Respite = satSub(t.Respite, 1)
	t.SongTick++
}
