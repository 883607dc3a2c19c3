package game

import (
	"io"
	"log"

	"github.com/google/uuid"
)

// Enemies enter from the corners and the middle of each edge.
var enemySpawnPoints = [...]Coord{
	{X: 0, Y: 0},
	{X: 0, Y: ArenaSize / 2},
	{X: 0, Y: ArenaSize - 1},
	{X: ArenaSize / 2, Y: 0},
	{X: ArenaSize / 2, Y: ArenaSize - 1},
	{X: ArenaSize - 1, Y: 0},
	{X: ArenaSize - 1, Y: ArenaSize / 2},
	{X: ArenaSize - 1, Y: ArenaSize - 1},
}

// Options wires a Game to its host. Nil collaborators are replaced with
// silent stand-ins and a zero Tuning means DefaultTuning.
type Options struct {
	Screen Screen
	Audio  Audio
	Store  HighScoreStore
	Logger *log.Logger
	Tuning Tuning
	// Palette is the palette index the first session starts with.
	Palette int
	// SeedOffset is added to the RNG seed of every session.
	SeedOffset uint64
}

// Game is the frame-driven state machine. The host owns it and calls Update
// once per frame from a single goroutine.
type Game struct {
	entities *EntityManager
	timers   Timers
	calib    Calibrations
	scores   Scores
	flags    Flags
	env      Environment
	controls Controls
	cues     *CueBus

	screen Screen
	audio  Audio
	store  HighScoreStore
	log    *log.Logger
	tuning Tuning
	seed   uint64

	session uuid.UUID
}

func New(opts Options) *Game {
	g := &Game{
		screen: opts.Screen,
		audio:  opts.Audio,
		store:  opts.Store,
		log:    opts.Logger,
		tuning: opts.Tuning,
		seed:   opts.SeedOffset,
		cues:   NewCueBus(),
	}
	if g.screen == nil {
		g.screen = nopScreen{}
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.store == nil {
		g.store = &MemoryStore{}
	}
	if g.log == nil {
		g.log = log.New(io.Discard, "", 0)
	}
	if g.tuning == (Tuning{}) {
		g.tuning = DefaultTuning()
	}

	g.cues.SubscribeAll(g.audio.Play)

	g.entities = NewEntityManager(g.tuning)
	g.timers = NewTimers(g.tuning)
	g.calib = NewCalibrations(g.tuning, g.seed)
	g.scores = NewScores(g.store)
	g.flags = NewFlags()
	g.env = NewEnvironment(g.calib.RNG)
	g.env.SetPalette(g.screen, opts.Palette)
	g.session = uuid.New()

	g.log.Printf("[%s] new game, high score %d", g.sessionTag(), g.scores.High)
	return g
}

// Restart begins a new run on the main game screen. Players that already
// joined stay in, each bringing a fresh set of lives to the shared pool.
// The high score and the palette carry over.
func (g *Game) Restart() {
	var joined []PlayerN
	for _, p := range g.entities.Joined() {
		joined = append(joined, p.Number)
	}
	high := g.scores.High
	palette := g.env.PaletteN

	g.entities = NewEntityManager(g.tuning)
	for _, n := range joined {
		g.entities.Join(n)
	}
	g.entities.P1().Lives = g.tuning.InitLives * uint32(len(joined))

	g.calib = NewCalibrations(g.tuning, g.timers.FrameCount+g.seed)
	g.env = NewEnvironment(g.calib.RNG)
	g.env.SetPalette(g.screen, palette)
	g.timers = NewTimers(g.tuning)
	g.scores = NewScores(g.store)
	g.scores.High = max(g.scores.High, high)
	g.flags = NewFlags()
	g.flags.CurrentScreen = ScreenMainGame
	g.session = uuid.New()

	g.log.Printf("[%s] restart with %d player(s)", g.sessionTag(), len(joined))
}

// Update runs one frame. It must be called exactly once per frame.
func (g *Game) Update(in InputSnapshot) {
	g.timers.Tick()
	g.env.Update(g.screen, g.audio, g.timers.SongTick)
	g.processInputs(g.controls.Update(in))

	switch g.flags.CurrentScreen {
	case ScreenTitle:
		drawTitle(g.screen, g.timers.FrameCount)
		return
	case ScreenHowToPlay:
		drawHowToPlay(g.screen, g.timers.FrameCount)
		return
	}

	g.drawHUD()

	if g.flags.CurrentScreen == ScreenGameOver {
		drawGameOver(g.screen, g.timers.FrameCount)
		return
	}

	// Stop-the-world death event.
	if g.entities.Killer != nil {
		g.deathTick()
		return
	}

	p1 := g.entities.P1()
	if p1.Lives == 0 {
		g.gameOver()
		return
	}

	g.updateDifficulty()
	killed, exploded := g.entities.Update()
	extraLife := g.updateScore(killed, exploded)

	died := g.entities.Killer != nil
	if died && p1.Lives > 0 {
		p1.Lives--
	}

	g.spawnEnemies()
	g.spawnBombs()
	g.entities.Draw(g.screen)

	g.soundsAndMusic(exploded > 0, extraLife, died)
	g.logStatistics()
}

func (g *Game) processInputs(events []ControlEvent) {
	continueAction := false
	movementEnabled := g.entities.Killer == nil

	for _, ev := range events {
		switch ev.Kind {
		case ControlLeft, ControlDown, ControlUp, ControlRight:
			p := g.entities.Player(ev.Player)
			if !movementEnabled || p == nil {
				continue
			}
			switch ev.Kind {
			case ControlLeft:
				p.Left()
			case ControlDown:
				p.Down()
			case ControlUp:
				p.Up()
			case ControlRight:
				p.Right()
			}

		case ControlBtn1:
			if p := g.entities.Player(ev.Player); p != nil {
				if movementEnabled {
					p.ToggleColor()
				}
			} else {
				g.join(ev.Player)
			}
			continueAction = true

		case ControlBtn2:
			g.log.Printf("[%s] %v changed palette", g.sessionTag(), ev.Player)
			g.cyclePalette()

		case ControlMouseRightClick:
			if movementEnabled {
				g.entities.P1().ToggleColor()
			}

		case ControlMouseLeftClick:
			continueAction = true

		case ControlMouseMiddleClick:
			g.cyclePalette()

		case ControlMouseLeftHold:
			if movementEnabled {
				g.entities.P1().SteerTowards(float64(ev.X), float64(ev.Y))
			}
		}
	}

	if !continueAction {
		return
	}
	switch g.flags.CurrentScreen {
	case ScreenTitle:
		g.flags.CurrentScreen = ScreenHowToPlay
	case ScreenHowToPlay, ScreenGameOver:
		g.Restart()
	}
}

func (g *Game) join(n PlayerN) {
	if _, ok := g.entities.Join(n); !ok {
		return
	}
	p1 := g.entities.P1()
	p1.Lives += g.tuning.InitLives
	g.log.Printf("[%s] %v joined, shared lives %d", g.sessionTag(), n, p1.Lives)
	g.cues.Emit(CuePlayerJoined)
}

func (g *Game) cyclePalette() {
	g.env.SetPalette(g.screen, g.env.PaletteN+1)
	g.cues.Emit(CuePaletteChanged)
}

func (g *Game) gameOver() {
	g.flags.NewHighScore = g.scores.Current > g.scores.High
	g.scores.High = max(g.scores.Current, g.scores.High)
	g.flags.CurrentScreen = ScreenGameOver
	g.env.SongNr = GameOverSong
	g.timers.SongTick = 0
	g.store.SaveHighScore(g.scores.High)

	g.log.Printf("[%s] game over, score %d, high %d, new high %t",
		g.sessionTag(), g.scores.Current, g.scores.High, g.flags.NewHighScore)
}

// deathTick shows only the players and a blinking killer until the countdown
// ends, then wipes the enemies and grants a respite.
func (g *Game) deathTick() {
	g.entities.DrawPlayers(g.screen)
	if (g.timers.DeathCountdown/10)%2 != 0 {
		g.entities.Killer.Draw(g.screen)
	}

	g.timers.DeathCountdown = satSub(g.timers.DeathCountdown, 1)
	if g.timers.DeathCountdown == 0 {
		g.entities.ClearEnemies()
		g.entities.Killer = nil
		g.timers.DeathCountdown = g.tuning.DeathCountdownDuration
		g.timers.Respite = g.tuning.RespiteDuration
	}
}

func (g *Game) updateDifficulty() {
	g.calib.Difficulty = max(g.calib.Difficulty, DifficultyForMultiplier(g.scores.Multiplier))
}

// updateScore reports whether an extra life was granted this frame.
func (g *Game) updateScore(killed, exploded int) bool {
	g.scores.Update(killed, exploded)
	if g.scores.Current <= g.calib.ScoreNextLife {
		return false
	}
	p1 := g.entities.P1()
	if p1.Lives < ^uint32(0) {
		p1.Lives++
	}
	g.calib.ScoreNextLife = satMul32(g.calib.ScoreNextLife, 2)
	return true
}

// spawnEnemies flips the spawn colour and adds at most one enemy per frame,
// both on cadences set by the difficulty level.
func (g *Game) spawnEnemies() {
	lvl := GetLevelConfig(g.calib.Difficulty)
	frame := g.timers.FrameCount

	if frame%lvl.ColorSwitchFrames == 0 {
		g.calib.EnemyColor = g.calib.EnemyColor.Opposite()
	}

	if frame%lvl.EnemySpawnFrames == 0 &&
		len(g.entities.Enemies) < g.tuning.MaxEnemies &&
		g.timers.Respite == 0 {
		pos := enemySpawnPoints[g.calib.RNG.Intn(len(enemySpawnPoints))]
		g.entities.SpawnEnemy(frame, pos, g.calib.EnemyColor)
	}
}

func (g *Game) spawnBombs() {
	frame := g.timers.FrameCount
	if g.tuning.BombFrameFreq == 0 || frame%g.tuning.BombFrameFreq != 0 ||
		len(g.entities.Bombs) >= g.tuning.MaxBombs {
		return
	}
	span := float64(ArenaSize - 2*BombSpawnMargin)
	x := g.calib.RNG.Float64()*span + BombSpawnMargin
	y := g.calib.RNG.Float64()*span + BombSpawnMargin
	g.entities.SpawnBomb(frame, Coord{X: x, Y: y})
}

func (g *Game) soundsAndMusic(bombExploded, extraLife, playerDied bool) {
	if bombExploded {
		g.cues.Emit(CueBombExploded)
	}
	if extraLife {
		g.log.Printf("[%s] extra life at score %d", g.sessionTag(), g.scores.Current)
		g.cues.Emit(CueExtraLife)
	}
	if playerDied {
		g.log.Printf("[%s] player died, %d lives left", g.sessionTag(), g.entities.P1().Lives)
		g.cues.Emit(CuePlayerDied)
	}

	// Game songs only change on a phrase boundary so they blend into one.
	if ((g.timers.FrameCount+1)/MusicSpeedCtrl)%VoiceNotes == 0 {
		g.env.SongNr = GetLevelConfig(g.calib.Difficulty).Song
	}
}

func (g *Game) logStatistics() {
	if g.timers.FrameCount%StatsEveryFrames == 0 {
		g.log.Printf("[%s] enemies: %d/%d, level %d", g.sessionTag(),
			len(g.entities.Enemies), g.tuning.MaxEnemies, g.calib.Difficulty+1)
	}
}

func (g *Game) sessionTag() string {
	return g.session.String()[:8]
}

// Cues is the bus gameplay events are published on.
// SeedInput tells the game what the devices looked like before the first
// frame. Hosts call it once before the loop starts.
func (g *Game) SeedInput(in InputSnapshot) { g.controls.Seed(in) }

func (g *Game) Cues() *CueBus { return g.cues }

func (g *Game) Screen() ScreenName          { return g.flags.CurrentScreen }
func (g *Game) NewHighScore() bool          { return g.flags.NewHighScore }
func (g *Game) Scores() Scores              { return g.scores }
func (g *Game) Difficulty() int             { return g.calib.Difficulty }
func (g *Game) PaletteIndex() int           { return g.env.PaletteN }
func (g *Game) SessionID() uuid.UUID        { return g.session }
func (g *Game) Timers() Timers              { return g.timers }
func (g *Game) Entities() *EntityManager    { return g.entities }
func (g *Game) Environment() Environment    { return g.env }
func (g *Game) Calibrations() *Calibrations { return &g.calib }
