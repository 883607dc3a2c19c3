package game

import (
	"testing"
)

func TestGameScreenFlow(t *testing.T) {
	g, screen, _, _ := newTestGame(Tuning{})
	if g.Screen() != ScreenTitle {
		t.Fatalf("screen = %v", g.Screen())
	}

	g.Update(InputSnapshot{})
	if g.Screen() != ScreenTitle {
		t.Fatal("left title without input")
	}
	if screen.hasText("H:") {
		t.Fatal("HUD drawn on the title screen")
	}

	g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{Button1}})
	if g.Screen() != ScreenHowToPlay {
		t.Fatalf("screen = %v, want how-to-play", g.Screen())
	}

	// Holding the button is not a second press.
	g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{Button1}})
	if g.Screen() != ScreenHowToPlay {
		t.Fatal("held button advanced the screen")
	}

	g.Update(InputSnapshot{})
	g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{Button1}})
	if g.Screen() != ScreenMainGame {
		t.Fatalf("screen = %v, want main game", g.Screen())
	}
	if !screen.hasText("H:") {
		t.Fatal("HUD missing in the main game")
	}
}

func TestGameRestartResetsRun(t *testing.T) {
	g, _, _, store := newTestGame(Tuning{})
	store.Score = 1234
	g.scores.High = 1234
	startPlaying(g)

	g.scores.Current = 5000
	g.scores.Multiplier = 77
	g.entities.SpawnEnemy(1, Coord{}, ColorA)
	g.entities.SpawnBomb(1, Coord{X: 30, Y: 30})
	g.entities.P1().Lives = 1

	g.Restart()
	s := g.Scores()
	if s.Current != 0 || s.Multiplier != 1 {
		t.Fatalf("scores after restart = %+v", s)
	}
	if s.High != 1234 {
		t.Fatalf("high = %d, want 1234", s.High)
	}
	if len(g.entities.Enemies) != 0 || len(g.entities.Bombs) != 0 {
		t.Fatal("entities survived restart")
	}
	if got := g.entities.P1().Lives; got != DefaultTuning().InitLives {
		t.Fatalf("lives = %d", got)
	}
	if g.Screen() != ScreenMainGame {
		t.Fatalf("screen = %v", g.Screen())
	}
}

func TestGameRestartKeepsHighScoreNotYetSaved(t *testing.T) {
	g, _, _, store := newTestGame(Tuning{})
	store.Score = 10
	g.scores.High = 900
	g.Restart()
	if g.Scores().High != 900 {
		t.Fatalf("high = %d, want 900", g.Scores().High)
	}
}

func TestGameRestartKeepsJoinedPlayers(t *testing.T) {
	g, _, audio, _ := newTestGame(Tuning{})
	g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{0, Button1}})
	if g.entities.Player(P2) == nil {
		t.Fatal("P2 did not join")
	}
	if audio.count(CuePlayerJoined) != 1 {
		t.Fatalf("join cue played %d times", audio.count(CuePlayerJoined))
	}
	if got := g.entities.P1().Lives; got != 2*DefaultTuning().InitLives {
		t.Fatalf("shared lives = %d", got)
	}

	prev := g.SessionID()
	g.Restart()
	if g.entities.Player(P2) == nil {
		t.Fatal("P2 dropped on restart")
	}
	if got := g.entities.P1().Lives; got != 2*DefaultTuning().InitLives {
		t.Fatalf("lives after restart = %d", got)
	}
	if g.SessionID() == prev {
		t.Fatal("restart kept the session id")
	}
}

func TestGameRestartKeepsPalette(t *testing.T) {
	g, screen, audio, _ := newTestGame(Tuning{})
	g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{Button2}})
	if g.PaletteIndex() != 1 || screen.palette != 1 {
		t.Fatalf("palette = %d/%d", g.PaletteIndex(), screen.palette)
	}
	if audio.count(CuePaletteChanged) != 1 {
		t.Fatal("palette cue missing")
	}
	g.Restart()
	if g.PaletteIndex() != 1 {
		t.Fatalf("palette after restart = %d", g.PaletteIndex())
	}
}

func TestGamePaletteWraps(t *testing.T) {
	g, _, _, _ := newTestGame(Tuning{})
	for i := range PaletteCount {
		g.Update(InputSnapshot{Mouse: MouseMiddle, MouseX: 80, MouseY: 80})
		g.Update(InputSnapshot{MouseX: 80, MouseY: 80})
		if want := (i + 1) % PaletteCount; g.PaletteIndex() != want {
			t.Fatalf("press %d: palette = %d, want %d", i, g.PaletteIndex(), want)
		}
	}
}

func TestGameScoreClamp(t *testing.T) {
	s := Scores{Current: MaxScore - 5, Multiplier: 1000}
	for range 50 {
		s.Update(3, 2)
		if s.Current > MaxScore {
			t.Fatalf("score %d above the cap", s.Current)
		}
	}
	if s.Current != MaxScore {
		t.Fatalf("score = %d, want the cap", s.Current)
	}
}

func TestScoresUpdate(t *testing.T) {
	s := Scores{Multiplier: 1}
	s.Update(2, 1)
	// Bomb first: +10, mul 11; then kills: +11, +12.
	if s.Current != 33 || s.Multiplier != 13 {
		t.Fatalf("scores = %+v", s)
	}
}

func TestDifficultyForMultiplier(t *testing.T) {
	tests := []struct {
		mul  uint32
		want int
	}{
		{1, 0}, {11, 0}, {12, 1}, {29, 1}, {30, 2}, {449, 6}, {450, 7},
		{1999, 8}, {2000, 9}, {1 << 30, 9},
	}
	for _, tt := range tests {
		if got := DifficultyForMultiplier(tt.mul); got != tt.want {
			t.Errorf("DifficultyForMultiplier(%d) = %d, want %d", tt.mul, got, tt.want)
		}
	}
}

func TestLevelConfigTables(t *testing.T) {
	prev := GetLevelConfig(0)
	for lvl := 1; lvl < DifficultyLevels; lvl++ {
		c := GetLevelConfig(lvl)
		if c.EnemySpawnFrames > prev.EnemySpawnFrames || c.ColorSwitchFrames > prev.ColorSwitchFrames {
			t.Errorf("level %d is easier than level %d", lvl, lvl-1)
		}
		prev = c
	}
	if GetLevelConfig(-3) != GetLevelConfig(0) || GetLevelConfig(42) != GetLevelConfig(DifficultyLevels-1) {
		t.Error("out of range levels are not clamped")
	}
	if GetLevelConfig(1).Song != GameSongStart || GetLevelConfig(9).Song != GameSongStart+GameSongCount-1 {
		t.Error("song selection wrong")
	}
}

func TestGameDifficultyMonotonic(t *testing.T) {
	g, _, _, _ := newTestGame(Tuning{})
	startPlaying(g)

	g.scores.Multiplier = 500
	g.Update(InputSnapshot{})
	if g.Difficulty() != 7 {
		t.Fatalf("difficulty = %d, want 7", g.Difficulty())
	}

	g.scores.Multiplier = 1
	for range 30 {
		g.Update(InputSnapshot{})
		if g.Difficulty() < 7 {
			t.Fatalf("difficulty dropped to %d", g.Difficulty())
		}
	}
}

func TestGameExtraLife(t *testing.T) {
	g, _, audio, _ := newTestGame(Tuning{})
	startPlaying(g)
	lives := g.entities.P1().Lives
	g.scores.Current = DefaultTuning().NextLifeScore + 1

	g.Update(InputSnapshot{})
	if got := g.entities.P1().Lives; got != lives+1 {
		t.Fatalf("lives = %d, want %d", got, lives+1)
	}
	if g.calib.ScoreNextLife != 2*DefaultTuning().NextLifeScore {
		t.Fatalf("next life at %d", g.calib.ScoreNextLife)
	}
	if audio.count(CueExtraLife) != 1 {
		t.Fatal("extra life cue should fire once in the crossing frame")
	}

	g.Update(InputSnapshot{})
	if audio.count(CueExtraLife) != 1 {
		t.Fatal("extra life cue fired again")
	}
}

func TestGameDeathFreezeAndRespite(t *testing.T) {
	tun := DefaultTuning()
	g, _, audio, _ := newTestGame(tun)
	startPlaying(g)

	p1 := g.entities.P1()
	p1.Color = ColorA
	lives := p1.Lives
	e := newTestEnemy(p1.Position.Add(Coord{X: 1, Y: 1}), ColorB)
	e.Speed = 0
	g.entities.Enemies[999] = e
	g.entities.SpawnEnemy(1000, Coord{}, ColorA)

	g.Update(InputSnapshot{})
	if g.entities.Killer == nil {
		t.Fatal("no death recorded")
	}
	if p1.Lives != lives-1 {
		t.Fatalf("lives = %d, want %d", p1.Lives, lives-1)
	}
	if audio.count(CuePlayerDied) != 1 {
		t.Fatal("death cue missing")
	}

	// Nothing moves or scores during the freeze.
	score := g.Scores()
	frozen := *g.entities.Enemies[1000]
	for range tun.DeathCountdownDuration - 1 {
		g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{ButtonLeft}})
		if g.entities.Killer == nil {
			t.Fatal("freeze ended early")
		}
	}
	if g.Scores() != score || *g.entities.Enemies[1000] != frozen {
		t.Fatal("simulation advanced during the freeze")
	}

	g.Update(InputSnapshot{})
	if g.entities.Killer != nil {
		t.Fatal("freeze did not end")
	}
	if len(g.entities.Enemies) != 0 {
		t.Fatal("enemies survived the death")
	}
	if g.Timers().Respite != tun.RespiteDuration {
		t.Fatalf("respite = %d", g.Timers().Respite)
	}

	// No spawns while the respite drains.
	for range tun.RespiteDuration - 1 {
		g.Update(InputSnapshot{})
		if len(g.entities.Enemies) != 0 {
			t.Fatal("enemy spawned during respite")
		}
	}
}

func TestGameOverSavesHighScore(t *testing.T) {
	g, screen, _, store := newTestGame(Tuning{})
	startPlaying(g)
	g.scores.Current = 4321
	g.entities.P1().Lives = 0

	g.Update(InputSnapshot{})
	if g.Screen() != ScreenGameOver {
		t.Fatalf("screen = %v", g.Screen())
	}
	if !g.NewHighScore() || g.Scores().High != 4321 {
		t.Fatalf("high = %d new=%t", g.Scores().High, g.NewHighScore())
	}
	if store.saves != 1 || store.Score != 4321 {
		t.Fatalf("store saves=%d score=%d", store.saves, store.Score)
	}
	if g.Environment().SongNr != GameOverSong || g.Timers().SongTick != 0 {
		t.Fatal("game over song not started from the top")
	}

	g.Update(InputSnapshot{})
	if !screen.hasText("GAME OVER") {
		t.Fatal("game over screen not drawn")
	}
	if store.saves != 1 {
		t.Fatal("high score saved more than once")
	}

	g.Update(InputSnapshot{Mouse: MouseLeft, MouseX: 10, MouseY: 10})
	if g.Screen() != ScreenMainGame {
		t.Fatal("confirm did not restart from game over")
	}
	if g.Scores().High != 4321 {
		t.Fatal("high score lost on restart")
	}
}

func TestGameOverWithoutNewHigh(t *testing.T) {
	g, _, _, store := newTestGame(Tuning{})
	store.Score = 100
	g.scores.High = 100
	startPlaying(g)
	g.scores.Current = 50
	g.entities.P1().Lives = 0
	g.Update(InputSnapshot{})
	if g.NewHighScore() {
		t.Fatal("flagged a new high score below the record")
	}
	if store.Score != 100 {
		t.Fatalf("stored %d", store.Score)
	}
}

func TestGameMovementDisabledDuringFreeze(t *testing.T) {
	g, _, _, _ := newTestGame(Tuning{})
	startPlaying(g)
	g.entities.Killer = NewEnemy(Coord{}, ColorA)
	color := g.entities.P1().Color

	g.Update(InputSnapshot{Mouse: MouseRight, MouseX: 5, MouseY: 5})
	if g.entities.P1().Color != color {
		t.Fatal("colour toggled during the freeze")
	}
}

func TestGameSpawnsEnemiesOnCadence(t *testing.T) {
	tun := DefaultTuning()
	tun.RespiteDuration = 0
	g, _, _, _ := newTestGame(tun)
	startPlaying(g)

	spawn := GetLevelConfig(0).EnemySpawnFrames
	for !(g.Timers().FrameCount+1 >= spawn && (g.Timers().FrameCount+1)%spawn == 0) {
		g.Update(InputSnapshot{})
	}
	if len(g.entities.Enemies) != 0 {
		t.Fatalf("enemies before the first cadence frame: %d", len(g.entities.Enemies))
	}
	g.Update(InputSnapshot{})
	if len(g.entities.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(g.entities.Enemies))
	}
	id := g.Timers().FrameCount
	e, ok := g.entities.Enemies[id]
	if !ok {
		t.Fatal("enemy not keyed by frame")
	}
	found := false
	for _, p := range enemySpawnPoints {
		if e.Position.DistanceTo(p) < 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("enemy spawned off the spawn points: %v", e.Position)
	}
}

func TestGameSpawnsBombs(t *testing.T) {
	tuning := DefaultTuning()
	// No enemies, so no death freeze can swallow the spawn frame.
	tuning.MaxEnemies = 0
	g, _, _, _ := newTestGame(tuning)
	startPlaying(g)
	for g.Timers().FrameCount < tuning.BombFrameFreq {
		g.Update(InputSnapshot{})
	}
	if g.entities.Killer != nil {
		t.Fatal("death freeze running on the bomb frame")
	}
	if len(g.entities.Bombs) == 0 {
		t.Fatal("no bomb spawned")
	}
	for _, b := range g.entities.Bombs {
		if b.Position.X < BombSpawnMargin || b.Position.X > ArenaSize-BombSpawnMargin {
			t.Fatalf("bomb outside the margin: %v", b.Position)
		}
	}
}

func TestGameDeterministicWithSameSeed(t *testing.T) {
	run := func() []Coord {
		g, _, _, _ := newTestGame(Tuning{})
		startPlaying(g)
		for range 600 {
			g.Update(InputSnapshot{Gamepads: [MaxPlayers]Buttons{ButtonUp}})
		}
		var out []Coord
		for _, id := range sortedIDs(g.entities.Enemies) {
			out = append(out, g.entities.Enemies[id].Position)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ: %d vs %d enemies", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("enemy %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestTimersTick(t *testing.T) {
	tm := NewTimers(DefaultTuning())
	tm.Tick()
	tm.Tick()
	if tm.FrameCount != 2 || tm.SongTick != 2 || tm.Respite != DefaultTuning().RespiteDuration-2 {
		t.Fatalf("timers = %+v", tm)
	}
	tm.Respite = 0
	tm.Tick()
	if tm.Respite != 0 {
		t.Fatal("respite underflowed")
	}
}

func TestGameMusicFollowsScreens(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MaxEnemies = 0
	g, _, audio, _ := newTestGame(tuning)

	g.Update(InputSnapshot{})
	if got := audio.songs[len(audio.songs)-1]; got != IntroSong {
		t.Fatalf("title song = %v", got)
	}

	// A restart lands on a phrase start, so the game song begins at once.
	startPlaying(g)
	audio.songs = audio.songs[:0]
	g.Update(InputSnapshot{})
	if audio.songs[0] != GameSongStart {
		t.Fatalf("song after restart = %v, want %v", audio.songs[0], GameSongStart)
	}

	g.entities.P1().Lives = 0
	g.Update(InputSnapshot{})
	g.Update(InputSnapshot{})
	if got := audio.songs[len(audio.songs)-1]; got != GameOverSong {
		t.Errorf("game over song = %v", got)
	}
}

func TestGameSongChangesOnPhraseBoundary(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MaxEnemies = 0
	g, _, audio, _ := newTestGame(tuning)
	startPlaying(g)
	// Frames 0..3 still belong to the phrase boundary after a restart.
	for g.Timers().FrameCount < MusicSpeedCtrl {
		g.Update(InputSnapshot{})
	}

	g.calib.Difficulty = 2
	want := GetLevelConfig(2).Song
	if want == GameSongStart {
		t.Fatal("level 2 must use a different song")
	}

	// The last frame of the phrase is the one where (frame+1)/speed wraps.
	phraseEnd := uint64(MusicSpeedCtrl*VoiceNotes - 1)
	for g.Timers().FrameCount < phraseEnd {
		g.Update(InputSnapshot{})
		if got := audio.songs[len(audio.songs)-1]; got != GameSongStart {
			t.Fatalf("song changed mid-phrase at frame %d: %v", g.Timers().FrameCount, got)
		}
	}
	g.Update(InputSnapshot{})
	if got := audio.songs[len(audio.songs)-1]; got != want {
		t.Fatalf("song on the next phrase = %v, want %v", got, want)
	}
}

func TestGameSeededInputIgnoresHeldButton(t *testing.T) {
	g, _, _, _ := newTestGame(Tuning{})
	held := InputSnapshot{Gamepads: [MaxPlayers]Buttons{Button1}}
	g.SeedInput(held)

	g.Update(held)
	if g.Screen() != ScreenTitle {
		t.Fatalf("button held at startup advanced to %v", g.Screen())
	}

	g.Update(InputSnapshot{})
	g.Update(held)
	if g.Screen() != ScreenHowToPlay {
		t.Fatalf("fresh press ignored, screen = %v", g.Screen())
	}
}
