package game

// Scores grow with every enemy absorbed and every bomb set off. Each event is
// worth more than the previous one: the multiplier climbs with them.
type Scores struct {
	Current    uint32
	Multiplier uint32
	High       uint32
}

// NewScores starts a fresh run, reading the stored high score once.
func NewScores(store HighScoreStore) Scores {
	return Scores{
		Multiplier: 1,
		High:       store.LoadHighScore(),
	}
}

// Update folds one frame's kills and explosions into the score. Bombs are
// counted first and are worth ten times as much. Arithmetic wraps like the
// arcade counter does; the result is then clamped to what the HUD can show.
func (s *Scores) Update(enemiesKilled, bombsExploded int) {
	for range bombsExploded {
		s.Current += s.Multiplier * 10
		s.Multiplier += 10
	}
	for range enemiesKilled {
		s.Current += s.Multiplier
		s.Multiplier++
	}
	s.Current = min(s.Current, MaxScore)
}

// Calibrations are the run-scoped gameplay knobs: current difficulty, the
// next extra-life threshold, the RNG stream and the colour of the next
// spawned enemy.
type Calibrations struct {
	Difficulty    int
	ScoreNextLife uint32
	RNG           *Rand
	EnemyColor    Color
}

// NewCalibrations seeds the RNG with RNGSeed plus extra, so every restart
// gets a different universe.
func NewCalibrations(t Tuning, extra uint64) Calibrations {
	return Calibrations{
		Difficulty:    clamp(t.InitDifficulty, 0, DifficultyLevels-1),
		ScoreNextLife: t.NextLifeScore,
		RNG:           NewRand(RNGSeed + extra),
		EnemyColor:    ColorB,
	}
}
