package game

// Arena dimensions (in arena pixels). The arena is square.
const (
	ArenaSize = 160
	// Extra space around the arena where pointer events still register.
	MouseAreaPadding = 20
)

// Player slots.
const MaxPlayers = 4

// Entity defaults.
const (
	PlayerSize  = 7.0
	PlayerSpeed = 1.40

	EnemySize        = 5.0
	EnemySpeed       = 0.7
	EnemyLifeSpan    = 10 * 60
	EnemyGraceFrames = 12
	// Max per-axis heading change per frame while pursuing.
	EnemySteeringLimit = 0.09

	BombSize       = 9.0
	BombMinSize    = 2.0
	BombGrowthRate = 3.5
	BombLifeSpan   = 60 / 2
	// Bombs spawn at least this far from the arena edges.
	BombSpawnMargin = 10
)

// Extra reach per interaction. Positive makes a collision easier to trigger,
// negative makes it harder.
const (
	BombTriggerReach = 2.0
	BombConvertReach = 2.0
	AbsorbReach      = 2.0
	FatalReach       = -2.0
)

// Progression and pacing.
const (
	RNGSeed          = 555
	DifficultyLevels = 10
	MusicSpeedCtrl   = 5
	MaxScore         = 999_999_999
	StarCount        = 200
	StatsEveryFrames = 60
)

// Tuning holds the gameplay calibration a Game runs with. Everything here is
// frame-counted.
type Tuning struct {
	MaxEnemies             int
	MaxBombs               int
	InitLives              uint32
	InitDifficulty         int
	BombFrameFreq          uint64
	NextLifeScore          uint32
	RespiteDuration        uint64
	DeathCountdownDuration uint64
	EnemyLifeSpan          uint32
	EnemyGraceFrames       uint32
}

// DefaultTuning returns the stock arcade calibration.
func DefaultTuning() Tuning {
	return Tuning{
		MaxEnemies:             50,
		MaxBombs:               16,
		InitLives:              3,
		InitDifficulty:         0,
		BombFrameFreq:          300,
		NextLifeScore:          100_000,
		RespiteDuration:        120,
		DeathCountdownDuration: 90,
		EnemyLifeSpan:          EnemyLifeSpan,
		EnemyGraceFrames:       EnemyGraceFrames,
	}
}
