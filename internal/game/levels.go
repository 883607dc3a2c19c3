package game

// Song identifies a music track. The host audio engine owns the notes.
type Song int

const (
	IntroSong     Song = 0
	GameSongStart Song = 1
	GameSongCount      = 7
	GameOverSong  Song = GameSongStart + GameSongCount
)

// VoiceNotes is the number of steps in one music phrase. Game songs only
// switch on a phrase boundary so the change is heard as one continuous song.
const VoiceNotes = 64

// Multiplier needed to leave each difficulty level.
var difficultyThresholds = [DifficultyLevels - 1]uint32{12, 30, 80, 120, 240, 320, 450, 1000, 2000}

// Frames between enemy colour switches, per level.
var colorSwitchFrames = [DifficultyLevels]uint64{240, 180, 160, 120, 100, 80, 60, 60, 60, 60}

// Frames between enemy spawns, per level.
var enemySpawnFrames = [DifficultyLevels]uint64{120, 60, 30, 25, 15, 10, 8, 6, 4, 2}

type LevelConfig struct {
	EnemySpawnFrames  uint64
	ColorSwitchFrames uint64
	Song              Song
}

// GetLevelConfig returns the pacing for a difficulty level. Out of range
// levels are clamped to the table.
func GetLevelConfig(level int) LevelConfig {
	level = clamp(level, 0, DifficultyLevels-1)

	var song Song
	switch {
	case level <= 1:
		song = GameSongStart
	case level >= 7:
		song = GameSongStart + GameSongCount - 1
	default:
		song = GameSongStart + Song(level-1)
	}

	return LevelConfig{
		EnemySpawnFrames:  enemySpawnFrames[level],
		ColorSwitchFrames: colorSwitchFrames[level],
		Song:              song,
	}
}

// DifficultyForMultiplier returns the first level whose threshold is above
// mul, or the last level once every threshold has been reached.
func DifficultyForMultiplier(mul uint32) int {
	for i, threshold := range difficultyThresholds {
		if mul < threshold {
			return i
		}
	}
	return DifficultyLevels - 1
}
