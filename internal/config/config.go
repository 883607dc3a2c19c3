// Package config resolves runtime settings from defaults, an optional .env
// file, DUALITY_* environment variables and command-line flags, in that
// order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	FrontendGL   = "gl"
	FrontendTerm = "term"

	maxScale = 16
)

type Config struct {
	Frontend      string
	Debug         bool
	LogDir        string
	HighScorePath string
	Scale         int
	Mute          bool
	MusicVolume   float64
	SFXVolume     float64
	Palette       int
	Seed          uint64
}

func Default() Config {
	return Config{
		Frontend:      FrontendGL,
		LogDir:        "logs",
		HighScorePath: defaultHighScorePath(),
		Scale:         4,
		MusicVolume:   0.5,
		SFXVolume:     0.8,
	}
}

func defaultHighScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscore.bin"
	}
	return filepath.Join(dir, "duality", "highscore.bin")
}

// Load reads ./.env when present and then parses args (without the program
// name). Variables already set in the environment win over the .env file.
func Load(args []string) (Config, error) {
	return load(args, ".env")
}

func load(args []string, envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := fromEnv(Default())
	if err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("duality", flag.ContinueOnError)
	flags.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend to run: gl or term")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log to the log directory")
	flags.StringVar(&cfg.HighScorePath, "highscore", cfg.HighScorePath, "high score file")
	flags.IntVar(&cfg.Scale, "scale", cfg.Scale, "initial window scale")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound and music")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fromEnv(cfg Config) (Config, error) {
	cfg.Frontend = getEnv("DUALITY_FRONTEND", cfg.Frontend)
	cfg.LogDir = getEnv("DUALITY_LOG_DIR", cfg.LogDir)
	cfg.HighScorePath = getEnv("DUALITY_HIGHSCORE", cfg.HighScorePath)

	var err error
	if cfg.Debug, err = envBool("DUALITY_DEBUG", cfg.Debug); err != nil {
		return cfg, err
	}
	if cfg.Mute, err = envBool("DUALITY_MUTE", cfg.Mute); err != nil {
		return cfg, err
	}
	if cfg.Scale, err = envInt("DUALITY_SCALE", cfg.Scale); err != nil {
		return cfg, err
	}
	if cfg.Palette, err = envInt("DUALITY_PALETTE", cfg.Palette); err != nil {
		return cfg, err
	}
	if cfg.MusicVolume, err = envFloat("DUALITY_MUSIC_VOLUME", cfg.MusicVolume); err != nil {
		return cfg, err
	}
	if cfg.SFXVolume, err = envFloat("DUALITY_SFX_VOLUME", cfg.SFXVolume); err != nil {
		return cfg, err
	}
	if s := os.Getenv("DUALITY_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("DUALITY_SEED: %w", err)
		}
		cfg.Seed = v
	}
	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendGL, FrontendTerm:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Frontend, FrontendGL, FrontendTerm)
	}
	if c.Scale < 1 || c.Scale > maxScale {
		return fmt.Errorf("scale %d out of range 1..%d", c.Scale, maxScale)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("music volume %v out of range 0..1", c.MusicVolume)
	}
	if c.SFXVolume < 0 || c.SFXVolume > 1 {
		return fmt.Errorf("sfx volume %v out of range 0..1", c.SFXVolume)
	}
	if c.HighScorePath == "" {
		return errors.New("empty high score path")
	}
	return nil
}
