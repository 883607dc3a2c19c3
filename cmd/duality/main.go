// Command duality runs the Duality arcade game in a window or a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"duality/internal/audio"
	"duality/internal/config"
	"duality/internal/game"
	"duality/internal/platform"
	"duality/internal/render"
	"duality/internal/store"
	"duality/internal/term"
)

func main() {
	inTerminal := false
	defer func() {
		if r := recover(); r != nil {
			if inTerminal {
				term.EmergencyReset(os.Stdout)
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDUALITY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "duality: %v\n", err)
		os.Exit(2)
	}
	inTerminal = cfg.Frontend == config.FrontendTerm

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "duality: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if f := setupLogging(cfg.LogDir, cfg.Debug); f != nil {
		defer f.Close()
	}
	logger := log.Default()
	logger.Printf("starting with %+v", cfg)

	canvas := render.NewCanvas()
	opts := game.Options{
		Screen:     canvas,
		Store:      store.NewFileStore(cfg.HighScorePath, logger),
		Logger:     logger,
		Palette:    cfg.Palette,
		SeedOffset: cfg.Seed,
	}
	if !cfg.Mute {
		eng, err := audio.NewEngine(audio.Options{
			SFXVolume:   cfg.SFXVolume,
			MusicVolume: cfg.MusicVolume,
			Logger:      logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			defer eng.Close()
			opts.Audio = eng
		}
	}

	g := game.New(opts)

	switch cfg.Frontend {
	case config.FrontendTerm:
		return term.Run(g, canvas, term.Options{Logger: logger})
	default:
		return platform.Run(g, canvas, platform.Options{Scale: cfg.Scale, Logger: logger})
	}
}
