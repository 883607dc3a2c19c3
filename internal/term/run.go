package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"duality/internal/game"
	"duality/internal/render"
)

const (
	frameTime = time.Second / 60
	// Frames the border stays lit after a death.
	deathFlash = 20
)

type Options struct {
	Hold   time.Duration
	Logger *log.Logger
}

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run drives g in the terminal at 60 Hz until Escape or Ctrl-C.
func Run(g *game.Game, canvas *render.Canvas, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return loop(screen, g, canvas, opts)
}

// loop owns screen from here on and finalizes it on return.
func loop(screen tcell.Screen, g *game.Game, canvas *render.Canvas, opts Options) error {
	defer screen.Fini()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "", 0)
	}
	screen.EnableMouse()
	screen.HideCursor()

	layout := Fit(screen.Size())
	logger.Printf("terminal layout %+v", layout)

	flash := 0
	g.Cues().Subscribe(game.CuePlayerDied, func(game.Cue) { flash = deathFlash })

	in := NewInput(opts.Hold)
	g.SeedInput(in.Sample(time.Now()))
	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				layout = Fit(screen.Size())
				screen.Sync()
				continue
			}
			if in.Handle(ev, layout) {
				return nil
			}

		case now := <-ticker.C:
			g.Update(in.Sample(now))
			border := canvas.Palette()[0].Mul(160)
			if flash > 0 {
				border = canvas.Palette()[2]
				flash--
			}
			Draw(screen, layout, canvas.Image(), toColor(border))
			screen.Show()
		}
	}
}
