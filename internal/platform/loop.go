package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"duality/internal/game"
	"duality/internal/render"
)

const (
	frameTime = 1.0 / 60
	// Upper bound on simulation steps per rendered frame after a stall.
	maxCatchUp = 4

	deathShake    = 2.0 // arena pixels
	deathShakeDur = 0.35
)

type Options struct {
	Scale  int
	Logger *log.Logger
}

// Run opens the window and drives g at 60 Hz until the window is closed or
// Escape is pressed. g must draw into canvas.
func Run(g *game.Game, canvas *render.Canvas, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "", 0)
	}

	window, err := initWindow(opts.Scale)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	pres, err := NewPresenter()
	if err != nil {
		return fmt.Errorf("presenter: %w", err)
	}
	defer pres.Destroy()
	logger.Printf("gl %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var shake render.Shake
	view := render.Fit(window.GetFramebufferSize())
	g.Cues().Subscribe(game.CuePlayerDied, func(game.Cue) {
		shake.Add(deathShake*float64(view.W)/game.ArenaSize, deathShakeDur)
	})

	input := NewInput(window)
	glfw.PollEvents()
	g.SeedInput(input.Sample(view))
	var acc float64
	var frames uint64
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		view = render.Fit(fbW, fbH)

		acc += dt
		steps := 0
		for acc >= frameTime && steps < maxCatchUp {
			g.Update(input.Sample(view))
			acc -= frameTime
			steps++
			frames++
		}
		if steps == maxCatchUp {
			acc = 0
		}

		shake.Update(dt, frames)
		pres.Upload(canvas.Image())
		pres.Draw(fbW, fbH, shake.Apply(view), canvas.Palette()[0].Mul(160))
		window.SwapBuffers()
	}
	return nil
}
