package render

import (
	"duality/internal/game"
)

// Viewport is where the arena lands inside a framebuffer, in framebuffer
// pixels with the origin at the bottom-left as OpenGL expects.
type Viewport struct {
	X, Y, W, H int
}

// Fit scales the arena by the largest whole factor that fits fbW x fbH and
// centres it. When the framebuffer is smaller than the arena it falls back
// to a fractional fit so something is still visible.
func Fit(fbW, fbH int) Viewport {
	side := min(fbW, fbH)
	if side <= 0 {
		return Viewport{}
	}
	scale := side / game.ArenaSize
	size := scale * game.ArenaSize
	if scale == 0 {
		size = side
	}
	return Viewport{
		X: (fbW - size) / 2,
		Y: (fbH - size) / 2,
		W: size,
		H: size,
	}
}

// ToArena maps a window position (origin top-left, window units) to arena
// pixels. winW/winH and fbW/fbH differ on high-DPI displays.
func (v Viewport) ToArena(cx, cy float64, winW, winH, fbW, fbH int) (int, int) {
	if winW <= 0 || winH <= 0 || v.W <= 0 || v.H <= 0 {
		return 0, 0
	}
	fx := cx * float64(fbW) / float64(winW)
	fy := cy * float64(fbH) / float64(winH)
	// Viewport Y counts from the bottom.
	top := float64(fbH - v.Y - v.H)
	ax := (fx - float64(v.X)) * game.ArenaSize / float64(v.W)
	ay := (fy - top) * game.ArenaSize / float64(v.H)
	return int(ax), int(ay)
}

// Shake jitters the viewport for a short while after a death.
type Shake struct {
	X, Y      float64 // current offset in framebuffer pixels
	Timer     float64 // remaining seconds
	Intensity float64 // max offset magnitude
}

// Add triggers a shake; overlapping shakes keep the stronger settings.
func (s *Shake) Add(intensity, duration float64) {
	s.Intensity = max(s.Intensity, intensity)
	s.Timer = max(s.Timer, duration)
}

// Update decays the shake and picks a new offset.
func (s *Shake) Update(dt float64, seed uint64) {
	if s.Timer <= 0 {
		*s = Shake{}
		return
	}
	s.Timer = max(s.Timer-dt, 0)
	t := s.Timer
	rr := game.NewRand(seed ^ uint64(t*10000))
	mag := s.Intensity * (t / (t + 0.08))
	s.X = (rr.Float64()*2 - 1) * mag
	s.Y = (rr.Float64()*2 - 1) * mag
}

// Apply offsets v by the current shake.
func (s *Shake) Apply(v Viewport) Viewport {
	v.X += int(s.X)
	v.Y += int(s.Y)
	return v
}
