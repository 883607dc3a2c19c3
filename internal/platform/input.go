package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"duality/internal/game"
	"duality/internal/render"
)

// Stick deflection needed before it counts as a direction.
const stickDeadzone = 0.5

type keyBinding struct {
	key    glfw.Key
	button game.Buttons
}

// Keyboard gamepads: arrows with X/Z for the first player, ESDF with A/Q and
// Tab/LeftShift for the second. Players 3 and 4 need real gamepads.
var keyboardPads = [game.MaxPlayers][]keyBinding{
	game.P1: {
		{glfw.KeyLeft, game.ButtonLeft},
		{glfw.KeyRight, game.ButtonRight},
		{glfw.KeyUp, game.ButtonUp},
		{glfw.KeyDown, game.ButtonDown},
		{glfw.KeyX, game.Button1},
		{glfw.KeySpace, game.Button1},
		{glfw.KeyZ, game.Button2},
		{glfw.KeyC, game.Button2},
	},
	game.P2: {
		{glfw.KeyS, game.ButtonLeft},
		{glfw.KeyF, game.ButtonRight},
		{glfw.KeyE, game.ButtonUp},
		{glfw.KeyD, game.ButtonDown},
		{glfw.KeyA, game.Button1},
		{glfw.KeyQ, game.Button1},
		{glfw.KeyTab, game.Button2},
		{glfw.KeyLeftShift, game.Button2},
	},
}

func keyboardButtons(pressed func(glfw.Key) bool, keys []keyBinding) game.Buttons {
	var b game.Buttons
	for _, k := range keys {
		if pressed(k.key) {
			b |= k.button
		}
	}
	return b
}

func gamepadButtons(st *glfw.GamepadState) game.Buttons {
	if st == nil {
		return 0
	}
	down := func(btn glfw.GamepadButton) bool { return st.Buttons[btn] == glfw.Press }

	var b game.Buttons
	x, y := st.Axes[glfw.AxisLeftX], st.Axes[glfw.AxisLeftY]
	if down(glfw.ButtonDpadLeft) || x < -stickDeadzone {
		b |= game.ButtonLeft
	}
	if down(glfw.ButtonDpadRight) || x > stickDeadzone {
		b |= game.ButtonRight
	}
	if down(glfw.ButtonDpadUp) || y < -stickDeadzone {
		b |= game.ButtonUp
	}
	if down(glfw.ButtonDpadDown) || y > stickDeadzone {
		b |= game.ButtonDown
	}
	if down(glfw.ButtonA) || down(glfw.ButtonStart) {
		b |= game.Button1
	}
	if down(glfw.ButtonB) || down(glfw.ButtonBack) {
		b |= game.Button2
	}
	return b
}

var mouseBindings = []struct {
	btn  glfw.MouseButton
	mask game.MouseButtons
}{
	{glfw.MouseButtonLeft, game.MouseLeft},
	{glfw.MouseButtonRight, game.MouseRight},
	{glfw.MouseButtonMiddle, game.MouseMiddle},
}

// Input samples keyboard, joysticks and mouse once per frame.
type Input struct {
	window *glfw.Window
}

func NewInput(window *glfw.Window) *Input {
	return &Input{window: window}
}

// Sample reads every device. v is the viewport the arena was last drawn
// into, used to bring the cursor into arena pixels.
func (in *Input) Sample(v render.Viewport) game.InputSnapshot {
	var snap game.InputSnapshot
	pressed := func(k glfw.Key) bool { return in.window.GetKey(k) == glfw.Press }

	for n := range game.MaxPlayers {
		snap.Gamepads[n] = keyboardButtons(pressed, keyboardPads[n])
		joy := glfw.Joystick1 + glfw.Joystick(n)
		if joy.IsGamepad() {
			snap.Gamepads[n] |= gamepadButtons(joy.GetGamepadState())
		}
	}

	for _, m := range mouseBindings {
		if in.window.GetMouseButton(m.btn) == glfw.Press {
			snap.Mouse |= m.mask
		}
	}
	cx, cy := in.window.GetCursorPos()
	winW, winH := in.window.GetSize()
	fbW, fbH := in.window.GetFramebufferSize()
	snap.MouseX, snap.MouseY = v.ToArena(cx, cy, winW, winH, fbW, fbH)
	return snap
}
