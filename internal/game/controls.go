package game

// Buttons is the state of one gamepad as a bit set.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
	Button1
	Button2
)

type MouseButtons uint8

const (
	MouseLeft MouseButtons = 1 << iota
	MouseRight
	MouseMiddle
)

// InputSnapshot is what a host samples from its devices once per frame.
// Mouse coordinates are in arena pixels and may lie outside the arena.
type InputSnapshot struct {
	Gamepads [MaxPlayers]Buttons
	Mouse    MouseButtons
	MouseX   int
	MouseY   int
}

type ControlKind int

const (
	ControlMouseLeftHold ControlKind = iota
	ControlMouseLeftClick
	ControlMouseRightClick
	ControlMouseMiddleClick
	ControlLeft
	ControlDown
	ControlUp
	ControlRight
	ControlBtn1
	ControlBtn2
)

// ControlEvent is one user action. Player is set for gamepad events, X and Y
// for the mouse hold.
type ControlEvent struct {
	Kind   ControlKind
	Player PlayerN
	X, Y   int
}

// Controls turns snapshots into events. Directions and the mouse hold fire on
// every frame they are down; buttons and clicks fire once per press.
type Controls struct {
	prev InputSnapshot
}

// Seed makes in the previous state, so buttons already down when the host
// starts are not reported as presses.
func (c *Controls) Seed(in InputSnapshot) {
	c.prev = in
}

func (c *Controls) Update(in InputSnapshot) []ControlEvent {
	var events []ControlEvent

	mousePressed := in.Mouse &^ c.prev.Mouse
	if mouseInPlayArea(in.MouseX, in.MouseY) {
		if in.Mouse&MouseLeft != 0 {
			events = append(events, ControlEvent{Kind: ControlMouseLeftHold, Player: P1, X: in.MouseX, Y: in.MouseY})
		}
		if mousePressed&MouseRight != 0 {
			events = append(events, ControlEvent{Kind: ControlMouseRightClick, Player: P1})
		}
		if mousePressed&MouseLeft != 0 {
			events = append(events, ControlEvent{Kind: ControlMouseLeftClick, Player: P1})
		}
		if mousePressed&MouseMiddle != 0 {
			events = append(events, ControlEvent{Kind: ControlMouseMiddleClick, Player: P1})
		}
	}

	for i, pad := range in.Gamepads {
		n := PlayerN(i)
		pressed := pad &^ c.prev.Gamepads[i]
		if pad&ButtonLeft != 0 {
			events = append(events, ControlEvent{Kind: ControlLeft, Player: n})
		}
		if pad&ButtonDown != 0 {
			events = append(events, ControlEvent{Kind: ControlDown, Player: n})
		}
		if pad&ButtonUp != 0 {
			events = append(events, ControlEvent{Kind: ControlUp, Player: n})
		}
		if pad&ButtonRight != 0 {
			events = append(events, ControlEvent{Kind: ControlRight, Player: n})
		}
		if pressed&Button1 != 0 {
			events = append(events, ControlEvent{Kind: ControlBtn1, Player: n})
		}
		if pressed&Button2 != 0 {
			events = append(events, ControlEvent{Kind: ControlBtn2, Player: n})
		}
	}

	c.prev = in
	return events
}

// mouseInPlayArea accepts pointers over the arena plus a margin, so clicks on
// surrounding host UI are ignored but a pointer that slips just past the
// edge keeps steering.
func mouseInPlayArea(x, y int) bool {
	const pad = MouseAreaPadding
	return x >= -pad && x <= ArenaSize+pad && y >= -pad && y <= ArenaSize+pad
}
