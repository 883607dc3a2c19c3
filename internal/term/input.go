package term

import (
	"math/bits"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"duality/internal/game"
)

// Terminals report presses and autorepeat but never releases, so a key counts
// as held for DefaultHold after its last event.
const DefaultHold = 250 * time.Millisecond

type keyBinding struct {
	key    tcell.Key
	r      rune
	pad    game.PlayerN
	button game.Buttons
}

// Same layout as the window frontend where a terminal can tell the keys
// apart. Left shift is not reported on its own, so P2 uses Tab only.
var keyBindings = []keyBinding{
	{tcell.KeyLeft, 0, game.P1, game.ButtonLeft},
	{tcell.KeyRight, 0, game.P1, game.ButtonRight},
	{tcell.KeyUp, 0, game.P1, game.ButtonUp},
	{tcell.KeyDown, 0, game.P1, game.ButtonDown},
	{tcell.KeyRune, 'x', game.P1, game.Button1},
	{tcell.KeyRune, ' ', game.P1, game.Button1},
	{tcell.KeyEnter, 0, game.P1, game.Button1},
	{tcell.KeyRune, 'z', game.P1, game.Button2},
	{tcell.KeyRune, 'c', game.P1, game.Button2},

	{tcell.KeyRune, 's', game.P2, game.ButtonLeft},
	{tcell.KeyRune, 'f', game.P2, game.ButtonRight},
	{tcell.KeyRune, 'e', game.P2, game.ButtonUp},
	{tcell.KeyRune, 'd', game.P2, game.ButtonDown},
	{tcell.KeyRune, 'a', game.P2, game.Button1},
	{tcell.KeyRune, 'q', game.P2, game.Button1},
	{tcell.KeyTab, 0, game.P2, game.Button2},
}

func lookupKey(ev *tcell.EventKey) (keyBinding, bool) {
	r := unicode.ToLower(ev.Rune())
	for _, b := range keyBindings {
		if b.key != ev.Key() {
			continue
		}
		if b.key == tcell.KeyRune && b.r != r {
			continue
		}
		return b, true
	}
	return keyBinding{}, false
}

var opposite = map[game.Buttons]game.Buttons{
	game.ButtonLeft:  game.ButtonRight,
	game.ButtonRight: game.ButtonLeft,
	game.ButtonUp:    game.ButtonDown,
	game.ButtonDown:  game.ButtonUp,
}

func bitOf(b game.Buttons) int { return bits.TrailingZeros8(uint8(b)) }

var mouseBindings = []struct {
	btn  tcell.ButtonMask
	mask game.MouseButtons
}{
	{tcell.Button1, game.MouseLeft},
	{tcell.Button2, game.MouseRight},
	{tcell.Button3, game.MouseMiddle},
}

// Input folds terminal events into the per-frame snapshot the game expects.
type Input struct {
	hold time.Duration
	// last press per pad and button bit
	seen   [game.MaxPlayers][8]time.Time
	mouse  game.MouseButtons
	mx, my int
}

func NewInput(hold time.Duration) *Input {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Input{hold: hold, mx: -1, my: -1}
}

// Handle records ev and reports whether the player asked to quit. l maps
// mouse cells back to arena pixels.
func (in *Input) Handle(ev tcell.Event, l Layout) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		}
		if b, ok := lookupKey(ev); ok {
			in.seen[b.pad][bitOf(b.button)] = ev.When()
			// Reversing must not leave the old direction held too.
			if opp, ok := opposite[b.button]; ok {
				in.seen[b.pad][bitOf(opp)] = time.Time{}
			}
		}
	case *tcell.EventMouse:
		in.mouse = 0
		for _, m := range mouseBindings {
			if ev.Buttons()&m.btn != 0 {
				in.mouse |= m.mask
			}
		}
		in.mx, in.my = l.ToArena(ev.Position())
	}
	return false
}

// Sample builds the snapshot as of now.
func (in *Input) Sample(now time.Time) game.InputSnapshot {
	snap := game.InputSnapshot{
		Mouse:  in.mouse,
		MouseX: in.mx,
		MouseY: in.my,
	}
	for pad := range in.seen {
		for bit, at := range in.seen[pad] {
			if !at.IsZero() && now.Sub(at) < in.hold {
				snap.Gamepads[pad] |= game.Buttons(1 << bit)
			}
		}
	}
	return snap
}
