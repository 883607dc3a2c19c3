package game

import "strconv"

// Button glyphs as rendered by the text routine.
const (
	glyphX = "X"
	glyphZ = "Z"
)

func drawTitle(s Screen, tick uint64) {
	// Two opposite disks orbiting a third one, the whole game in one picture.
	s.Disk(Coord{X: 48, Y: 40}, 36, ColorA)
	s.Disk(Coord{X: 76, Y: 40}, 36, ColorB)
	s.Disk(Coord{X: 74, Y: 54}, 12, ColorBomb)

	x := 20 + int(tick%11/4)
	y := 110 + int(tick%7/4)
	s.Text("D U A L I T Y", x+10, y-20, ColorHighlight)
	s.Text("absorb avoid survive", x-8, y, ColorText)
}

func drawHowToPlay(s Screen, tick uint64) {
	const (
		voff = 5
		hoff = 20
	)

	s.Rect(hoff, voff, ArenaSize-40, ArenaSize-20, ColorText)
	s.Rect(hoff-18, voff+3, ArenaSize-4, 15, ColorPlain)
	s.Text("--- HOW TO PLAY ---", hoff-16, voff+7, ColorHighlight)

	s.Text("   You:", hoff, voff+25, ColorPlain)
	s.Text(" Avoid:", hoff, voff+35, ColorPlain)
	s.Text("Absorb:", hoff, voff+45, ColorPlain)
	s.Text("  Bomb:", hoff, voff+55, ColorPlain)

	player := NewPlayer(P1)
	player.Position = Coord{X: hoff + 59, Y: voff + 25}
	player.Draw(s)
	NewEnemy(Coord{X: hoff + 60, Y: voff + 36}, ColorA).Draw(s)
	NewEnemy(Coord{X: hoff + 60, Y: voff + 46}, ColorB).Draw(s)
	NewBomb(Coord{X: hoff + 58, Y: voff + 54}).Draw(s)

	s.Icon(IconMouseLeft, hoff-1, voff+69, ColorPlain)
	s.Text(" /arrows:Move", hoff, voff+70, ColorPlain)
	s.Icon(IconMouseRight, hoff+24, voff+80, ColorPlain)
	s.Text("    /"+glyphX+": -> ->", hoff, voff+80, ColorPlain)

	// Colour switch demo: B, then A, then B again.
	for i, off := range []float64{55, 80, 104} {
		player.Position = Coord{X: hoff + off, Y: voff + 80}
		if i == 1 {
			player.ToggleColor()
		}
		player.Draw(s)
		if i == 1 {
			player.ToggleColor()
		}
	}

	s.Text("--Multiplayer--\nUp to 4 Players", hoff, voff+96, ColorHighlight)

	s.Rect(hoff-10, voff+122, ArenaSize-20, 13, ColorPlain)
	// Blinks on the intro song beat.
	if (tick/4)%10 >= 4 {
		s.Text("Press "+glyphX+" to start", hoff-4, voff+125, ColorHighlight)
	}

	s.Icon(IconMouseMiddle, hoff+46, voff+142, ColorPlain)
	s.Text("/"+glyphZ+":palette", hoff+54, voff+142, ColorHighlight)
}

func drawGameOver(s Screen, tick uint64) {
	s.Text("GAME OVER", ArenaSize/2-35, ArenaSize/2-10, ColorHighlight)
	if (tick/2)%10 < 5 {
		s.Text("Press "+glyphX+" to restart", 8, ArenaSize/2+13, ColorText)
	}
}

// drawHUD shows score, high score, multiplier and the shared life pool. On
// the game over screen a beaten high score blinks.
func (g *Game) drawHUD() {
	s := g.screen
	s.Text(strconv.FormatUint(uint64(g.scores.Current), 10), 1, 1, ColorText)

	showHigh := g.flags.CurrentScreen != ScreenGameOver ||
		!g.flags.NewHighScore ||
		(g.timers.FrameCount/2)%10 < 5
	if showHigh {
		s.Text("H:"+strconv.FormatUint(uint64(g.scores.High), 10), 73, 1, ColorText)
	}

	s.Text("x"+strconv.FormatUint(uint64(g.scores.Multiplier), 10), 1, ArenaSize-11, ColorText)

	// Only P1 counts lives; it owns the whole pool.
	start := ArenaSize - 9
	for l := range int(g.entities.P1().Lives) {
		x := start - l*8
		if x < 0 {
			break
		}
		s.Icon(IconHeart, x, ArenaSize-9, ColorA)
	}
}
