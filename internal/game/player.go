package game

import "fmt"

// PlayerN is a player slot.
type PlayerN int

const (
	P1 PlayerN = iota
	P2
	P3
	P4

	NoPlayer PlayerN = -1
)

func (n PlayerN) String() string {
	if n < P1 || n > P4 {
		return "none"
	}
	return fmt.Sprintf("P%d", int(n)+1)
}

// Player is a disk under direct control. Lives is the remaining attempts;
// only P1's counter is used, it holds the pool shared by everyone.
type Player struct {
	Entity
	Number PlayerN
	Lives  uint32
}

// NewPlayer creates a player at the arena centre.
func NewPlayer(n PlayerN) *Player {
	start := (ArenaSize - PlayerSize) / 2.0
	return &Player{
		Entity: Entity{
			Position: Coord{X: start, Y: start},
			Size:     PlayerSize,
			Speed:    PlayerSpeed,
			Color:    ColorB,
			Life:     1,
		},
		Number: n,
	}
}

func (p *Player) Left()  { p.Direction.X = -1 }
func (p *Player) Right() { p.Direction.X = 1 }
func (p *Player) Up()    { p.Direction.Y = -1 }
func (p *Player) Down()  { p.Direction.Y = 1 }
func (p *Player) Stop()  { p.Direction = Coord{} }

// SteerTowards points the player at an arena position, ignoring targets
// within a pixel of the centre so the disk does not jitter under the pointer.
func (p *Player) SteerTowards(x, y float64) {
	half := p.Size / 2
	dx := x - p.Position.X - half
	dy := y - p.Position.Y - half
	if dx > 1 || dx < -1 || dy > 1 || dy < -1 {
		p.Direction = Coord{X: dx, Y: dy}
	}
}

func (p *Player) ToggleColor() {
	p.Color = p.Color.Opposite()
}

// Draw paints the disk plus one to four dots identifying the slot.
func (p *Player) Draw(s Screen) {
	p.Entity.Draw(s)

	c := p.Center()
	var dots []Coord
	switch p.Number {
	case P1:
		dots = []Coord{c}
	case P2:
		dots = []Coord{{X: c.X - 1, Y: c.Y}, {X: c.X + 1, Y: c.Y}}
	case P3:
		dots = []Coord{{X: c.X - 1, Y: c.Y}, {X: c.X, Y: c.Y - 1}, {X: c.X + 1, Y: c.Y}}
	case P4:
		dots = []Coord{{X: c.X - 1, Y: c.Y}, {X: c.X, Y: c.Y + 1}, {X: c.X, Y: c.Y - 1}, {X: c.X + 1, Y: c.Y}}
	}
	for _, d := range dots {
		s.Pixel(int(d.X), int(d.Y), ColorPlain)
	}
}
