package game

// Color is a draw colour. Gameplay only cares about the two factions; the
// rest are used by screens and the HUD. The renderer maps each one onto the
// active palette.
type Color uint8

const (
	ColorNone Color = iota
	ColorBackground
	ColorA
	ColorB
	ColorBomb
	ColorStar
	ColorText
	ColorHighlight
	ColorPlain
)

// Opposite returns the other faction colour. Non-faction colours map to ColorA.
func (c Color) Opposite() Color {
	if c == ColorA {
		return ColorB
	}
	return ColorA
}

// Movable is anything that advances on its own each frame.
type Movable interface {
	UpdatePosition()
}

// Visible is anything drawn on the arena.
type Visible interface {
	Draw(s Screen)
}

// Entity is the physical body shared by players, enemies and bombs: a disk
// whose bounding box always stays inside the arena after moving.
type Entity struct {
	Position  Coord // top-left of the bounding box
	Direction Coord // heading; only the ratio matters
	Size      float64
	Speed     float64 // arena pixels per frame
	Color     Color
	Life      uint32 // frames remaining, 0 means dead
}

// UpdatePosition moves the entity Speed pixels along its heading. A zero
// heading leaves it in place.
func (e *Entity) UpdatePosition() {
	norm := e.Direction.Norm()
	if norm <= epsilon {
		return
	}
	e.Position = e.Position.Add(e.Direction.Scale(e.Speed / norm))
	limit := ArenaSize - e.Size
	e.Position = e.Position.Clamp(0, limit, 0, limit)
}

// Radius is deflated by half a pixel so disks that look like they touch on
// screen register as touching.
func (e *Entity) Radius() float64 {
	return e.Size/2 - 0.5
}

func (e *Entity) Center() Coord {
	r := e.Radius()
	return e.Position.Add(Coord{X: r, Y: r})
}

// Distance between the centers of two entities.
func (e *Entity) Distance(o *Entity) float64 {
	return e.Center().DistanceTo(o.Center())
}

// CollidedWith is a circular overlap test; extraReach is added to the sum of
// the radii.
func (e *Entity) CollidedWith(o *Entity, extraReach float64) bool {
	return e.Distance(o) < e.Radius()+o.Radius()+extraReach
}

func (e *Entity) Draw(s Screen) {
	s.Disk(e.Position, e.Size, e.Color)
}
