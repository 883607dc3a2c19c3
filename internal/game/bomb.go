package game

// Bomb sits still until a player touches it. Once exploded it grows every
// frame, staying centred, and converts enemies it touches to the colour of
// the player who set it off.
type Bomb struct {
	Entity
	Exploded    bool
	WhoExploded PlayerN
	GrowthRate  float64
}

func NewBomb(pos Coord) *Bomb {
	return &Bomb{
		Entity: Entity{
			Position: pos,
			Size:     BombSize,
			Color:    ColorBomb,
			Life:     BombLifeSpan,
		},
		WhoExploded: NoPlayer,
		GrowthRate:  BombGrowthRate,
	}
}

func (b *Bomb) Explode(by PlayerN) {
	b.Exploded = true
	b.WhoExploded = by
}

func (b *Bomb) Update() {
	if b.Exploded {
		b.grow()
	}
}

func (b *Bomb) grow() {
	amt := b.GrowthRate
	b.Size = clampF(b.Size+amt, BombMinSize, ArenaSize-1)
	b.Position.X -= amt / 2
	b.Position.Y -= amt / 2
	if b.Life > 0 {
		b.Life--
	}
}
