package game

// Enemy pursues the nearest player for a limited lifespan. Enemies expire so
// that a skilled player cannot herd every enemy into one corner and block new
// spawns once the cap is reached.
type Enemy struct {
	Entity
	LifeSpan uint32
	// Frames after spawning during which the enemy cannot kill a player.
	GraceFrames uint32
	Follows     PlayerN
}

func NewEnemy(pos Coord, color Color) *Enemy {
	return &Enemy{
		Entity: Entity{
			Position: pos,
			Size:     EnemySize,
			Speed:    EnemySpeed,
			Color:    color,
			Life:     EnemyLifeSpan,
		},
		LifeSpan:    EnemyLifeSpan,
		GraceFrames: EnemyGraceFrames,
		Follows:     P1,
	}
}

// Follow steers towards p with pure pursuit. The heading change is rate
// limited per axis, so enemies lag behind sharp turns.
func (e *Enemy) Follow(p *Player) {
	if p == nil {
		e.Follows = NoPlayer
		return
	}
	e.Follows = p.Number

	pHalf := p.Size / 2
	eHalf := e.Size / 2
	target := p.Position.Add(Coord{X: pHalf, Y: pHalf})
	origin := e.Position.Add(Coord{X: eHalf, Y: eHalf})
	toPlayer := target.Sub(origin)
	norm := toPlayer.Norm()
	if norm <= 2*epsilon {
		return
	}

	ddx := clampF(e.Direction.X-toPlayer.X/norm, -EnemySteeringLimit, EnemySteeringLimit)
	ddy := clampF(e.Direction.Y-toPlayer.Y/norm, -EnemySteeringLimit, EnemySteeringLimit)
	e.Direction.X -= ddx
	e.Direction.Y -= ddy
}

// UpdatePosition moves the enemy and burns one frame of its life.
func (e *Enemy) UpdatePosition() {
	e.Entity.UpdatePosition()
	if e.Life > 0 {
		e.Life--
	}
}

func (e *Enemy) Kill() {
	e.Life = 0
}

func (e *Enemy) Dead() bool {
	return e.Life == 0
}

func (e *Enemy) JustSpawned() bool {
	return e.Life+e.GraceFrames > e.LifeSpan
}
