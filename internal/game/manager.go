package game

import (
	"fmt"
	"maps"
	"slices"
)

// EntityManager owns every entity on the arena. Player slot 1 always exists;
// the other slots stay nil until someone joins.
//
// Enemies and bombs are keyed by the frame they were spawned on and are
// always visited in ascending id order, so a frame resolves the same way
// every time it is replayed with the same inputs.
type EntityManager struct {
	Players [MaxPlayers]*Player
	Bombs   map[uint64]*Bomb
	Enemies map[uint64]*Enemy
	// Killer is a snapshot of the enemy that caused the death in progress.
	Killer *Enemy

	tuning Tuning
}

func NewEntityManager(t Tuning) *EntityManager {
	m := &EntityManager{
		Bombs:   make(map[uint64]*Bomb),
		Enemies: make(map[uint64]*Enemy),
		tuning:  t,
	}
	m.Players[P1] = NewPlayer(P1)
	m.Players[P1].Lives = t.InitLives
	return m
}

// Player returns the player in slot n, or nil if the slot is empty.
func (m *EntityManager) Player(n PlayerN) *Player {
	if n < P1 || n > P4 {
		return nil
	}
	return m.Players[n]
}

// P1 returns the first player. The slot is filled on construction and never
// emptied, so a missing P1 is a programming error.
func (m *EntityManager) P1() *Player {
	p := m.Players[P1]
	if p == nil {
		panic("entity manager: player slot 1 is empty")
	}
	return p
}

// Join fills slot n with a fresh player. It reports false if the slot was
// already taken.
func (m *EntityManager) Join(n PlayerN) (*Player, bool) {
	if n < P1 || n > P4 {
		panic(fmt.Errorf("entity manager: invalid player slot %d", int(n)))
	}
	if p := m.Players[n]; p != nil {
		return p, false
	}
	p := NewPlayer(n)
	m.Players[n] = p
	return p, true
}

// Joined returns the present players in slot order.
func (m *EntityManager) Joined() []*Player {
	ps := make([]*Player, 0, MaxPlayers)
	for _, p := range m.Players {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return ps
}

func (m *EntityManager) SpawnEnemy(id uint64, pos Coord, c Color) bool {
	if len(m.Enemies) >= m.tuning.MaxEnemies {
		return false
	}
	if _, taken := m.Enemies[id]; taken {
		return false
	}
	e := NewEnemy(pos, c)
	e.LifeSpan = m.tuning.EnemyLifeSpan
	e.GraceFrames = m.tuning.EnemyGraceFrames
	e.Life = e.LifeSpan
	m.Enemies[id] = e
	return true
}

func (m *EntityManager) SpawnBomb(id uint64, pos Coord) bool {
	if len(m.Bombs) >= m.tuning.MaxBombs {
		return false
	}
	if _, taken := m.Bombs[id]; taken {
		return false
	}
	m.Bombs[id] = NewBomb(pos)
	return true
}

func (m *EntityManager) ClearEnemies() {
	clear(m.Enemies)
}

// Update advances one frame: movement first, then collision arbitration.
// It returns how many enemies were absorbed and how many bombs went off.
func (m *EntityManager) Update() (killed, exploded int) {
	m.updateState()
	return m.processCollisions()
}

func (m *EntityManager) updateState() {
	for _, p := range m.Players {
		if p != nil {
			p.UpdatePosition()
			// Directions are level triggered: input has to be held.
			p.Stop()
		}
	}
	for _, id := range sortedIDs(m.Enemies) {
		e := m.Enemies[id]
		e.Follow(m.nearestPlayer(e))
		e.UpdatePosition()
	}
	for _, id := range sortedIDs(m.Bombs) {
		m.Bombs[id].Update()
	}
	m.prune()
}

// nearestPlayer picks the closest present player by centre distance. Ties go
// to the lower slot.
func (m *EntityManager) nearestPlayer(e *Enemy) *Player {
	var best *Player
	bestDist := 0.0
	for _, p := range m.Players {
		if p == nil {
			continue
		}
		d := e.Distance(&p.Entity)
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func (m *EntityManager) processCollisions() (killed, exploded int) {
	bombIDs := sortedIDs(m.Bombs)

	for _, id := range bombIDs {
		b := m.Bombs[id]
		if b.Exploded {
			continue
		}
		for _, p := range m.Players {
			if p != nil && p.CollidedWith(&b.Entity, BombTriggerReach) {
				b.Explode(p.Number)
				exploded++
				break
			}
		}
	}

	for _, id := range sortedIDs(m.Enemies) {
		e := m.Enemies[id]

		for _, bid := range bombIDs {
			b := m.Bombs[bid]
			if !b.Exploded || !e.CollidedWith(&b.Entity, BombConvertReach) {
				continue
			}
			owner := m.Player(b.WhoExploded)
			if owner == nil {
				panic(fmt.Errorf("entity manager: bomb %d exploded by absent player %v", bid, b.WhoExploded))
			}
			e.Color = owner.Color
			break
		}

		if m.absorb(e) {
			killed++
			continue
		}

		if m.fatal(e) {
			killer := *e
			m.Killer = &killer
			e.Kill()
			break
		}
	}

	m.prune()
	return killed, exploded
}

func (m *EntityManager) absorb(e *Enemy) bool {
	for _, p := range m.Players {
		if p == nil || p.Color != e.Color {
			continue
		}
		if e.CollidedWith(&p.Entity, AbsorbReach) {
			e.Kill()
			return true
		}
	}
	return false
}

func (m *EntityManager) fatal(e *Enemy) bool {
	if e.JustSpawned() {
		return false
	}
	for _, p := range m.Players {
		if p == nil || p.Color == e.Color {
			continue
		}
		if e.CollidedWith(&p.Entity, FatalReach) {
			return true
		}
	}
	return false
}

func (m *EntityManager) prune() {
	maps.DeleteFunc(m.Enemies, func(_ uint64, e *Enemy) bool { return e.Dead() })
	maps.DeleteFunc(m.Bombs, func(_ uint64, b *Bomb) bool { return b.Life == 0 })
}

// Draw paints players first so enemies overlap them while escaping. Bombs
// go on top of everything.
func (m *EntityManager) Draw(s Screen) {
	m.DrawPlayers(s)
	for _, id := range sortedIDs(m.Enemies) {
		m.Enemies[id].Draw(s)
	}
	for _, id := range sortedIDs(m.Bombs) {
		m.Bombs[id].Draw(s)
	}
}

func (m *EntityManager) DrawPlayers(s Screen) {
	for _, p := range m.Players {
		if p != nil {
			p.Draw(s)
		}
	}
}

func sortedIDs[V any](m map[uint64]V) []uint64 {
	return slices.Sorted(maps.Keys(m))
}
