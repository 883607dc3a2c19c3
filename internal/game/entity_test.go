package game

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestCoordArithmetic(t *testing.T) {
	a := Coord{X: 3, Y: 4}
	if n := a.Norm(); n != 5 {
		t.Fatalf("norm = %v, want 5", n)
	}
	if d := a.DistanceTo(Coord{}); d != 5 {
		t.Fatalf("distance = %v, want 5", d)
	}
	if got := a.Add(Coord{X: 1, Y: -1}); got != (Coord{X: 4, Y: 3}) {
		t.Fatalf("add = %v", got)
	}
	if got := a.Sub(Coord{X: 1, Y: 1}); got != (Coord{X: 2, Y: 3}) {
		t.Fatalf("sub = %v", got)
	}
	if got := a.Scale(2); got != (Coord{X: 6, Y: 8}) {
		t.Fatalf("scale = %v", got)
	}
	if got := (Coord{X: -5, Y: 200}).Clamp(0, 10, 0, 100); got != (Coord{X: 0, Y: 100}) {
		t.Fatalf("clamp = %v", got)
	}
}

func TestUpdatePositionMovesExactlySpeed(t *testing.T) {
	e := Entity{
		Position:  Coord{X: 50, Y: 50},
		Direction: Coord{X: 3, Y: -4},
		Size:      7,
		Speed:     1.4,
	}
	start := e.Position
	e.UpdatePosition()

	moved := e.Position.DistanceTo(start)
	if math.Abs(moved-1.4) > tol {
		t.Fatalf("moved %v, want 1.4", moved)
	}
	if math.Abs(e.Position.X-(50+1.4*0.6)) > tol || math.Abs(e.Position.Y-(50-1.4*0.8)) > tol {
		t.Fatalf("position = %v", e.Position)
	}
}

func TestUpdatePositionZeroDirection(t *testing.T) {
	e := Entity{Position: Coord{X: 10, Y: 10}, Size: 5, Speed: 1}
	e.UpdatePosition()
	if e.Position != (Coord{X: 10, Y: 10}) {
		t.Fatalf("entity moved with zero heading: %v", e.Position)
	}
	if math.IsNaN(e.Position.X) || math.IsNaN(e.Position.Y) {
		t.Fatal("NaN position")
	}
}

func TestUpdatePositionClampsToArena(t *testing.T) {
	tests := []struct {
		name string
		pos  Coord
		dir  Coord
		want Coord
	}{
		{"left", Coord{X: 0.5, Y: 50}, Coord{X: -1}, Coord{X: 0, Y: 50}},
		{"top", Coord{X: 50, Y: 0.2}, Coord{Y: -1}, Coord{X: 50, Y: 0}},
		{"right", Coord{X: 152.5, Y: 50}, Coord{X: 1}, Coord{X: ArenaSize - 7, Y: 50}},
		{"bottom corner", Coord{X: 152.9, Y: 152.9}, Coord{X: 1, Y: 1}, Coord{X: ArenaSize - 7, Y: ArenaSize - 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Position: tt.pos, Direction: tt.dir, Size: 7, Speed: 1.4}
			e.UpdatePosition()
			if e.Position != tt.want {
				t.Fatalf("position = %v, want %v", e.Position, tt.want)
			}
		})
	}
}

func TestCollisionSymmetry(t *testing.T) {
	a := Entity{Position: Coord{X: 10, Y: 10}, Size: 7}
	b := Entity{Position: Coord{X: 16, Y: 13}, Size: 5}
	for _, reach := range []float64{-2, 0, 2, 10} {
		if a.CollidedWith(&b, reach) != b.CollidedWith(&a, reach) {
			t.Errorf("collision not symmetric at reach %v", reach)
		}
	}
}

func TestCollisionMonotonicInReach(t *testing.T) {
	a := Entity{Position: Coord{X: 20, Y: 20}, Size: 7}
	for dx := 0.0; dx < 20; dx += 0.25 {
		b := Entity{Position: Coord{X: 20 + dx, Y: 20}, Size: 5}
		prev := false
		for reach := -4.0; reach <= 4; reach += 0.5 {
			hit := a.CollidedWith(&b, reach)
			if prev && !hit {
				t.Fatalf("dx=%v: larger reach %v lost a collision", dx, reach)
			}
			prev = hit
		}
	}
}

func TestRadiusDeflation(t *testing.T) {
	e := Entity{Size: 7}
	if r := e.Radius(); r != 3 {
		t.Fatalf("radius = %v, want 3", r)
	}
	if c := e.Center(); c != (Coord{X: 3, Y: 3}) {
		t.Fatalf("center = %v", c)
	}
}

// A player and an enemy sharing a centre always collide with positive
// reach; once apart by more than the shrunk radii the fatal test fails.
func TestSharedCentreReachByColour(t *testing.T) {
	p := NewPlayer(P1)
	p.Position = Coord{X: 50, Y: 50}
	p.Color = ColorA

	e := NewEnemy(Coord{X: 51, Y: 51}, ColorA)
	if p.Center() != e.Center() {
		t.Fatalf("centres differ: %v %v", p.Center(), e.Center())
	}
	if !e.CollidedWith(&p.Entity, AbsorbReach) {
		t.Fatal("same centre should collide with +2 reach")
	}

	e.Color = ColorB
	limit := p.Radius() + e.Radius() + FatalReach
	e.Position.X += limit + 0.01
	if e.CollidedWith(&p.Entity, FatalReach) {
		t.Fatalf("distance %v beyond %v still fatal", e.Distance(&p.Entity), limit)
	}
}

func TestColorOpposite(t *testing.T) {
	if ColorA.Opposite() != ColorB || ColorB.Opposite() != ColorA {
		t.Fatal("faction colours should swap")
	}
}
