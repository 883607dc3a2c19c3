package game

import "math"

// Coord is a point or a vector in arena pixel space.
type Coord struct {
	X, Y float64
}

func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }
func (c Coord) Sub(o Coord) Coord { return Coord{X: c.X - o.X, Y: c.Y - o.Y} }

// Scale multiplies both components by k.
func (c Coord) Scale(k float64) Coord { return Coord{X: c.X * k, Y: c.Y * k} }

// Norm is the length of the vector.
func (c Coord) Norm() float64 { return math.Sqrt(c.X*c.X + c.Y*c.Y) }

// DistanceTo is the euclidean distance between two points.
func (c Coord) DistanceTo(o Coord) float64 { return c.Sub(o).Norm() }

// Clamp bounds each axis independently.
func (c Coord) Clamp(minX, maxX, minY, maxY float64) Coord {
	return Coord{X: clampF(c.X, minX, maxX), Y: clampF(c.Y, minY, maxY)}
}
