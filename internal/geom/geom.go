// Package geom holds the small amount of 2D math shared by spawning and the
// game systems.
package geom

import "math"

// Point represents a 2D point in world space (pixels)
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSq returns the squared Euclidean distance between p and q
func (p Point) DistanceSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// AngleTo returns the angle in radians from p to q, measured from the +X axis
// with +Y pointing down the screen.
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Velocity returns the (vx, vy) pair that moves from p toward q at speed.
// When p == q the direction defaults to +X.
func (p Point) Velocity(q Point, speed float64) (vx, vy float64) {
	angle := p.AngleTo(q)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Size is a width/height pair
type Size struct {
	Width, Height float64
}

// Contains reports whether p lies in [0, Width) x [0, Height)
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Clamp restricts p to [0, Width] x [0, Height]
func (s Size) Clamp(p Point) Point {
	return Point{X: clamp(p.X, 0, s.Width), Y: clamp(p.Y, 0, s.Height)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
