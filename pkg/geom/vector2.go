// Package geom provides the small amount of 2-D vector math the renderer needs.
package geom

import "math"

// Vector2 is a 2-D vector in grid units.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience constructor.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector obtained by rotating (1, 0) by radians.
func FromAngle(radians float64) Vector2 {
	return Vector2{X: 1}.Rotate(radians)
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Rotate returns v rotated counter-clockwise by radians.
func (v Vector2) Rotate(radians float64) Vector2 {
	sin, cos := math.Sincos(radians)
	return Vector2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SquareLength returns the squared length of v.
func (v Vector2) SquareLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v divided by its length.
//
// v must not be the zero vector. No guard is applied: normalizing a zero
// vector yields NaN components.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// AngleBetween returns the unsigned angle between v and w in radians.
// The cosine is clamped to [-1, 1] so rounding never leaves the domain of
// Acos.
func (v Vector2) AngleBetween(w Vector2) float64 {
	c := v.Dot(w) / (v.Length() * w.Length())
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Perpendicular returns v rotated clockwise by a quarter turn.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{X: v.Y, Y: -v.X}
}
