package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec builds a Vec2.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// ClampLength rescales v to exactly max when it is longer than max.
func ClampLength(v dmath.Vec2, max float64) dmath.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}

// InRect reports whether p lies inside the axis-aligned rectangle centred on c
// with the given half extents. Edges count as inside.
func InRect(p, c dmath.Vec2, halfW, halfH float64) bool {
	return math.Abs(p.X-c.X) <= halfW && math.Abs(p.Y-c.Y) <= halfH
}
