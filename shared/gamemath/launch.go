package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// ClampPull limits the pull from anchor to point to pullLimit and returns the
// resulting band position.
func ClampPull(anchor, point dmath.Vec2, pullLimit float64) dmath.Vec2 {
	return Add(anchor, ClampLength(Sub(point, anchor), pullLimit))
}

// LaunchVelocity converts a pull into a launch velocity. The pull direction is
// reversed so the projectile flies away from the band.
func LaunchVelocity(anchor, release dmath.Vec2, power, maxSpeed float64) dmath.Vec2 {
	return ClampLength(Scale(Sub(anchor, release), power), maxSpeed)
}

// SplitOffset returns the spawn offset and velocity multiplier of clone i.
func SplitOffset(i int, spread, speedStep float64) (offset dmath.Vec2, speedFactor float64) {
	d := (float64(i) - 0.5) * spread
	return dmath.Vec2{X: d, Y: d}, 1 + float64(i)*speedStep
}
