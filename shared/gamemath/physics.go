package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// Integrate advances a velocity by one semi-implicit Euler step and returns the
// new velocity and the displacement it produces. Damping is applied per second.
func Integrate(vel, accel, damping, dt float64) (newVel, displacement float64) {
	newVel = (vel + accel*dt) * math.Max(0, 1-damping*dt)
	return newVel, newVel * dt
}

// AtRest reports whether both velocity components are below the motion floor.
func AtRest(vx, vy, minMotion float64) bool {
	return math.Abs(vx) < minMotion && math.Abs(vy) < minMotion
}

// OutOfBounds reports whether a point has left the playable field: past either
// horizontal edge or below the floor. The top of the field is open.
func OutOfBounds(x, y, width float64) bool {
	return x < 0 || x > width || y < 0
}

// Airborne reports whether a vertical speed counts as flight.
func Airborne(vy, threshold float64) bool {
	return math.Abs(vy) > threshold
}
