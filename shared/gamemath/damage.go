package gamemath

import "math"

// ImpactDamage is the linear impact rule: base + speed*multiplier. Negative
// speeds are treated as zero so damage never drops below base.
func ImpactDamage(speed, base, multiplier float64) float64 {
	return base + math.Max(0, speed)*multiplier
}

// HealthPercentage returns 100*health/max clamped to [0, 100].
func HealthPercentage(health, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(100, math.Max(0, 100*health/max))
}
