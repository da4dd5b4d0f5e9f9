package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{5, 1, 4},
		{-5, 1, -4},
		{0.5, 1, 0},
		{-0.5, 1, 0},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 800, 500, false},
		{"left edge", 0, 500, false},
		{"past left", -0.1, 500, true},
		{"past right", 1600.1, 500, true},
		{"below floor", 800, -1, true},
		{"far above", 800, 5000, false},
	}
	for _, tt := range tests {
		if got := OutOfBounds(tt.x, tt.y, 1600); got != tt.want {
			t.Errorf("%s: OutOfBounds(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAtRest(t *testing.T) {
	if !AtRest(0.05, -0.05, 0.1) {
		t.Error("AtRest(0.05, -0.05) = false, want true")
	}
	if AtRest(0.05, 0.2, 0.1) {
		t.Error("AtRest(0.05, 0.2) = true, want false")
	}
}

func TestImpactDamage(t *testing.T) {
	tests := []struct {
		speed, want float64
	}{
		{0, 10},
		{-3, 10},
		{4, 13},
		{20, 25},
	}
	for _, tt := range tests {
		if got := ImpactDamage(tt.speed, 10, 0.75); got != tt.want {
			t.Errorf("ImpactDamage(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestSplitOffset(t *testing.T) {
	off0, f0 := SplitOffset(0, 20, 0.2)
	off1, f1 := SplitOffset(1, 20, 0.2)
	if off0 != (dmath.Vec2{X: -10, Y: -10}) || f0 != 1 {
		t.Errorf("SplitOffset(0) = %v, %v, want (-10, -10), 1", off0, f0)
	}
	if off1 != (dmath.Vec2{X: 10, Y: 10}) || math.Abs(f1-1.2) > 1e-12 {
		t.Errorf("SplitOffset(1) = %v, %v, want (10, 10), 1.2", off1, f1)
	}
}

func TestInRect(t *testing.T) {
	c := Vec(100, 100)
	if !InRect(Vec(110, 90), c, 10, 10) {
		t.Error("corner point not inside")
	}
	if InRect(Vec(111, 100), c, 10, 10) {
		t.Error("point past the edge inside")
	}
}

func TestClampPull(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		anchor := Vec(rapid.Float64Range(-500, 500).Draw(rt, "ax"), rapid.Float64Range(-500, 500).Draw(rt, "ay"))
		point := Vec(rapid.Float64Range(-500, 500).Draw(rt, "px"), rapid.Float64Range(-500, 500).Draw(rt, "py"))
		limit := rapid.Float64Range(1, 200).Draw(rt, "limit")

		got := Length(Sub(ClampPull(anchor, point, limit), anchor))
		want := math.Min(Length(Sub(point, anchor)), limit)
		if math.Abs(got-want) > 1e-9 {
			rt.Fatalf("pull length = %v, want %v", got, want)
		}
	})
}

func TestLaunchVelocity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		release := Vec(rapid.Float64Range(-100, 100).Draw(rt, "rx"), rapid.Float64Range(-100, 100).Draw(rt, "ry"))
		power := rapid.Float64Range(0.01, 2).Draw(rt, "power")
		maxSpeed := rapid.Float64Range(1, 50).Draw(rt, "maxSpeed")

		v := LaunchVelocity(Vec(0, 0), release, power, maxSpeed)
		want := math.Min(power*Length(release), maxSpeed)
		if math.Abs(Length(v)-want) > 1e-9 {
			rt.Fatalf("speed = %v, want %v", Length(v), want)
		}
		if v.X*release.X+v.Y*release.Y > 0 {
			rt.Fatalf("velocity %v points along the pull %v", v, release)
		}
	})
}

func TestHealthPercentage(t *testing.T) {
	tests := []struct {
		health, max, want float64
	}{
		{50, 100, 50},
		{-5, 100, 0},
		{150, 100, 100},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := HealthPercentage(tt.health, tt.max); got != tt.want {
			t.Errorf("HealthPercentage(%v, %v) = %v, want %v", tt.health, tt.max, got, tt.want)
		}
	}
}
