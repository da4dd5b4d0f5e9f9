package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Ability is a projectile variant's one-shot special move. Activate is only
// called while SpecialAbilityUsed is false.
type Ability interface {
	Activate(p *ProjectileData, spawner CloneSpawner) []donburi.Entity
}

// CloneSpawner creates a sibling projectile for a Splitter.
type CloneSpawner interface {
	SpawnClone(parent *ProjectileData, pos, vel dmath.Vec2) donburi.Entity
}

// AbilityFor returns the ability for a variant using the global tuning.
func AbilityFor(v cfg.Variant) Ability {
	a := cfg.Ability
	switch v {
	case cfg.SpeedBoost:
		return SpeedBoostAbility{Factor: a.SpeedBoostFactor, DensityFactor: a.SpeedBoostDensity}
	case cfg.Splitter:
		return SplitterAbility{Count: a.SplitCount, Spread: a.SplitSpread, SpeedStep: a.SplitSpeedStep}
	case cfg.Shaker:
		return ShakerAbility{Duration: a.ShakeDuration, Intensity: a.ShakeIntensity, Floor: a.ShakeEnvelopeFloor}
	}
	return StandardAbility{}
}

// StandardAbility does nothing.
type StandardAbility struct{}

func (StandardAbility) Activate(*ProjectileData, CloneSpawner) []donburi.Entity {
	return nil
}

// SpeedBoostAbility multiplies velocity, then density.
type SpeedBoostAbility struct {
	Factor        float64
	DensityFactor float64
}

func (a SpeedBoostAbility) Activate(p *ProjectileData, _ CloneSpawner) []donburi.Entity {
	p.SetVelocity(gamemath.Scale(p.Velocity(), a.Factor))
	p.SetDensity(p.Density() * a.DensityFactor)
	p.SpecialAbilityUsed = true
	return nil
}

// SplitterAbility spawns Count clones around the parent, clone i flying at
// (1 + i*SpeedStep) times the parent's velocity. The parent keeps flying.
type SplitterAbility struct {
	Count     int
	Spread    float64
	SpeedStep float64
}

func (a SplitterAbility) Activate(p *ProjectileData, spawner CloneSpawner) []donburi.Entity {
	if spawner == nil {
		return nil
	}
	pos, vel := p.Position(), p.Velocity()
	clones := make([]donburi.Entity, 0, a.Count)
	for i := 0; i < a.Count; i++ {
		off, factor := gamemath.SplitOffset(i, a.Spread, a.SpeedStep)
		clones = append(clones, spawner.SpawnClone(p, gamemath.Add(pos, off), gamemath.Scale(vel, factor)))
	}
	p.Clones = append(p.Clones, clones...)
	p.SpecialAbilityUsed = true
	return clones
}

// ShakerAbility starts a timed shake.
type ShakerAbility struct {
	Duration  float64
	Intensity float64
	Floor     float64
}

func (a ShakerAbility) Activate(p *ProjectileData, _ CloneSpawner) []donburi.Entity {
	p.Shake.start(a.Duration, a.Intensity, a.Floor)
	p.SpecialAbilityUsed = true
	return nil
}
