package components

import (
	"fmt"
	"math/rand/v2"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ShakeState is the Shaker's timed disturbance.
type ShakeState struct {
	Active    bool
	Remaining float64

	intensity float64
	amplitude float64
	envelope  *gween.Tween
}

func (s *ShakeState) start(duration, intensity, floor float64) {
	s.Active = true
	s.Remaining = duration
	s.intensity = intensity
	s.amplitude = intensity
	s.envelope = gween.New(float32(intensity), float32(intensity*floor), float32(duration), ease.OutQuad)
}

// ProjectileData is a launchable projectile. The variant's ability is chosen
// when the data is built and never changes.
type ProjectileData struct {
	Variant            cfg.Variant
	SpecialAbilityUsed bool
	Shake              ShakeState
	// Clones are the entities spawned by a Splitter, owned by this projectile.
	Clones   []donburi.Entity
	IsClone  bool
	Disposed bool

	density float64
	body    physics.Body
	ability Ability
}

var Projectile = donburi.NewComponentType[ProjectileData]()

func NewProjectileData(variant cfg.Variant, body physics.Body, density float64) ProjectileData {
	return ProjectileData{
		Variant: variant,
		density: density,
		body:    body,
		ability: AbilityFor(variant),
	}
}

// Body returns the physics body. It panics once the projectile is disposed.
func (p *ProjectileData) Body() physics.Body {
	if p.Disposed || p.body == nil {
		panic(fmt.Sprintf("components: %s projectile used after dispose", p.Variant))
	}
	return p.body
}

func (p *ProjectileData) Density() float64 {
	return p.density
}

// SetDensity stores d and re-applies it to the body's fixtures.
func (p *ProjectileData) SetDensity(d float64) {
	p.Body().SetDensity(d)
	p.density = d
}

func (p *ProjectileData) Velocity() dmath.Vec2 {
	return p.Body().LinearVelocity()
}

func (p *ProjectileData) SetVelocity(v dmath.Vec2) {
	p.Body().SetLinearVelocity(v)
}

func (p *ProjectileData) Position() dmath.Vec2 {
	return p.Body().Position()
}

func (p *ProjectileData) SetPosition(pos dmath.Vec2) {
	b := p.Body()
	b.SetTransform(pos, b.Angle())
}

func (p *ProjectileData) Angle() float64 {
	return p.Body().Angle()
}

// Launch applies impulse at the centre of mass.
func (p *ProjectileData) Launch(impulse dmath.Vec2) {
	b := p.Body()
	b.ApplyLinearImpulse(impulse, b.Position())
}

// Dispose releases the body. Clones are separate entities and are disposed
// by whoever owns the entity arena.
func (p *ProjectileData) Dispose(w physics.World) {
	if p.Disposed {
		return
	}
	if p.body != nil {
		w.DestroyBody(p.body)
	}
	p.body = nil
	p.Disposed = true
	p.Shake.Active = false
}

// ActivateSpecialAbility runs the variant's ability once and returns any
// projectiles it spawned. Later calls do nothing.
func (p *ProjectileData) ActivateSpecialAbility(spawner CloneSpawner) []donburi.Entity {
	if p.SpecialAbilityUsed || p.Disposed || p.ability == nil {
		return nil
	}
	return p.ability.Activate(p, spawner)
}

// UpdateShake counts down an active shake.
func (p *ProjectileData) UpdateShake(dt float64) {
	s := &p.Shake
	if !s.Active {
		return
	}
	s.Remaining -= dt
	if s.envelope != nil {
		a, _ := s.envelope.Update(float32(dt))
		s.amplitude = float64(a)
	}
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Active = false
		s.amplitude = 0
	}
}

// CurrentShakeOffset returns a random render offset with each axis within the
// shake intensity while the shake is active, and zero otherwise.
func (p *ProjectileData) CurrentShakeOffset() dmath.Vec2 {
	s := &p.Shake
	if !s.Active {
		return dmath.Vec2{}
	}
	a := min(s.amplitude, s.intensity)
	return dmath.Vec2{
		X: (rand.Float64()*2 - 1) * a,
		Y: (rand.Float64()*2 - 1) * a,
	}
}
