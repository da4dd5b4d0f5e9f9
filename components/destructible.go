package components

import (
	"fmt"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// DestructibleData is a structure or target with a health pool.
type DestructibleData struct {
	Kind      cfg.DestructibleKind
	Health    float64
	MaxHealth float64

	// Destroyed is set once Health reaches zero and never cleared.
	Destroyed bool
	// Damaged selects the cracked presentation tier.
	Damaged bool
	// Removed is set when the body has been released after destruction.
	Removed bool

	body physics.Body
}

var Destructible = donburi.NewComponentType[DestructibleData]()

func NewDestructibleData(kind cfg.DestructibleKind, body physics.Body, maxHealth float64) DestructibleData {
	return DestructibleData{
		Kind:      kind,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		body:      body,
	}
}

// ApplyDamage lowers health, clamped at zero. Damage to a destroyed entity is
// ignored since one step can report several hits on the same body.
func (d *DestructibleData) ApplyDamage(amount float64) {
	if d.Destroyed || amount <= 0 {
		return
	}
	d.Health -= amount
	if d.Health <= 0 {
		d.Health = 0
		d.Destroyed = true
		return
	}
	if d.Health < cfg.Damage.DamagedThreshold*d.MaxHealth {
		d.Damaged = true
	}
}

func (d *DestructibleData) HealthPercentage() float64 {
	return gamemath.HealthPercentage(d.Health, d.MaxHealth)
}

// Body returns the physics body. It panics after removal.
func (d *DestructibleData) Body() physics.Body {
	if d.Removed || d.body == nil {
		panic(fmt.Sprintf("components: %s body used after removal", d.Kind))
	}
	return d.body
}

func (d *DestructibleData) Position() dmath.Vec2 {
	return d.Body().Position()
}

func (d *DestructibleData) Angle() float64 {
	return d.Body().Angle()
}

// Dispose releases the body. It must not be called during a world step.
func (d *DestructibleData) Dispose(w physics.World) {
	if d.Removed {
		return
	}
	if d.body != nil {
		w.DestroyBody(d.body)
	}
	d.body = nil
	d.Removed = true
}
