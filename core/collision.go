package core

import (
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BeginContact is called by the physics world from inside Step. It applies
// impact damage and queues destroyed entities; it never touches bodies'
// lifetimes.
func (c *Controller) BeginContact(fa, fb *physics.Fixture) {
	ea, okA := fa.Body().Entity()
	eb, okB := fb.Body().Entity()
	if !okA || !okB {
		return
	}

	proj, projBody, dest, destEntity, ok := c.classify(ea, eb)
	if !ok || proj.Disposed || dest.Destroyed || dest.Removed {
		return
	}

	speed := gamemath.Length(gamemath.Sub(projBody.LinearVelocity(), dest.Body().LinearVelocity()))
	dest.ApplyDamage(gamemath.ImpactDamage(speed, cfg.Damage.BaseDamage, cfg.Damage.SpeedMultiplier))

	if dest.Destroyed {
		c.pending = append(c.pending, destEntity)
		log.Printf("%s destroyed by %s at %.2f m/s", dest.Kind, proj.Variant, speed)
	}
}

// classify matches a flying projectile/destructible pair in either order.
// Queued, loaded and dragged projectiles are not Dynamic and never deal
// damage. Any other pairing is not a gameplay contact.
func (c *Controller) classify(a, b donburi.Entity) (proj *components.ProjectileData, projBody physics.Body,
	dest *components.DestructibleData, destEntity donburi.Entity, ok bool) {
	if p, isProj := c.Projectile(a); isProj {
		if d, isDest := c.Destructible(b); isDest && inFlight(p) {
			return p, p.Body(), d, b, true
		}
		return
	}
	if p, isProj := c.Projectile(b); isProj {
		if d, isDest := c.Destructible(a); isDest && inFlight(p) {
			return p, p.Body(), d, a, true
		}
	}
	return
}

func inFlight(p *components.ProjectileData) bool {
	return !p.Disposed && p.Body().Type() == physics.Dynamic
}

// drainDestroyed removes everything queued during the last step. An entity
// reported more than once is removed once.
func (c *Controller) drainDestroyed() {
	if len(c.pending) == 0 {
		return
	}
	pending := c.pending
	c.pending = nil

	score := components.Score.Get(c.level)
	for _, e := range pending {
		d, ok := c.Destructible(e)
		if !ok || d.Removed {
			continue
		}
		kind := d.Kind
		d.Dispose(c.phys)
		c.world.Remove(e)

		switch kind {
		case cfg.KindTarget:
			score.TargetsDestroyed++
			score.Points += cfg.Score.TargetPoints
		default:
			score.StructuresDestroyed++
			score.Points += cfg.Score.StructurePoints
		}
	}
}
