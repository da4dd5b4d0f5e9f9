package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateProjectile adds a projectile waiting in the queue. Its body stays
// static until the launcher releases it.
func CreateProjectile(w donburi.World, phys physics.World, variant cfg.Variant, pos dmath.Vec2) *donburi.Entry {
	pc := cfg.Projectiles[variant]
	entry := archetypes.Projectile.Spawn(w)
	body := projectileBody(phys, entry.Entity(), physics.Static, pos, pc, pc.Density)
	components.Projectile.SetValue(entry, components.NewProjectileData(variant, body, pc.Density))
	return entry
}

// CreateClone adds an in-flight copy of parent. Clones cannot split again.
func CreateClone(w donburi.World, phys physics.World, parent *components.ProjectileData, pos, vel dmath.Vec2) *donburi.Entry {
	pc := cfg.Projectiles[parent.Variant]
	entry := archetypes.Clone.Spawn(w)
	body := projectileBody(phys, entry.Entity(), physics.Dynamic, pos, pc, parent.Density())
	body.SetLinearVelocity(vel)

	data := components.NewProjectileData(parent.Variant, body, parent.Density())
	data.IsClone = true
	data.SpecialAbilityUsed = true
	components.Projectile.SetValue(entry, data)
	return entry
}

func projectileBody(phys physics.World, e donburi.Entity, t physics.BodyType, pos dmath.Vec2,
	pc cfg.ProjectileTypeConfig, density float64) physics.Body {
	body := phys.CreateBody(physics.BodyDef{
		Type:          t,
		Position:      pos,
		LinearDamping: cfg.Physics.LinearDamping,
		Entity:        e,
		HasEntity:     true,
		Tags:          []string{tags.ResolvProjectile},
	})
	phys.AttachFixture(body, physics.FixtureDef{
		Shape:       physics.Circle(pc.Radius),
		Density:     density,
		Friction:    pc.Friction,
		Restitution: pc.Restitution,
	})
	return body
}
