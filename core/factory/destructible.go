package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateStructure(w donburi.World, phys physics.World, spawn leveldata.DestructibleSpawn) *donburi.Entry {
	entry := archetypes.Structure.Spawn(w)
	body := destructibleBody(phys, entry.Entity(), spawn, cfg.Structure, physics.ShapeBox, tags.ResolvStructure)
	components.Destructible.SetValue(entry, components.NewDestructibleData(
		cfg.KindStructure, body, orDefault(spawn.MaxHealth, cfg.Structure.MaxHealth)))
	return entry
}

func CreateTarget(w donburi.World, phys physics.World, spawn leveldata.DestructibleSpawn) *donburi.Entry {
	entry := archetypes.Target.Spawn(w)
	body := destructibleBody(phys, entry.Entity(), spawn, cfg.Target, physics.ShapeCircle, tags.ResolvTarget)
	components.Destructible.SetValue(entry, components.NewDestructibleData(
		cfg.KindTarget, body, orDefault(spawn.MaxHealth, cfg.Target.MaxHealth)))
	return entry
}

func destructibleBody(phys physics.World, e donburi.Entity, spawn leveldata.DestructibleSpawn,
	tc cfg.DestructibleTypeConfig, kind physics.ShapeKind, tag string) physics.Body {
	width := orDefault(spawn.W, tc.Width)
	height := orDefault(spawn.H, tc.Height)

	shape := physics.Box(width, height)
	if kind == physics.ShapeCircle {
		shape = physics.Circle(width / 2)
	}

	body := phys.CreateBody(physics.BodyDef{
		Type:          physics.Dynamic,
		Position:      dmath.Vec2{X: spawn.X, Y: spawn.Y},
		LinearDamping: cfg.Physics.LinearDamping,
		Entity:        e,
		HasEntity:     true,
		Tags:          []string{tag},
	})
	phys.AttachFixture(body, physics.FixtureDef{
		Shape:       shape,
		Density:     tc.Density,
		Friction:    tc.Friction,
		Restitution: tc.Restitution,
	})
	return body
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
