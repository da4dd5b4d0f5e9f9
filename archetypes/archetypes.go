package archetypes

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Structure = newArchetype(
		tags.Structure,
		components.Destructible,
	)
	Target = newArchetype(
		tags.Target,
		components.Destructible,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Clone = newArchetype(
		tags.Projectile,
		tags.Clone,
		components.Projectile,
	)
	Level = newArchetype(
		components.Level,
		components.Score,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
