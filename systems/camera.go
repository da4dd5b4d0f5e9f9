package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies the screen shake of every shaking projectile.
func UpdateCamera(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}

	var offset dmath.Vec2
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if p.Disposed || !p.Shake.Active {
			return
		}
		offset = gamemath.Add(offset, p.CurrentShakeOffset())
	})
	s.Camera = offset
}
