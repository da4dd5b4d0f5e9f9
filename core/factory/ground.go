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

// CreateGround adds a static slab covering the field from y=0 up to groundY.
func CreateGround(w donburi.World, phys physics.World, width, groundY float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)
	body := phys.CreateBody(physics.BodyDef{
		Type:     physics.Static,
		Position: dmath.Vec2{X: width / 2, Y: groundY / 2},
		Tags:     []string{tags.ResolvSolid},
	})
	phys.AttachFixture(body, physics.FixtureDef{
		Shape:       physics.Box(width, groundY),
		Friction:    cfg.Field.GroundFriction,
		Restitution: cfg.Field.GroundRestitution,
	})
	components.Body.SetValue(ground, components.BodyData{Body: body})
	return ground
}
