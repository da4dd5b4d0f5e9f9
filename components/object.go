package components

import (
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
)

// BodyData holds the physics body of scenery entities such as the ground.
// Projectiles and destructibles own their body inside their own data.
type BodyData struct {
	physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
