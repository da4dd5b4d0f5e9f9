package tags

import "github.com/yohamta/donburi"

var (
	Projectile = donburi.NewTag().SetName("Projectile")
	Clone      = donburi.NewTag().SetName("Clone")
	Structure  = donburi.NewTag().SetName("Structure")
	Target     = donburi.NewTag().SetName("Target")
	Ground     = donburi.NewTag().SetName("Ground")
)

// Resolv tags for the physics broad phase
const (
	ResolvSolid      = "solid"
	ResolvProjectile = "projectile"
	ResolvStructure  = "structure"
	ResolvTarget     = "target"
)
