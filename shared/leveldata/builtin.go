package leveldata

import (
	"fmt"

	"github.com/automoto/slingshot/config"
)

// Standard pieces. Pillars stand on the ground, planks rest on pillar tops.
const (
	groundY = 460

	pillarW, pillarH = 22, 110
	plankW, plankH   = 210, 22
	targetSize       = 40

	pillarY      = groundY + pillarH/2
	plankY       = groundY + pillarH + plankH/2
	upperPillarY = groundY + pillarH + plankH + pillarH/2
	upperPlankY  = groundY + 2*pillarH + plankH + plankH/2

	targetGroundY = groundY + targetSize/2
	targetFloor1Y = groundY + pillarH + plankH + targetSize/2
	targetFloor2Y = groundY + 2*(pillarH+plankH) + targetSize/2
)

func pillar(x float64, health float64, material string) DestructibleSpawn {
	return DestructibleSpawn{X: x, Y: pillarY, W: pillarW, H: pillarH, MaxHealth: health, Material: material}
}

func upperPillar(x float64, health float64, material string) DestructibleSpawn {
	return DestructibleSpawn{X: x, Y: upperPillarY, W: pillarW, H: pillarH, MaxHealth: health, Material: material}
}

func plank(x, y float64, health float64, material string) DestructibleSpawn {
	return DestructibleSpawn{X: x, Y: y, W: plankW, H: plankH, MaxHealth: health, Material: material}
}

func target(x, y, health float64) DestructibleSpawn {
	return DestructibleSpawn{X: x, Y: y, W: targetSize, H: targetSize, MaxHealth: health}
}

func base(number int) Level {
	return Level{
		Number:  number,
		Name:    fmt.Sprintf("Level %d", number),
		Width:   1600,
		Height:  900,
		GroundY: groundY,
		Anchor:  Point{X: 325, Y: 585},
	}
}

// Builtin returns one of the stock levels. Unknown numbers get a
// single-projectile practice level.
func Builtin(number int) Level {
	l := base(number)
	switch number {
	case 1:
		l.Projectiles = []config.Variant{config.Standard, config.Splitter, config.Shaker}
		l.Structures = []DestructibleSpawn{
			pillar(1000, 20, "stone"),
			pillar(1150, 20, "stone"),
			plank(1075, plankY, 15, "wood"),
		}
		l.Targets = []DestructibleSpawn{
			target(1075, targetGroundY, 75),
		}
	case 2:
		l.Projectiles = []config.Variant{config.SpeedBoost, config.Splitter}
		l.Structures = []DestructibleSpawn{
			pillar(1000, 15, "wood"),
			pillar(1150, 15, "wood"),
			pillar(1075, 20, "stone"),
			plank(1075, plankY, 20, "stone"),
		}
		l.Targets = []DestructibleSpawn{
			target(1040, targetGroundY, 75),
			target(1110, targetGroundY, 100),
			target(1030, targetFloor1Y, 100),
			target(1120, targetFloor1Y, 150),
		}
	case 3:
		l.Projectiles = []config.Variant{config.Standard, config.SpeedBoost, config.Splitter, config.Shaker}
		l.Structures = []DestructibleSpawn{
			pillar(1000, 20, "stone"),
			pillar(1150, 20, "stone"),
			pillar(1075, 20, "stone"),
			plank(1075, plankY, 15, "wood"),
			upperPillar(1000, 10, "glass"),
			upperPillar(1150, 10, "glass"),
			plank(1075, upperPlankY, 15, "wood"),
		}
		l.Targets = []DestructibleSpawn{
			target(1035, targetGroundY, 75),
			target(1115, targetGroundY, 75),
			target(1075, targetFloor1Y, 100),
			target(1075, targetFloor2Y, 150),
		}
	default:
		l.Name = "Practice"
		l.Projectiles = []config.Variant{config.Standard}
		l.Structures = []DestructibleSpawn{pillar(1000, 0, "wood")}
		l.Targets = []DestructibleSpawn{target(1060, targetGroundY, 0)}
	}
	return l
}

// BuiltinCount is the number of stock levels.
const BuiltinCount = 3
