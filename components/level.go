package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Number  int
	Name    string
	Width   float64
	Height  float64
	GroundY float64

	// MaxScore is the score for destroying everything with no projectile used.
	MaxScore int
}

type ScoreData struct {
	Points              int
	Stars               int
	Outcome             cfg.Outcome
	StructuresDestroyed int
	TargetsDestroyed    int
	ProjectilesFired    int
}

var Level = donburi.NewComponentType[LevelData]()
var Score = donburi.NewComponentType[ScoreData]()
