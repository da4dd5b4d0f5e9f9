package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the level by one fixed step per frame.
func UpdateSimulation(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	s.Controller.Tick(1.0 / float64(ebiten.TPS()))
	if s.Controller.Outcome() != cfg.OutcomePending {
		s.FinishedTicks++
	}
}
