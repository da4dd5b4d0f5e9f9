package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput turns mouse and keyboard input into launcher and ability calls.
// Must run BEFORE UpdateSimulation in the system order.
func UpdateInput(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Restart = true
		return
	}

	c := s.Controller
	l := c.Launcher()
	x, y := ebiten.CursorPosition()
	p := fieldPoint(x, y, s.Camera)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		l.BeginDrag(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		l.EndDrag(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		l.UpdateDrag(p)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		c.ActivateAbility()
	}
}

// fieldPoint converts a cursor position to field coordinates. The screen is
// y-down, the field y-up.
func fieldPoint(x, y int, camera dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: float64(x) - camera.X,
		Y: float64(cfg.C.Height) - (float64(y) - camera.Y),
	}
}
