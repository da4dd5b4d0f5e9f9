package systems

import (
	"github.com/automoto/slingshot/core"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SessionData links the running level to the client systems.
type SessionData struct {
	Controller *core.Controller

	// Restart and ToLevels are set by input and handled by the scene.
	Restart  bool
	ToLevels bool

	// Camera is the screen offset applied to everything drawn in the field.
	Camera dmath.Vec2

	// FinishedTicks counts frames since the level was decided.
	FinishedTicks int
}

var Session = donburi.NewComponentType[SessionData]()

// AttachSession stores the controller as a singleton in the ECS world.
func AttachSession(e *ecs.ECS, c *core.Controller) *SessionData {
	ent := e.World.Entry(e.World.Create(Session))
	Session.SetValue(ent, SessionData{Controller: c})
	return Session.Get(ent)
}

func GetSession(e *ecs.ECS) (*SessionData, bool) {
	ent, ok := Session.First(e.World)
	if !ok {
		return nil, false
	}
	return Session.Get(ent), true
}
