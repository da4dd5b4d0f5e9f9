package scenes

import (
	"sync"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene plays one level of the campaign.
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	index        int
	once         sync.Once
}

func NewLevelScene(sc SceneChanger, campaign *Campaign, index int) *LevelScene {
	return &LevelScene{sceneChanger: sc, campaign: campaign, index: index}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	s, ok := systems.GetSession(ls.ecs)
	if !ok {
		return
	}
	if s.Restart {
		ls.sceneChanger.ChangeScene(NewLevelScene(ls.sceneChanger, ls.campaign, ls.index))
		return
	}
	if s.ToLevels {
		ls.sceneChanger.ChangeScene(NewLevelSelectScene(ls.sceneChanger, ls.campaign))
		return
	}
	if s.FinishedTicks >= cfg.Client.ResultDelay {
		score := s.Controller.Score()
		improved := ls.campaign.Record(ls.index, score)
		ls.sceneChanger.ChangeScene(NewResultScene(ls.sceneChanger, ls.campaign, ls.index, score, improved))
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Client.Background)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	level := ls.campaign.Levels[ls.index]
	controller, err := core.NewController(physics.NewWorld(physics.DefaultOptions()), level)
	if err != nil {
		panic("failed to set up level: " + err.Error())
	}

	// The scene's ECS runs on the controller's world so renderers can query
	// the simulation's entities directly.
	ecs := ecs.NewECS(controller.World())
	systems.AttachSession(ecs, controller)

	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateInput))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(layerDefault, systems.DrawField)
	ecs.AddRenderer(layerDefault, systems.DrawLauncher)
	ecs.AddRenderer(layerDefault, systems.DrawDestructibles)
	ecs.AddRenderer(layerDefault, systems.DrawProjectiles)
	ecs.AddRenderer(layerDefault, systems.DrawHUD)
	ecs.AddRenderer(layerDefault, systems.DrawPause)

	ls.ecs = ecs
}
