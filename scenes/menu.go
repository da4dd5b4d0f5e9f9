package scenes

import (
	"sync"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	once         sync.Once
}

func NewMenuScene(sc SceneChanger, campaign *Campaign) *MenuScene {
	return &MenuScene{sceneChanger: sc, campaign: campaign}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	actions := systems.MenuActions{
		Continue: func() interface{} {
			return NewLevelScene(ms.sceneChanger, ms.campaign, ms.campaign.StartIndex())
		},
		Levels: func() interface{} {
			return NewLevelSelectScene(ms.sceneChanger, ms.campaign)
		},
		NewGame: func() interface{} {
			ms.campaign.NewGame()
			return NewLevelScene(ms.sceneChanger, ms.campaign, 0)
		},
	}

	systems.AttachMenu(ms.ecs, components.MainMenuOptions(ms.campaign.HasProgress()))
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, actions))
	ms.ecs.AddRenderer(layerDefault, systems.DrawMenu)
}
