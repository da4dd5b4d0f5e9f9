package scenes

import (
	"sync"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lets the player pick any unlocked level.
type LevelSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	once         sync.Once
}

func NewLevelSelectScene(sc SceneChanger, campaign *Campaign) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, campaign: campaign}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelScene := func(index int) interface{} {
		if !ls.campaign.Select(index) {
			return ls
		}
		return NewLevelScene(ls.sceneChanger, ls.campaign, index)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ls.sceneChanger, ls.campaign)
	}

	systems.AttachLevelSelect(ls.ecs, ls.campaign.LevelCards(), ls.campaign.StartIndex())
	ls.ecs.AddSystem(systems.NewUpdateLevelSelect(ls.sceneChanger, createLevelScene, createMenuScene))
	ls.ecs.AddRenderer(layerDefault, systems.DrawLevelSelect)
}
