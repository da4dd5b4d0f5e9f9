package scenes

import (
	"sync"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene shows the outcome of a level and its stars
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	index        int
	score        components.ScoreData
	newBest      bool
	once         sync.Once

	resultUI *ui.ResultUI
	choice   func() interface{}
}

func NewResultScene(sc SceneChanger, campaign *Campaign, index int, score components.ScoreData, newBest bool) *ResultScene {
	return &ResultScene{sceneChanger: sc, campaign: campaign, index: index, score: score, newBest: newBest}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
	rs.resultUI.Update()

	if rs.choice != nil {
		rs.sceneChanger.ChangeScene(rs.choice())
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Client.Background)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
	rs.resultUI.UI.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createRetryScene := func() interface{} {
		return NewLevelScene(rs.sceneChanger, rs.campaign, rs.index)
	}
	createNextScene := func() interface{} {
		return NewLevelScene(rs.sceneChanger, rs.campaign, rs.index+1)
	}
	createLevelsScene := func() interface{} {
		return NewLevelSelectScene(rs.sceneChanger, rs.campaign)
	}

	won := rs.score.Outcome == cfg.OutcomeWon
	hasNext := rs.campaign.HasNext(rs.index)

	systems.AttachResult(rs.ecs, systems.ResultData{
		LevelName: rs.campaign.Levels[rs.index].Name,
		Points:    rs.score.Points,
		Stars:     rs.score.Stars,
		Won:       won,
		NewBest:   rs.newBest,
		HasNext:   hasNext,
	})

	// Button handlers only record the choice; Update applies it.
	rs.resultUI = ui.NewResultUI(won && hasNext,
		func() { rs.choice = createRetryScene },
		func() { rs.choice = createNextScene },
		func() { rs.choice = createLevelsScene },
	)

	rs.ecs.AddSystem(systems.NewUpdateResult(rs.sceneChanger, createRetryScene, createNextScene, createLevelsScene))
	rs.ecs.AddRenderer(layerDefault, systems.DrawResult)
}
