package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel adds the level singleton holding metadata and the score.
func CreateLevel(w donburi.World, level *leveldata.Level, maxScore int) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		Number:   level.Number,
		Name:     level.Name,
		Width:    level.Width,
		Height:   level.Height,
		GroundY:  level.GroundY,
		MaxScore: maxScore,
	})
	components.Score.SetValue(entry, components.ScoreData{})
	return entry
}
