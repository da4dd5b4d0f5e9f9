package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/slingshot/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelFS exposes the embedded Tiled maps.
func LevelFS() fs.FS {
	return assetFS
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LoadLevels returns the built-in levels followed by every embedded TMX map,
// numbered in play order.
func (l *LevelLoader) LoadLevels() ([]*leveldata.Level, error) {
	levels := make([]*leveldata.Level, 0, leveldata.BuiltinCount)
	for i := 1; i <= leveldata.BuiltinCount; i++ {
		level := leveldata.Builtin(i)
		levels = append(levels, &level)
	}

	byName, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("load embedded levels: %w", err)
	}
	for _, name := range names {
		level := byName[name]
		level.Number = len(levels) + 1
		levels = append(levels, level)
	}
	return levels, nil
}

func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
