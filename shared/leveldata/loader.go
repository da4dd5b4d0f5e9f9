package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/slingshot/config"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	groupGround      = "Ground"
	groupLauncher    = "Launcher"
	groupProjectiles = "Projectiles"
	groupStructures  = "Structures"
	groupTargets     = "Targets"
)

// LoadTMX parses a Tiled map into a Level. Tiled is y-down, so every
// position is flipped against the map height. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	level := &Level{
		Name:    strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:   mapW,
		Height:  mapH,
		GroundY: config.Field.GroundY,
		Anchor:  Point{X: config.Slingshot.AnchorX, Y: config.Slingshot.AnchorY},
	}

	type queued struct {
		order   int
		variant config.Variant
	}
	var projectiles []queued

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case groupGround:
				level.GroundY = mapH - o.Y
			case groupLauncher:
				level.Anchor = Point{X: o.X, Y: mapH - o.Y}
			case groupProjectiles:
				name := o.Properties.GetString("variant")
				if name == "" {
					name = o.Class
				}
				v, err := config.ParseVariant(name)
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
				}
				projectiles = append(projectiles, queued{order: o.Properties.GetInt("order"), variant: v})
			case groupStructures, groupTargets:
				spawn := DestructibleSpawn{
					X:         o.X + o.Width/2,
					Y:         mapH - (o.Y + o.Height/2),
					W:         o.Width,
					H:         o.Height,
					MaxHealth: o.Properties.GetFloat("maxHealth"),
					Material:  o.Properties.GetString("material"),
				}
				if og.Name == groupTargets {
					level.Targets = append(level.Targets, spawn)
				} else {
					level.Structures = append(level.Structures, spawn)
				}
			}
		}
	}

	sort.SliceStable(projectiles, func(i, j int) bool {
		return projectiles[i].order < projectiles[j].order
	})
	for _, q := range projectiles {
		level.Projectiles = append(level.Projectiles, q.variant)
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them keyed by stem name plus a sorted list of names. Levels are
// numbered in name order starting at 1.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	for i, name := range names {
		levels[name].Number = i + 1
	}
	return levels, names, nil
}
