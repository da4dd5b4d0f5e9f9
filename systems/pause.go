package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run BEFORE the systems wrapped with WithPauseCheck.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		pause.Toggle()
		return
	}
	if !pause.IsPaused {
		return
	}

	if upPressed() {
		pause.Move(-1)
	}
	if downPressed() {
		pause.Move(1)
	}

	selected := selectPressed()
	_, my := ebiten.CursorPosition()
	if i := itemAt(my, pauseStartY(), cfg.Pause.MenuItemHeight, cfg.Pause.MenuItemGap, len(cfg.Pause.MenuOptions)); i >= 0 {
		if cursorMoved() {
			pause.SelectedOption = components.PauseMenuOption(i)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			pause.SelectedOption = components.PauseMenuOption(i)
			selected = true
		}
	}
	if !selected {
		return
	}

	switch pause.SelectedOption {
	case components.PauseResume:
		pause.IsPaused = false
	case components.PauseRestart:
		if s, ok := GetSession(e); ok {
			s.Restart = true
		}
	case components.PauseLevels:
		if s, ok := GetSession(e); ok {
			s.ToLevels = true
		}
	}
}

func pauseStartY() float64 {
	total := float64(len(cfg.Pause.MenuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	return (float64(cfg.C.Height) - total) / 2
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	fontFace := fonts.Title.Get()
	startY := pauseStartY()
	for i, option := range cfg.Pause.MenuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)
		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		text.Draw(screen, option, fontFace, centerTextX(option, fontFace, width), int(y+cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-24, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{SelectedOption: components.PauseResume})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
