package systems

import (
	"os"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MenuActions builds the scene for each title screen entry.
type MenuActions struct {
	Continue func() interface{}
	Levels   func() interface{}
	NewGame  func() interface{}
}

// AttachMenu stores the title screen state with the given entries.
func AttachMenu(e *ecs.ECS, options []components.MainMenuOption) *components.MenuData {
	ent := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(ent, components.MenuData{VisibleOptions: options})
	return components.Menu.Get(ent)
}

func getMenu(e *ecs.ECS) (*components.MenuData, bool) {
	ent, ok := components.Menu.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Menu.Get(ent), true
}

// NewUpdateMenu creates the title screen system.
func NewUpdateMenu(sceneChanger SceneChanger, actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		menu, ok := getMenu(e)
		if !ok || len(menu.VisibleOptions) == 0 {
			return
		}

		if upPressed() {
			menu.Move(-1)
		}
		if downPressed() {
			menu.Move(1)
		}

		selected := selectPressed()
		_, my := ebiten.CursorPosition()
		if i := itemAt(my, cfg.Menu.MenuStartY, cfg.Menu.MenuItemHeight, cfg.Menu.MenuItemGap, len(menu.VisibleOptions)); i >= 0 {
			if cursorMoved() {
				menu.SelectedIndex = i
			}
			if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
				menu.SelectedIndex = i
				selected = true
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(0)
		}
		if !selected {
			return
		}

		option, _ := menu.Selected()
		switch option {
		case components.MainMenuContinue:
			sceneChanger.ChangeScene(actions.Continue())
		case components.MainMenuLevels:
			sceneChanger.ChangeScene(actions.Levels())
		case components.MainMenuNewGame:
			sceneChanger.ChangeScene(actions.NewGame())
		case components.MainMenuExit:
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu, ok := getMenu(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	title := "SLINGSHOT"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.HUD.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		label := option.String()
		text.Draw(screen, label, menuFont, centerTextX(label, menuFont, width), int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Exit"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-24, cfg.Menu.TextColorNormal)
}
