package systems

import (
	"fmt"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// AttachLevelSelect stores the level grid, highlighting the card at start.
func AttachLevelSelect(e *ecs.ECS, cards []components.LevelCard, start int) *components.LevelSelectData {
	ent := e.World.Entry(e.World.Create(components.LevelSelect))
	components.LevelSelect.SetValue(ent, components.LevelSelectData{
		Cards:         cards,
		Columns:       cfg.Menu.Columns,
		SelectedIndex: max(0, min(start, len(cards)-1)),
	})
	return components.LevelSelect.Get(ent)
}

func getLevelSelect(e *ecs.ECS) (*components.LevelSelectData, bool) {
	ent, ok := components.LevelSelect.First(e.World)
	if !ok {
		return nil, false
	}
	return components.LevelSelect.Get(ent), true
}

// gridLeft centres the card grid on the screen.
func gridLeft(cols int) float64 {
	w := float64(cols)*cfg.Menu.CardSize + float64(cols-1)*cfg.Menu.CardGap
	return (float64(cfg.C.Width) - w) / 2
}

// NewUpdateLevelSelect creates the level select system. Locked levels cannot
// be started; Escape goes back.
func NewUpdateLevelSelect(sceneChanger SceneChanger, createLevelScene func(index int) interface{}, createBackScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		ls, ok := getLevelSelect(e)
		if !ok {
			return
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			sceneChanger.ChangeScene(createBackScene())
			return
		}

		switch {
		case leftPressed():
			ls.Move(-1, 0)
		case rightPressed():
			ls.Move(1, 0)
		case upPressed():
			ls.Move(0, -1)
		case downPressed():
			ls.Move(0, 1)
		}

		chosen := selectPressed()
		x, y := ebiten.CursorPosition()
		if i := cardAt(x, y, gridLeft(ls.Columns), cfg.Menu.GridStart, cfg.Menu.CardSize, cfg.Menu.CardGap, ls.Columns, len(ls.Cards)); i >= 0 {
			if cursorMoved() {
				ls.SelectedIndex = i
			}
			if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
				ls.SelectedIndex = i
				chosen = true
			}
		}

		if !chosen {
			return
		}
		if card, ok := ls.Selected(); ok {
			sceneChanger.ChangeScene(createLevelScene(card.Index))
		}
	}
}

// DrawLevelSelect renders the level cards with their lock state and stars.
func DrawLevelSelect(e *ecs.ECS, screen *ebiten.Image) {
	ls, ok := getLevelSelect(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	title := "Select Level"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Menu.TitleY)-60, cfg.Menu.TitleColor)

	size := cfg.Menu.CardSize
	left := gridLeft(ls.Columns)
	numberFont := fonts.Title.Get()
	nameFont := fonts.Small.Get()

	for i, card := range ls.Cards {
		col, row := i%ls.Columns, i/ls.Columns
		x := left + float64(col)*(size+cfg.Menu.CardGap)
		y := cfg.Menu.GridStart + float64(row)*(size+cfg.Menu.CardGap)

		textColor := cfg.Menu.TextColorNormal
		if !card.Unlocked {
			textColor = cfg.Menu.TextColorLocked
		}
		vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), cfg.Client.Overlay, false)
		if i == ls.SelectedIndex {
			vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 4, cfg.Menu.TextColorSelected, false)
		}

		label := fmt.Sprint(card.Number)
		if !card.Unlocked {
			label = "-"
		}
		bounds := text.BoundString(numberFont, label)
		text.Draw(screen, label, numberFont, int(x+(size-float64(bounds.Dx()))/2), int(y+size*0.5), textColor)

		nb := text.BoundString(nameFont, card.Name)
		text.Draw(screen, card.Name, nameFont, int(x+(size-float64(nb.Dx()))/2), int(y+size*0.72), textColor)

		for s := 0; s < 3; s++ {
			c := cfg.Client.StarEmpty
			if s < card.Stars {
				c = cfg.Client.Star
			}
			vector.FillCircle(screen, float32(x+size/2+float64(s-1)*28), float32(y+size*0.88), 9, c, true)
		}
	}

	hint := "Arrows: Navigate   Enter: Play   Esc: Back"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-24, cfg.Menu.TextColorNormal)
}
