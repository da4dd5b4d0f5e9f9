package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResultUI holds the buttons under the level summary.
type ResultUI struct {
	UI *ebitenui.UI

	OnRetry  func()
	OnNext   func()
	OnLevels func()

	nextBtn    *widget.Button
	buttonFace text.Face
}

// NewResultUI builds the button row. Next is only enabled when the level
// was won and another one follows.
func NewResultUI(canAdvance bool, onRetry, onNext, onLevels func()) *ResultUI {
	ui := &ResultUI{
		OnRetry:  onRetry,
		OnNext:   onNext,
		OnLevels: onLevels,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.nextBtn.GetWidget().Disabled = !canAdvance
	return ui
}

func (ui *ResultUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	ui.buttonFace = &text.GoTextFace{Source: fontSource, Size: 20}
}

func (ui *ResultUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Bottom: 120}
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	row.AddChild(ui.newButton("Levels", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnLevels != nil {
			ui.OnLevels()
		}
	}))
	row.AddChild(ui.newButton("Retry", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	ui.nextBtn = ui.newButton("Next level", color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnNext != nil {
			ui.OnNext()
		}
	})
	row.AddChild(ui.nextBtn)

	rootContainer.AddChild(row)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ResultUI) newButton(label string, base color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 40)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(base),
			Hover:    image.NewNineSliceColor(lighten(base, 20)),
			Pressed:  image.NewNineSliceColor(lighten(base, -15)),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.buttonFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 240, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func lighten(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(min(255, max(0, int(v)+d)))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

func (ui *ResultUI) Update() {
	ui.UI.Update()
}
