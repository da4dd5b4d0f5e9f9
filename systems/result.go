package systems

import (
	"fmt"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	maxStars    = 3
	starRadius  = 36
	starSpacing = 110
)

// ResultData is the end-of-level summary shown by the result scene.
type ResultData struct {
	LevelName string
	Points    int
	Stars     int
	Won       bool
	NewBest   bool
	HasNext   bool

	// scales animate each earned star in, one after another.
	reveal []*gween.Tween
	scales []float32
}

var Result = donburi.NewComponentType[ResultData]()

// AttachResult stores the summary and prepares the star reveal.
func AttachResult(e *ecs.ECS, r ResultData) *ResultData {
	if r.Won {
		for i := 0; i < r.Stars; i++ {
			r.reveal = append(r.reveal, gween.New(0, 1, cfg.Client.StarRevealSeconds, ease.OutBack))
		}
		r.scales = make([]float32, r.Stars)
	}
	ent := e.World.Entry(e.World.Create(Result))
	Result.SetValue(ent, r)
	return Result.Get(ent)
}

func getResult(e *ecs.ECS) (*ResultData, bool) {
	ent, ok := Result.First(e.World)
	if !ok {
		return nil, false
	}
	return Result.Get(ent), true
}

// advanceReveal runs the first unfinished star tween.
func (r *ResultData) advanceReveal(dt float32) {
	for i, tw := range r.reveal {
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		r.scales[i] = v
		if done {
			r.reveal[i] = nil
		}
		return
	}
}

// NewUpdateResult creates the result screen system. Continue moves on to the
// next level after a win and retries otherwise; R always retries and Escape
// goes to the level select.
func NewUpdateResult(sceneChanger SceneChanger, createRetryScene, createNextScene, createLevelsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		r, ok := getResult(e)
		if !ok {
			return
		}
		r.advanceReveal(1 / float32(ebiten.TPS()))

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			sceneChanger.ChangeScene(createLevelsScene())
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			sceneChanger.ChangeScene(createRetryScene())
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if r.Won && r.HasNext {
				sceneChanger.ChangeScene(createNextScene())
				return
			}
			sceneChanger.ChangeScene(createRetryScene())
		}
	}
}

// DrawResult renders the outcome, score and stars over a dimmed screen.
func DrawResult(e *ecs.ECS, screen *ebiten.Image) {
	r, ok := getResult(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Client.Overlay, false)

	title := "Out of projectiles"
	if r.Won {
		title = "Level cleared!"
	}
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height*0.25), cfg.Client.Star)

	msg := fmt.Sprintf("%s: %d points", r.LevelName, r.Points)
	if r.NewBest {
		msg += " (new best)"
	}
	msgFont := fonts.HUD.Get()
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height*0.35), cfg.Client.Background)

	cy := float32(height * 0.5)
	for i := 0; i < maxStars; i++ {
		cx := float32(width/2) + float32(i-1)*starSpacing
		vector.FillCircle(screen, cx, cy, starRadius, cfg.Client.StarEmpty, true)
		if i < len(r.scales) && r.scales[i] > 0 {
			vector.FillCircle(screen, cx, cy, starRadius*r.scales[i], cfg.Client.Star, true)
		}
	}

	hint := "Press Enter to retry"
	if r.Won && r.HasNext {
		hint = "Press Enter for the next level, R to retry"
	}
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height*0.65), cfg.Client.Background)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
