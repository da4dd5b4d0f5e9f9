package systems

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 16
	hudLineHeight = 24
)

// DrawHUD renders the level name, score, remaining projectiles and the
// ability hint in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	c := s.Controller
	l := c.Launcher()
	level := c.Level()
	score := c.Score()

	lines := []string{
		fmt.Sprintf("Level %d: %s", level.Number, level.Name),
		fmt.Sprintf("Score %d", score.Points),
		fmt.Sprintf("Targets left %d", c.TargetsLeft()),
		fmt.Sprintf("Projectiles %d", l.Remaining()),
	}
	if queue := l.Queue(); len(queue) > 0 {
		next := make([]string, 0, len(queue))
		for _, qe := range queue {
			if p, ok := c.Projectile(qe); ok {
				next = append(next, p.Variant.String())
			}
		}
		lines = append(lines, "Next: "+strings.Join(next, ", "))
	}
	if pe, ok := l.CurrentProjectile(); ok {
		if p, ok := c.Projectile(pe); ok {
			switch {
			case l.State() == cfg.LauncherLaunched && !p.SpecialAbilityUsed && p.Variant != cfg.Standard:
				lines = append(lines, fmt.Sprintf("Space: %s ability", p.Variant))
			case l.State() != cfg.LauncherLaunched:
				lines = append(lines, fmt.Sprintf("Loaded: %s", p.Variant))
			}
		}
	}

	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, cfg.Client.HUDText)
	}
	text.Draw(screen, "Drag to aim, R to restart, Esc to pause", fonts.Small.Get(),
		hudMargin, cfg.C.Height-hudMargin, cfg.Client.HUDText)
}
