package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

const (
	frameWidth = 8
	bandWidth  = 4
	forkSpread = 12
	healthBarH = 4
)

// toScreen converts a field point (y-up) into screen space, shaken by camera.
func toScreen(camera, p dmath.Vec2) (float32, float32) {
	return float32(p.X + camera.X), float32(float64(cfg.C.Height) - p.Y + camera.Y)
}

// DrawField renders the sky and the ground slab.
func DrawField(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	screen.Fill(cfg.Client.Background)

	level := s.Controller.Level()
	_, top := toScreen(s.Camera, dmath.Vec2{Y: level.GroundY})
	// Oversized so shaking never shows an edge.
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, -w, top, 3*w, 2*h, cfg.Client.Ground, false)
}

// DrawDestructibles renders structures as boxes and targets as circles, tinted
// once damaged.
func DrawDestructibles(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	components.Destructible.Each(e.World, func(entry *donburi.Entry) {
		d := components.Destructible.Get(entry)
		if d.Removed {
			return
		}
		typ := cfg.Structure
		if d.Kind == cfg.KindTarget {
			typ = cfg.Target
		}
		clr := typ.Color
		if d.Damaged {
			clr = typ.DamagedTint
		}

		lo, hi := d.Body().Bounds()
		x, y := toScreen(s.Camera, dmath.Vec2{X: lo.X, Y: hi.Y})
		w, h := float32(hi.X-lo.X), float32(hi.Y-lo.Y)

		if d.Kind == cfg.KindTarget {
			vector.FillCircle(screen, x+w/2, y+h/2, w/2, clr, true)
		} else {
			vector.FillRect(screen, x, y, w, h, clr, false)
		}

		if d.Damaged {
			ratio := float32(d.HealthPercentage() / 100)
			vector.FillRect(screen, x, y-2*healthBarH, w, healthBarH, cfg.Client.StarEmpty, false)
			vector.FillRect(screen, x, y-2*healthBarH, w*ratio, healthBarH, cfg.Client.Star, false)
		}
	})
}

// DrawLauncher renders the slingshot frame and, while dragging, the band.
func DrawLauncher(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	c := s.Controller
	l := c.Launcher()
	anchor := l.Anchor()

	ax, ay := toScreen(s.Camera, anchor)
	_, gy := toScreen(s.Camera, dmath.Vec2{Y: c.Level().GroundY})
	vector.StrokeLine(screen, ax, gy, ax, ay+forkSpread, frameWidth, cfg.Client.Frame, true)
	vector.StrokeLine(screen, ax, ay+forkSpread, ax-forkSpread, ay-forkSpread, frameWidth, cfg.Client.Frame, true)
	vector.StrokeLine(screen, ax, ay+forkSpread, ax+forkSpread, ay-forkSpread, frameWidth, cfg.Client.Frame, true)

	_, current, dragging := l.DragPoints()
	if !dragging {
		return
	}
	px, py := toScreen(s.Camera, current)
	vector.StrokeLine(screen, ax-forkSpread, ay-forkSpread, px, py, bandWidth, cfg.Client.Band, true)
	vector.StrokeLine(screen, ax+forkSpread, ay-forkSpread, px, py, bandWidth, cfg.Client.Band, true)
}

// DrawProjectiles renders every live projectile, queued or flying.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if p.Disposed {
			return
		}
		pc := cfg.Projectiles[p.Variant]
		x, y := toScreen(s.Camera, p.Position())
		vector.FillCircle(screen, x, y, float32(pc.Radius), pc.Color, true)
		if p.SpecialAbilityUsed && !p.IsClone {
			vector.StrokeCircle(screen, x, y, float32(pc.Radius), 2, cfg.Client.Star, true)
		}
	})
}
