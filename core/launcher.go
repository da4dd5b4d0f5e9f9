package core

import (
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Launcher is the slingshot. It loads projectiles from its queue one turn at
// a time, turns drag input into a launch, and hands the flight over to the
// Controller, which decides when the turn ends.
type Launcher struct {
	world donburi.World
	phys  physics.World

	anchor dmath.Vec2
	queue  []donburi.Entity

	current    donburi.Entity
	hasCurrent bool
	state      cfg.LauncherState

	dragStart   dmath.Vec2
	dragCurrent dmath.Vec2

	pullLimit      float64
	power          float64
	maxLaunchSpeed float64
	deadZone       float64
	activationHalf float64
}

// NewLauncher creates a launcher at anchor and loads the first projectile.
func NewLauncher(w donburi.World, phys physics.World, anchor dmath.Vec2, queue []donburi.Entity) *Launcher {
	l := &Launcher{
		world:          w,
		phys:           phys,
		anchor:         anchor,
		queue:          append([]donburi.Entity(nil), queue...),
		state:          cfg.LauncherEmpty,
		pullLimit:      cfg.Slingshot.PullLimit,
		power:          cfg.Slingshot.Power,
		maxLaunchSpeed: cfg.Slingshot.MaxLaunchSpeed,
		deadZone:       cfg.Slingshot.DeadZone,
		activationHalf: cfg.Slingshot.ActivationHalfSize,
	}
	l.loadNext()
	return l
}

func (l *Launcher) State() cfg.LauncherState {
	return l.state
}

func (l *Launcher) Anchor() dmath.Vec2 {
	return l.anchor
}

// CurrentProjectile returns the loaded or flying projectile.
func (l *Launcher) CurrentProjectile() (donburi.Entity, bool) {
	return l.current, l.hasCurrent
}

// HasMoreProjectiles is false once the last projectile's turn has ended.
func (l *Launcher) HasMoreProjectiles() bool {
	return l.hasCurrent || len(l.queue) > 0
}

// Remaining returns the number of projectiles still waiting in the queue.
func (l *Launcher) Remaining() int {
	return len(l.queue)
}

// Queue returns the waiting projectiles in firing order.
func (l *Launcher) Queue() []donburi.Entity {
	return l.queue
}

// DragPoints returns the band's anchor and the clamped pull point while a
// drag is in progress.
func (l *Launcher) DragPoints() (start, current dmath.Vec2, ok bool) {
	if l.state != cfg.LauncherDragging {
		return dmath.Vec2{}, dmath.Vec2{}, false
	}
	return l.dragStart, l.dragCurrent, true
}

// BeginDrag starts pulling the band if point is on the loaded projectile and
// near the anchor. It returns false, changing nothing, otherwise.
func (l *Launcher) BeginDrag(point dmath.Vec2) bool {
	if l.state != cfg.LauncherLoaded {
		return false
	}
	p := l.projectile()
	body := p.Body()

	lo, hi := body.Bounds()
	if point.X < lo.X || point.X > hi.X || point.Y < lo.Y || point.Y > hi.Y {
		return false
	}
	if !gamemath.InRect(point, l.anchor, l.activationHalf, l.activationHalf) {
		return false
	}

	body.SetType(physics.Kinematic)
	l.dragStart = l.anchor
	l.dragCurrent = gamemath.ClampPull(l.anchor, point, l.pullLimit)
	p.SetPosition(l.dragCurrent)
	l.state = cfg.LauncherDragging
	return true
}

// UpdateDrag moves the projectile with the band, never further than the pull
// limit from the anchor.
func (l *Launcher) UpdateDrag(point dmath.Vec2) bool {
	if l.state != cfg.LauncherDragging {
		return false
	}
	l.dragCurrent = gamemath.ClampPull(l.dragStart, point, l.pullLimit)
	l.projectile().SetPosition(l.dragCurrent)
	return true
}

// EndDrag releases the band at point and reports whether the projectile was
// launched. A pull shorter than the dead zone puts the projectile back.
func (l *Launcher) EndDrag(point dmath.Vec2) bool {
	if l.state != cfg.LauncherDragging {
		return false
	}
	l.UpdateDrag(point)

	if gamemath.Length(gamemath.Sub(l.dragCurrent, l.dragStart)) < l.deadZone {
		p := l.projectile()
		p.Body().SetType(physics.Static)
		p.SetPosition(l.anchor)
		l.clearDrag()
		l.state = cfg.LauncherLoaded
		return false
	}

	l.launch(gamemath.LaunchVelocity(l.dragStart, l.dragCurrent, l.power, l.maxLaunchSpeed))
	return true
}

func (l *Launcher) launch(vel dmath.Vec2) {
	if !l.hasCurrent || l.state != cfg.LauncherDragging {
		panic("launcher: launch without a loaded projectile")
	}
	p := l.projectile()
	body := p.Body()
	body.SetType(physics.Dynamic)
	body.SetLinearVelocity(vel)
	l.clearDrag()
	l.state = cfg.LauncherLaunched
	log.Printf("Launched %s at (%.2f, %.2f) m/s", p.Variant, vel.X, vel.Y)
}

func (l *Launcher) clearDrag() {
	l.dragStart = dmath.Vec2{}
	l.dragCurrent = dmath.Vec2{}
}

// loadNext pins the head of the queue to the anchor, or empties the launcher.
func (l *Launcher) loadNext() bool {
	l.hasCurrent = false
	l.clearDrag()
	if len(l.queue) == 0 {
		l.state = cfg.LauncherEmpty
		return false
	}
	l.current, l.queue = l.queue[0], l.queue[1:]
	l.hasCurrent = true

	p := l.projectile()
	p.Body().SetType(physics.Static)
	p.SetPosition(l.anchor)
	l.state = cfg.LauncherLoaded
	return true
}

// advance ends the current turn. The Controller disposes the finished
// projectile before calling it.
func (l *Launcher) advance() {
	if l.state == cfg.LauncherEmpty && len(l.queue) == 0 {
		return
	}
	l.loadNext()
}

func (l *Launcher) projectile() *components.ProjectileData {
	if !l.hasCurrent || !l.world.Valid(l.current) {
		panic("launcher: no current projectile")
	}
	return components.Projectile.Get(l.world.Entry(l.current))
}
