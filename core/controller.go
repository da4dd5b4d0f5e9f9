package core

import (
	"fmt"
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core/factory"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controller runs one level: it steps the physics world, turns contacts into
// damage, removes destroyed entities once the step is over, and ends turns.
// It is not safe for concurrent use; one goroutine owns it.
type Controller struct {
	world    donburi.World
	phys     physics.World
	launcher *Launcher
	level    *donburi.Entry

	width float64

	// pending holds destructibles destroyed during the current step. It is
	// drained after Step returns.
	pending []donburi.Entity

	restTicks int
	ticks     int
}

var _ physics.ContactListener = (*Controller)(nil)
var _ components.CloneSpawner = (*Controller)(nil)

// NewController builds the level into a fresh entity world on top of phys
// and loads the first projectile.
func NewController(phys physics.World, level *leveldata.Level) (*Controller, error) {
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("setup level: %w", err)
	}

	c := &Controller{
		world: donburi.NewWorld(),
		phys:  phys,
		width: level.Width,
	}
	phys.SetContactListener(c)

	c.level = factory.CreateLevel(c.world, level, maxScore(level))
	factory.CreateGround(c.world, phys, level.Width, level.GroundY)
	for _, s := range level.Structures {
		factory.CreateStructure(c.world, phys, s)
	}
	for _, t := range level.Targets {
		factory.CreateTarget(c.world, phys, t)
	}

	queue := make([]donburi.Entity, 0, len(level.Projectiles))
	for i, v := range level.Projectiles {
		pos := dmath.Vec2{
			X: max(20, level.Anchor.X-80-float64(i)*45),
			Y: level.GroundY + cfg.Projectiles[v].Radius,
		}
		queue = append(queue, factory.CreateProjectile(c.world, phys, v, pos).Entity())
	}

	anchor := dmath.Vec2{X: level.Anchor.X, Y: level.Anchor.Y}
	c.launcher = NewLauncher(c.world, phys, anchor, queue)

	log.Printf("Level %q ready: %d projectiles, %d structures, %d targets",
		level.Name, len(level.Projectiles), len(level.Structures), len(level.Targets))
	return c, nil
}

func (c *Controller) World() donburi.World {
	return c.world
}

func (c *Controller) Launcher() *Launcher {
	return c.launcher
}

func (c *Controller) Ticks() int {
	return c.ticks
}

func (c *Controller) Level() components.LevelData {
	return *components.Level.Get(c.level)
}

func (c *Controller) Score() components.ScoreData {
	return *components.Score.Get(c.level)
}

func (c *Controller) Outcome() cfg.Outcome {
	return components.Score.Get(c.level).Outcome
}

// Projectile looks up a live projectile.
func (c *Controller) Projectile(e donburi.Entity) (*components.ProjectileData, bool) {
	if !c.world.Valid(e) {
		return nil, false
	}
	entry := c.world.Entry(e)
	if !entry.HasComponent(components.Projectile) {
		return nil, false
	}
	return components.Projectile.Get(entry), true
}

// Destructible looks up a live structure or target.
func (c *Controller) Destructible(e donburi.Entity) (*components.DestructibleData, bool) {
	if !c.world.Valid(e) {
		return nil, false
	}
	entry := c.world.Entry(e)
	if !entry.HasComponent(components.Destructible) {
		return nil, false
	}
	return components.Destructible.Get(entry), true
}

// Tick advances the level by one fixed physics step. dt is the real elapsed
// time and only drives timers.
func (c *Controller) Tick(dt float64) {
	c.phys.Step(cfg.Physics.FixedTimestep)
	c.drainDestroyed()
	c.removeStrayClones()
	c.evaluateTurn()
	c.updateShakes(dt)
	c.evaluateOutcome()
	c.ticks++
}

// ActivateAbility fires the flying projectile's special ability. It only
// works once per flight and only while the projectile is airborne.
func (c *Controller) ActivateAbility() bool {
	if c.launcher.State() != cfg.LauncherLaunched {
		return false
	}
	e, ok := c.launcher.CurrentProjectile()
	if !ok {
		return false
	}
	p, ok := c.Projectile(e)
	if !ok || p.Disposed || p.SpecialAbilityUsed {
		return false
	}
	if p.Body().Type() != physics.Dynamic || !gamemath.Airborne(p.Velocity().Y, cfg.Physics.AirborneThreshold) {
		return false
	}

	clones := p.ActivateSpecialAbility(c)
	if !p.SpecialAbilityUsed {
		return false
	}
	log.Printf("%s ability activated (%d clones)", p.Variant, len(clones))
	return true
}

// SpawnClone creates a Splitter clone. The parent keeps the entity in its
// Clones list and the Controller disposes it with the parent.
func (c *Controller) SpawnClone(parent *components.ProjectileData, pos, vel dmath.Vec2) donburi.Entity {
	return factory.CreateClone(c.world, c.phys, parent, pos, vel).Entity()
}

// evaluateTurn ends the flight once the projectile has left the field or
// has been at rest for RestTicks steps (one by default: the first slow step
// ends the turn). Leaving the field wins over motion.
func (c *Controller) evaluateTurn() {
	if c.launcher.State() != cfg.LauncherLaunched {
		return
	}
	e, ok := c.launcher.CurrentProjectile()
	if !ok {
		return
	}
	p, ok := c.Projectile(e)
	if !ok {
		c.launcher.advance()
		return
	}

	pos, vel := p.Position(), p.Velocity()
	reason := ""
	switch {
	case gamemath.OutOfBounds(pos.X, pos.Y, c.width):
		reason = "left the field"
	case gamemath.AtRest(vel.X, vel.Y, cfg.Physics.MinMotion):
		c.restTicks++
		if c.restTicks < cfg.Physics.RestTicks {
			return
		}
		reason = "came to rest"
	default:
		c.restTicks = 0
		return
	}

	log.Printf("%s projectile %s at (%.0f, %.0f)", p.Variant, reason, pos.X, pos.Y)
	components.Score.Get(c.level).ProjectilesFired++
	c.retireProjectile(e)
	c.restTicks = 0
	c.launcher.advance()
}

// retireProjectile disposes a projectile and every clone it spawned.
func (c *Controller) retireProjectile(e donburi.Entity) {
	p, ok := c.Projectile(e)
	if !ok {
		return
	}
	for _, clone := range p.Clones {
		c.disposeProjectile(clone)
	}
	p.Clones = nil
	c.disposeProjectile(e)
}

func (c *Controller) disposeProjectile(e donburi.Entity) {
	p, ok := c.Projectile(e)
	if !ok {
		return
	}
	p.Dispose(c.phys)
	c.world.Remove(e)
}

// removeStrayClones drops clones of the flying projectile that left the field.
func (c *Controller) removeStrayClones() {
	e, ok := c.launcher.CurrentProjectile()
	if !ok {
		return
	}
	p, ok := c.Projectile(e)
	if !ok || len(p.Clones) == 0 {
		return
	}
	kept := p.Clones[:0]
	for _, clone := range p.Clones {
		cp, ok := c.Projectile(clone)
		if !ok {
			continue
		}
		pos := cp.Position()
		if gamemath.OutOfBounds(pos.X, pos.Y, c.width) {
			c.disposeProjectile(clone)
			continue
		}
		kept = append(kept, clone)
	}
	p.Clones = kept
}

func (c *Controller) updateShakes(dt float64) {
	components.Projectile.Each(c.world, func(entry *donburi.Entry) {
		components.Projectile.Get(entry).UpdateShake(dt)
	})
}
