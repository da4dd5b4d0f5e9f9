package core

import (
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

// maxScore is the score for clearing every piece with the first projectile.
func maxScore(level *leveldata.Level) int {
	s := cfg.Score
	return len(level.Structures)*s.StructurePoints +
		len(level.Targets)*s.TargetPoints +
		max(0, len(level.Projectiles)-1)*s.UnusedProjectileBonus
}

// Stars rates a winning score against the level's maximum. A win is always
// worth at least one star.
func Stars(points, maxPoints int) int {
	if maxPoints <= 0 {
		return 1
	}
	ratio := float64(points) / float64(maxPoints)
	switch {
	case ratio >= cfg.Score.ThreeStarFraction:
		return 3
	case ratio >= cfg.Score.TwoStarFraction:
		return 2
	}
	return 1
}

// TargetsLeft counts targets still in the world.
func (c *Controller) TargetsLeft() int {
	n := 0
	tags.Target.Each(c.world, func(*donburi.Entry) {
		n++
	})
	return n
}

// evaluateOutcome settles the level once: won when no target is left, lost
// when the launcher has nothing more to fire.
func (c *Controller) evaluateOutcome() {
	score := components.Score.Get(c.level)
	if score.Outcome != cfg.OutcomePending {
		return
	}

	switch {
	case c.TargetsLeft() == 0:
		unused := c.launcher.Remaining()
		if st := c.launcher.State(); st == cfg.LauncherLoaded || st == cfg.LauncherDragging {
			unused++
		}
		score.Points += unused * cfg.Score.UnusedProjectileBonus
		score.Outcome = cfg.OutcomeWon
		score.Stars = Stars(score.Points, components.Level.Get(c.level).MaxScore)
		log.Printf("Level won: %d points, %d stars", score.Points, score.Stars)
	case !c.launcher.HasMoreProjectiles():
		score.Outcome = cfg.OutcomeLost
		log.Printf("Level lost: %d points, %d targets left", score.Points, c.TargetsLeft())
	}
}
