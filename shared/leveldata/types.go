// Package leveldata describes slingshot levels: the field, the launcher, the
// projectile queue and the destructibles. It has no dependencies on
// ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/slingshot/config"
)

var (
	ErrNoProjectiles = errors.New("level has no projectiles")
	ErrNoTargets     = errors.New("level has no targets")
)

// Point is a position in field coordinates (pixels, y-up).
type Point struct {
	X, Y float64
}

// DestructibleSpawn places a structure or target. X and Y are the centre.
// Zero size or health means the kind's default.
type DestructibleSpawn struct {
	X, Y      float64
	W, H      float64
	MaxHealth float64
	Material  string
}

// Level is everything needed to set up a round.
type Level struct {
	Number  int
	Name    string
	Width   float64
	Height  float64
	GroundY float64
	Anchor  Point

	// Projectiles fire in order.
	Projectiles []config.Variant
	Structures  []DestructibleSpawn
	Targets     []DestructibleSpawn
}

// Validate reports levels that cannot be played.
func (l *Level) Validate() error {
	if len(l.Projectiles) == 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoProjectiles)
	}
	if len(l.Targets) == 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoTargets)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %q: invalid size %vx%v", l.Name, l.Width, l.Height)
	}
	return nil
}
