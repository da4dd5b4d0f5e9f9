package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown projectile variant")

// LauncherState is the slingshot's position in its per-turn state machine.
type LauncherState int

const (
	LauncherEmpty    LauncherState = iota // No projectile loaded, queue may be exhausted
	LauncherLoaded                        // Projectile pinned at the anchor
	LauncherDragging                      // Player is pulling the band
	LauncherLaunched                      // Projectile in flight
)

func (s LauncherState) String() string {
	switch s {
	case LauncherEmpty:
		return "Empty"
	case LauncherLoaded:
		return "Loaded"
	case LauncherDragging:
		return "Dragging"
	case LauncherLaunched:
		return "Launched"
	}
	return fmt.Sprintf("LauncherState(%d)", int(s))
}

// Variant selects a projectile's special ability.
type Variant int

const (
	Standard Variant = iota
	SpeedBoost
	Splitter
	Shaker
)

var variantNames = map[Variant]string{
	Standard:   "standard",
	SpeedBoost: "speedboost",
	Splitter:   "splitter",
	Shaker:     "shaker",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a level file name to a Variant. Bird colours are
// accepted as aliases.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "red":
		return Standard, nil
	case "speedboost", "yellow":
		return SpeedBoost, nil
	case "splitter", "blue":
		return Splitter, nil
	case "shaker", "black":
		return Shaker, nil
	}
	return Standard, fmt.Errorf("%w %q", ErrUnknownVariant, s)
}

// DestructibleKind distinguishes structures from targets.
type DestructibleKind int

const (
	KindStructure DestructibleKind = iota
	KindTarget
)

func (k DestructibleKind) String() string {
	if k == KindTarget {
		return "target"
	}
	return "structure"
}

// Outcome is the result of a level.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "pending"
}
