package config

import "image/color"

// Config contains window-level settings for the client
type Config struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains rigid-body simulation settings
type PhysicsConfig struct {
	PixelsPerMeter float64
	Gravity        float64 // m/s^2, negative is down (y-up field)
	FixedTimestep  float64 // seconds per world step
	LinearDamping  float64
	CellSize       int // resolv broad-phase cell size in pixels

	// Contact resolution
	RestThreshold float64 // bounce speed (m/s) below which restitution is ignored
	FrictionScale float64 // tangential damping per second per unit friction

	// Turn advance
	MinMotion         float64 // per-axis speed (m/s) below which a projectile is at rest
	RestTicks         int     // consecutive resting steps before the turn ends
	AirborneThreshold float64 // |vy| (m/s) above which a projectile counts as airborne
}

// FieldConfig describes the playable area in pixels
type FieldConfig struct {
	Width   float64
	Height  float64
	GroundY float64 // top surface of the ground slab

	GroundFriction    float64
	GroundRestitution float64
}

// SlingshotConfig contains launcher tuning
type SlingshotConfig struct {
	AnchorX float64
	AnchorY float64

	PullLimit      float64 // max pull distance in pixels
	Power          float64 // launch speed per pixel of pull
	MaxLaunchSpeed float64 // m/s
	DeadZone       float64 // releases with a shorter pull are cancelled

	// Half-extent of the square around the anchor in which a drag may start
	ActivationHalfSize float64
}

// DamageConfig contains impact damage tuning
type DamageConfig struct {
	BaseDamage      float64
	SpeedMultiplier float64

	DamagedThreshold float64 // health fraction below which the damaged tier shows
}

// ProjectileTypeConfig contains per-variant projectile values
type ProjectileTypeConfig struct {
	Name        string
	Radius      float64
	Density     float64
	Friction    float64
	Restitution float64
	Color       color.RGBA
}

// AbilityConfig contains special ability tuning
type AbilityConfig struct {
	SpeedBoostFactor   float64
	SpeedBoostDensity  float64
	SplitCount         int
	SplitSpread        float64
	SplitSpeedStep     float64
	ShakeDuration      float64
	ShakeIntensity     float64
	ShakeEnvelopeFloor float64 // fraction of intensity the envelope decays to
}

// DestructibleTypeConfig contains per-kind defaults for structures and targets
type DestructibleTypeConfig struct {
	MaxHealth   float64
	Width       float64
	Height      float64
	Density     float64
	Friction    float64
	Restitution float64
	Color       color.RGBA
	DamagedTint color.RGBA
}

// ScoreConfig contains scoring values
type ScoreConfig struct {
	StructurePoints       int
	TargetPoints          int
	UnusedProjectileBonus int
	TwoStarFraction       float64
	ThreeStarFraction     float64
}

// ClientConfig contains presentation-only values
type ClientConfig struct {
	Background        color.RGBA
	Ground            color.RGBA
	Band              color.RGBA
	Frame             color.RGBA
	HUDText           color.RGBA
	HUDFontSize       float64
	Overlay           color.RGBA
	Star              color.RGBA
	StarEmpty         color.RGBA
	StarRevealSeconds float32
	ResultDelay       int // ticks between the outcome and the result screen
}

// MenuConfig contains title screen and level select values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorLocked   color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64

	// Level select grid
	Columns   int
	CardSize  float64
	CardGap   float64
	GridStart float64
}

// PauseConfig contains in-level pause menu values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

var C *Config
var Physics PhysicsConfig
var Field FieldConfig
var Slingshot SlingshotConfig
var Damage DamageConfig
var Ability AbilityConfig
var Projectiles map[Variant]ProjectileTypeConfig
var Structure DestructibleTypeConfig
var Target DestructibleTypeConfig
var Score ScoreConfig
var Client ClientConfig
var Menu MenuConfig
var Pause PauseConfig

func init() {
	C = &Config{
		Width:  1600,
		Height: 900,
		Title:  "Slingshot",
	}

	Physics = PhysicsConfig{
		PixelsPerMeter: 100,
		Gravity:        -9.8,
		FixedTimestep:  1.0 / 60.0,
		LinearDamping:  0.05,
		CellSize:       32,

		RestThreshold: 0.5,
		FrictionScale: 4.0,

		MinMotion:         0.1,
		RestTicks:         1,
		AirborneThreshold: 0.1,
	}

	Field = FieldConfig{
		Width:   1600,
		Height:  900,
		GroundY: 460,

		GroundFriction:    0.8,
		GroundRestitution: 0.2,
	}

	Slingshot = SlingshotConfig{
		AnchorX: 325,
		AnchorY: 585,

		PullLimit:      50,
		Power:          0.25,
		MaxLaunchSpeed: 14,
		DeadZone:       4,

		ActivationHalfSize: 120,
	}

	Damage = DamageConfig{
		BaseDamage:      10,
		SpeedMultiplier: 0.75,

		DamagedThreshold: 0.6,
	}

	Ability = AbilityConfig{
		SpeedBoostFactor:   2.0,
		SpeedBoostDensity:  1.5,
		SplitCount:         2,
		SplitSpread:        20,
		SplitSpeedStep:     0.2,
		ShakeDuration:      0.5,
		ShakeIntensity:     10,
		ShakeEnvelopeFloor: 0.2,
	}

	Projectiles = map[Variant]ProjectileTypeConfig{
		Standard: {
			Name:        "standard",
			Radius:      15,
			Density:     1.0,
			Friction:    0.5,
			Restitution: 0.3,
			Color:       color.RGBA{R: 214, G: 40, B: 40, A: 255},
		},
		SpeedBoost: {
			Name:        "speedboost",
			Radius:      15,
			Density:     0.7,
			Friction:    0.5,
			Restitution: 0.3,
			Color:       color.RGBA{R: 247, G: 208, B: 56, A: 255},
		},
		Splitter: {
			Name:        "splitter",
			Radius:      11,
			Density:     0.8,
			Friction:    0.5,
			Restitution: 0.3,
			Color:       color.RGBA{R: 70, G: 140, B: 230, A: 255},
		},
		Shaker: {
			Name:        "shaker",
			Radius:      18,
			Density:     1.5,
			Friction:    0.5,
			Restitution: 0.2,
			Color:       color.RGBA{R: 40, G: 40, B: 40, A: 255},
		},
	}

	Structure = DestructibleTypeConfig{
		MaxHealth:   50,
		Width:       22,
		Height:      110,
		Density:     0.6,
		Friction:    0.6,
		Restitution: 0.1,
		Color:       color.RGBA{R: 160, G: 110, B: 60, A: 255},
		DamagedTint: color.RGBA{R: 110, G: 75, B: 40, A: 255},
	}

	Target = DestructibleTypeConfig{
		MaxHealth:   75,
		Width:       40,
		Height:      40,
		Density:     0.5,
		Friction:    0.6,
		Restitution: 0.2,
		Color:       color.RGBA{R: 90, G: 200, B: 70, A: 255},
		DamagedTint: color.RGBA{R: 60, G: 140, B: 50, A: 255},
	}

	Score = ScoreConfig{
		StructurePoints:       500,
		TargetPoints:          5000,
		UnusedProjectileBonus: 10000,
		TwoStarFraction:       0.6,
		ThreeStarFraction:     0.85,
	}

	Client = ClientConfig{
		Background:        color.RGBA{R: 135, G: 196, B: 235, A: 255},
		Ground:            color.RGBA{R: 96, G: 140, B: 60, A: 255},
		Band:              color.RGBA{R: 80, G: 40, B: 20, A: 255},
		Frame:             color.RGBA{R: 120, G: 70, B: 30, A: 255},
		HUDText:           color.RGBA{R: 20, G: 20, B: 20, A: 255},
		HUDFontSize:       16,
		Overlay:           color.RGBA{R: 0, G: 0, B: 0, A: 170},
		Star:              color.RGBA{R: 250, G: 210, B: 40, A: 255},
		StarEmpty:         color.RGBA{R: 90, G: 90, B: 90, A: 255},
		StarRevealSeconds: 0.6,
		ResultDelay:       90,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 30, G: 60, B: 90, A: 255},
		TitleColor:        color.RGBA{R: 250, G: 210, B: 40, A: 255},
		TextColorNormal:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 150, B: 40, A: 255},
		TextColorLocked:   color.RGBA{R: 110, G: 110, B: 120, A: 255},
		TitleY:            220,
		MenuStartY:        340,
		MenuItemHeight:    40,
		MenuItemGap:       16,

		Columns:   5,
		CardSize:  160,
		CardGap:   32,
		GridStart: 260,
	}

	Pause = PauseConfig{
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 170},
		TextColorNormal:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 150, B: 40, A: 255},
		MenuItemHeight:    40,
		MenuItemGap:       16,
		MenuOptions:       []string{"Resume", "Restart", "Levels"},
	}
}
