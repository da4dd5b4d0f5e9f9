// Package physics is the rigid-body adapter the simulation consumes. Game code
// only sees the World and Body interfaces; the resolv-backed implementation
// lives behind NewWorld.
package physics

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodyType controls how the world moves a body.
type BodyType int

const (
	Static    BodyType = iota // never moves
	Kinematic                 // moved only by SetTransform / its own velocity
	Dynamic                   // integrated with gravity and contact response
)

func (t BodyType) String() string {
	switch t {
	case Kinematic:
		return "Kinematic"
	case Dynamic:
		return "Dynamic"
	}
	return "Static"
}

// ShapeKind identifies a fixture's geometry.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is a fixture outline centred on the body, sized in pixels.
type Shape struct {
	Kind ShapeKind
	W, H float64
}

// Box returns a w x h rectangle.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, W: w, H: h}
}

// Circle returns a circle of radius r. Collision uses its bounding square.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, W: 2 * r, H: 2 * r}
}

// area returns the shape's area in square meters.
func (s Shape) area(ppm float64) float64 {
	w, h := s.W/ppm, s.H/ppm
	if s.Kind == ShapeCircle {
		r := w / 2
		return math.Pi * r * r
	}
	return w * h
}

// FixtureDef describes the material attached to a body.
type FixtureDef struct {
	Shape       Shape
	Density     float64
	Friction    float64
	Restitution float64
}

// Fixture is a shape and material owned by a body.
type Fixture struct {
	FixtureDef
	body *rigidBody
}

// Body returns the body this fixture is attached to.
func (f *Fixture) Body() Body {
	return f.body
}

// BodyDef describes a body at creation time. Entity is stored as the body's
// tag so contacts can be mapped back to game entities without pointers.
type BodyDef struct {
	Type          BodyType
	Position      dmath.Vec2
	Angle         float64
	LinearDamping float64
	Entity        donburi.Entity
	HasEntity     bool
	Tags          []string
}

// Body is a handle to a simulated rigid body. Positions are pixels, velocities
// meters per second. Every method panics once the body has been destroyed.
type Body interface {
	Type() BodyType
	SetType(t BodyType)
	Position() dmath.Vec2
	Angle() float64
	SetTransform(pos dmath.Vec2, angle float64)
	LinearVelocity() dmath.Vec2
	SetLinearVelocity(v dmath.Vec2)
	AngularVelocity() float64
	ApplyLinearImpulse(impulse, point dmath.Vec2)
	SetDensity(d float64)
	Mass() float64
	Bounds() (min, max dmath.Vec2)
	Entity() (donburi.Entity, bool)
	Destroyed() bool
}

// ContactListener receives begin-contact events synchronously from Step.
// Implementations must not destroy bodies.
type ContactListener interface {
	BeginContact(a, b *Fixture)
}

// ContactListenerFunc adapts a function to ContactListener.
type ContactListenerFunc func(a, b *Fixture)

func (f ContactListenerFunc) BeginContact(a, b *Fixture) {
	f(a, b)
}

// World owns bodies and advances them in fixed steps.
type World interface {
	CreateBody(def BodyDef) Body
	AttachFixture(b Body, def FixtureDef) *Fixture
	DestroyBody(b Body)
	Step(dt float64)
	SetContactListener(l ContactListener)
	Stepping() bool
}
