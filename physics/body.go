package physics

import (
	"fmt"
	"math"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type rigidBody struct {
	world *ResolvWorld
	id    uint64

	typ     BodyType
	pos     dmath.Vec2 // centre, pixels
	angle   float64
	vel     dmath.Vec2 // m/s
	angVel  float64
	damping float64

	fixtures []*Fixture
	mass     float64
	invMass  float64
	inertia  float64

	entity    donburi.Entity
	hasEntity bool
	tags      []string

	// obj is the broad-phase proxy, created with the first fixture.
	obj       *resolv.Object
	destroyed bool
}

func (b *rigidBody) mustLive(op string) {
	if b.destroyed {
		panic(fmt.Sprintf("physics: %s on destroyed body %d", op, b.id))
	}
}

func (b *rigidBody) Type() BodyType {
	b.mustLive("Type")
	return b.typ
}

func (b *rigidBody) SetType(t BodyType) {
	b.mustLive("SetType")
	if b.typ == t {
		return
	}
	b.typ = t
	if t == Static {
		b.vel = dmath.Vec2{}
		b.angVel = 0
	}
	b.updateMass()
}

func (b *rigidBody) Position() dmath.Vec2 {
	b.mustLive("Position")
	return b.pos
}

func (b *rigidBody) Angle() float64 {
	b.mustLive("Angle")
	return b.angle
}

func (b *rigidBody) SetTransform(pos dmath.Vec2, angle float64) {
	b.mustLive("SetTransform")
	b.pos = pos
	b.angle = angle
	b.syncProxy()
}

func (b *rigidBody) LinearVelocity() dmath.Vec2 {
	b.mustLive("LinearVelocity")
	return b.vel
}

func (b *rigidBody) SetLinearVelocity(v dmath.Vec2) {
	b.mustLive("SetLinearVelocity")
	if b.typ == Static {
		return
	}
	b.vel = v
}

func (b *rigidBody) AngularVelocity() float64 {
	b.mustLive("AngularVelocity")
	return b.angVel
}

// ApplyLinearImpulse changes velocity by impulse/mass. An off-centre point
// also spins the body. Only dynamic bodies respond.
func (b *rigidBody) ApplyLinearImpulse(impulse, point dmath.Vec2) {
	b.mustLive("ApplyLinearImpulse")
	if b.typ != Dynamic {
		return
	}
	b.vel = gamemath.Add(b.vel, gamemath.Scale(impulse, b.invMass))
	if b.inertia > 0 {
		r := gamemath.Scale(gamemath.Sub(point, b.pos), 1/b.world.ppm)
		b.angVel += (r.X*impulse.Y - r.Y*impulse.X) / b.inertia
	}
}

// SetDensity re-applies d to every fixture and recomputes mass.
func (b *rigidBody) SetDensity(d float64) {
	b.mustLive("SetDensity")
	for _, f := range b.fixtures {
		f.Density = d
	}
	b.updateMass()
}

func (b *rigidBody) Mass() float64 {
	b.mustLive("Mass")
	return b.mass
}

func (b *rigidBody) Bounds() (min, max dmath.Vec2) {
	b.mustLive("Bounds")
	return b.aabb()
}

func (b *rigidBody) Entity() (donburi.Entity, bool) {
	b.mustLive("Entity")
	return b.entity, b.hasEntity
}

func (b *rigidBody) Destroyed() bool {
	return b.destroyed
}

func (b *rigidBody) size() (w, h float64) {
	for _, f := range b.fixtures {
		w = math.Max(w, f.Shape.W)
		h = math.Max(h, f.Shape.H)
	}
	return w, h
}

func (b *rigidBody) aabb() (min, max dmath.Vec2) {
	w, h := b.size()
	return dmath.Vec2{X: b.pos.X - w/2, Y: b.pos.Y - h/2},
		dmath.Vec2{X: b.pos.X + w/2, Y: b.pos.Y + h/2}
}

func (b *rigidBody) updateMass() {
	b.mass, b.invMass, b.inertia = 0, 0, 0
	if b.typ != Dynamic {
		return
	}
	ppm := b.world.ppm
	for _, f := range b.fixtures {
		m := f.Density * f.Shape.area(ppm)
		b.mass += m
		w, h := f.Shape.W/ppm, f.Shape.H/ppm
		if f.Shape.Kind == ShapeCircle {
			b.inertia += m * (w / 2) * (w / 2) / 2
		} else {
			b.inertia += m * (w*w + h*h) / 12
		}
	}
	if b.mass <= 0 {
		b.mass = 1
	}
	b.invMass = 1 / b.mass
}

// syncProxy moves the broad-phase object to the body, padded by the contact
// slop so resting neighbours keep sharing a cell.
func (b *rigidBody) syncProxy() {
	if b.obj == nil {
		return
	}
	w, h := b.size()
	slop := b.world.slop
	b.obj.X = b.pos.X - w/2 - slop
	b.obj.Y = b.pos.Y - h/2 - slop
	b.obj.W = w + 2*slop
	b.obj.H = h + 2*slop
	b.obj.Update()
}

func (b *rigidBody) integrate(dt, gravity float64) {
	switch b.typ {
	case Static:
		return
	case Kinematic:
		b.pos.X += b.vel.X * dt * b.world.ppm
		b.pos.Y += b.vel.Y * dt * b.world.ppm
		b.angle += b.angVel * dt
		return
	}
	var dx, dy float64
	b.vel.X, dx = gamemath.Integrate(b.vel.X, 0, b.damping, dt)
	b.vel.Y, dy = gamemath.Integrate(b.vel.Y, gravity, b.damping, dt)
	b.pos.X += dx * b.world.ppm
	b.pos.Y += dy * b.world.ppm
	b.angVel *= math.Max(0, 1-b.damping*dt)
	b.angle += b.angVel * dt
}

func (b *rigidBody) material() (friction, restitution float64) {
	if len(b.fixtures) == 0 {
		return 0, 0
	}
	return b.fixtures[0].Friction, b.fixtures[0].Restitution
}
