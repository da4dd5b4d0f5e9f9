package physics

import (
	"fmt"
	"log"
	"math"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Options configures a ResolvWorld.
type Options struct {
	Width, Height  float64 // broad-phase area in pixels
	CellSize       int
	PixelsPerMeter float64
	Gravity        float64
	RestThreshold  float64
	FrictionScale  float64
	ContactSlop    float64 // pixels
}

// DefaultOptions derives world options from the global config.
func DefaultOptions() Options {
	return Options{
		Width:          cfg.Field.Width,
		Height:         cfg.Field.Height,
		CellSize:       cfg.Physics.CellSize,
		PixelsPerMeter: cfg.Physics.PixelsPerMeter,
		Gravity:        cfg.Physics.Gravity,
		RestThreshold:  cfg.Physics.RestThreshold,
		FrictionScale:  cfg.Physics.FrictionScale,
		ContactSlop:    1,
	}
}

type pairKey struct{ a, b uint64 }

func makePair(a, b uint64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// ResolvWorld is a small impulse-based rigid-body world. resolv's spatial
// grid provides the broad phase; boxes (and circles, by their bounding
// square) are tested as AABBs.
type ResolvWorld struct {
	space *resolv.Space

	ppm           float64
	gravity       float64
	restThreshold float64
	frictionScale float64
	slop          float64

	bodies   []*rigidBody
	nextID   uint64
	listener ContactListener
	touching map[pairKey]bool

	stepping       bool
	nestedDestroys int
}

var _ World = (*ResolvWorld)(nil)

// NewWorld creates an empty world.
func NewWorld(opts Options) *ResolvWorld {
	if opts.CellSize <= 0 {
		opts.CellSize = 32
	}
	if opts.PixelsPerMeter <= 0 {
		opts.PixelsPerMeter = 100
	}
	return &ResolvWorld{
		space:         resolv.NewSpace(int(opts.Width), int(opts.Height), opts.CellSize, opts.CellSize),
		ppm:           opts.PixelsPerMeter,
		gravity:       opts.Gravity,
		restThreshold: opts.RestThreshold,
		frictionScale: opts.FrictionScale,
		slop:          opts.ContactSlop,
		touching:      make(map[pairKey]bool),
	}
}

func (w *ResolvWorld) CreateBody(def BodyDef) Body {
	w.nextID++
	b := &rigidBody{
		world:     w,
		id:        w.nextID,
		typ:       def.Type,
		pos:       def.Position,
		angle:     def.Angle,
		damping:   def.LinearDamping,
		entity:    def.Entity,
		hasEntity: def.HasEntity,
		tags:      def.Tags,
	}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *ResolvWorld) AttachFixture(body Body, def FixtureDef) *Fixture {
	b := w.own(body, "AttachFixture")
	f := &Fixture{FixtureDef: def, body: b}
	b.fixtures = append(b.fixtures, f)
	if b.obj == nil {
		b.obj = resolv.NewObject(0, 0, 1, 1, b.tags...)
		b.obj.Data = b
		w.space.Add(b.obj)
	}
	b.syncProxy()
	b.updateMass()
	return f
}

// DestroyBody removes a body. Calling it while Step is running is a
// programming error: the call is counted and then panics.
func (w *ResolvWorld) DestroyBody(body Body) {
	b := w.own(body, "DestroyBody")
	if w.stepping {
		w.nestedDestroys++
		panic(fmt.Sprintf("physics: DestroyBody(%d) called during Step", b.id))
	}
	if b.obj != nil {
		w.space.Remove(b.obj)
		b.obj = nil
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for k := range w.touching {
		if k.a == b.id || k.b == b.id {
			delete(w.touching, k)
		}
	}
	b.destroyed = true
}

func (w *ResolvWorld) SetContactListener(l ContactListener) {
	w.listener = l
}

// Stepping reports whether Step is in progress.
func (w *ResolvWorld) Stepping() bool {
	return w.stepping
}

// NestedDestroyCalls counts DestroyBody calls attempted during Step.
func (w *ResolvWorld) NestedDestroyCalls() int {
	return w.nestedDestroys
}

// BodyCount returns the number of live bodies.
func (w *ResolvWorld) BodyCount() int {
	return len(w.bodies)
}

// PixelsPerMeter returns the world's unit scale.
func (w *ResolvWorld) PixelsPerMeter() float64 {
	return w.ppm
}

// Step integrates every body, then detects and resolves contacts. New
// touching pairs are reported to the listener before they are resolved so
// it sees pre-impact velocities.
func (w *ResolvWorld) Step(dt float64) {
	if w.stepping {
		log.Printf("physics: nested Step ignored")
		return
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	for _, b := range w.bodies {
		b.integrate(dt, w.gravity)
		b.syncProxy()
	}

	current := make(map[pairKey]bool, len(w.touching))
	for _, b := range w.bodies {
		if b.typ != Dynamic || b.obj == nil {
			continue
		}
		check := b.obj.Check(0, 0)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			other, ok := o.Data.(*rigidBody)
			if !ok || other == b || other.destroyed || len(other.fixtures) == 0 {
				continue
			}
			// Dynamic pairs are visited from the lower id only.
			if other.typ == Dynamic && other.id < b.id {
				continue
			}
			if !w.near(b, other) {
				continue
			}
			key := makePair(b.id, other.id)
			current[key] = true
			if !w.touching[key] && w.listener != nil {
				w.listener.BeginContact(b.fixtures[0], other.fixtures[0])
			}
			w.resolve(b, other, dt)
		}
	}
	w.touching = current
}

// near reports whether two bodies' AABBs overlap or are within 2*slop.
func (w *ResolvWorld) near(a, b *rigidBody) bool {
	aMin, aMax := a.aabb()
	bMin, bMax := b.aabb()
	gap := 2 * w.slop
	return aMin.X <= bMax.X+gap && bMin.X <= aMax.X+gap &&
		aMin.Y <= bMax.Y+gap && bMin.Y <= aMax.Y+gap
}

// resolve separates a penetrating pair along the axis of least overlap and
// applies a restitution impulse plus tangential friction. a is dynamic.
func (w *ResolvWorld) resolve(a, b *rigidBody, dt float64) {
	aMin, aMax := a.aabb()
	bMin, bMax := b.aabb()
	ox := math.Min(aMax.X, bMax.X) - math.Max(aMin.X, bMin.X)
	oy := math.Min(aMax.Y, bMax.Y) - math.Max(aMin.Y, bMin.Y)
	if ox <= 0 || oy <= 0 {
		return
	}

	invA, invB := a.invMass, b.invMass
	total := invA + invB
	if total == 0 {
		return
	}

	// n points from b towards a.
	var n dmath.Vec2
	var depth float64
	if ox < oy {
		depth = ox
		n.X = 1
		if a.pos.X < b.pos.X {
			n.X = -1
		}
	} else {
		depth = oy
		n.Y = 1
		if a.pos.Y < b.pos.Y {
			n.Y = -1
		}
	}

	a.pos = gamemath.Add(a.pos, gamemath.Scale(n, depth*invA/total))
	b.pos = gamemath.Sub(b.pos, gamemath.Scale(n, depth*invB/total))

	rv := gamemath.Sub(a.vel, b.vel)
	vn := rv.X*n.X + rv.Y*n.Y
	if vn < 0 {
		fa, ea := a.material()
		fb, eb := b.material()
		e := math.Max(ea, eb)
		if -vn < w.restThreshold {
			e = 0
		}
		j := -(1 + e) * vn / total
		a.vel = gamemath.Add(a.vel, gamemath.Scale(n, j*invA))
		b.vel = gamemath.Sub(b.vel, gamemath.Scale(n, j*invB))

		t := dmath.Vec2{X: -n.Y, Y: n.X}
		rv = gamemath.Sub(a.vel, b.vel)
		vt := rv.X*t.X + rv.Y*t.Y
		mu := math.Sqrt(fa * fb)
		dv := gamemath.ApplyFriction(vt, mu*w.frictionScale*dt) - vt
		a.vel = gamemath.Add(a.vel, gamemath.Scale(t, dv*invA/total))
		b.vel = gamemath.Sub(b.vel, gamemath.Scale(t, dv*invB/total))
		a.angVel *= 0.9
	}

	a.syncProxy()
	b.syncProxy()
}

func (w *ResolvWorld) own(body Body, op string) *rigidBody {
	b, ok := body.(*rigidBody)
	if !ok || b.world != w {
		panic(fmt.Sprintf("physics: %s with a body from another world", op))
	}
	b.mustLive(op)
	return b
}
