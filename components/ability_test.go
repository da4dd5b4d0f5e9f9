package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func newTestProjectile(w *physics.ResolvWorld, v cfg.Variant, pos, vel dmath.Vec2) *ProjectileData {
	pc := cfg.Projectiles[v]
	b := w.CreateBody(physics.BodyDef{Type: physics.Dynamic, Position: pos})
	w.AttachFixture(b, physics.FixtureDef{Shape: physics.Circle(pc.Radius), Density: pc.Density})
	b.SetLinearVelocity(vel)
	p := NewProjectileData(v, b, pc.Density)
	return &p
}

type recordingSpawner struct {
	world      donburi.World
	positions  []dmath.Vec2
	velocities []dmath.Vec2
}

func newRecordingSpawner() *recordingSpawner {
	return &recordingSpawner{world: donburi.NewWorld()}
}

func (s *recordingSpawner) SpawnClone(parent *ProjectileData, pos, vel dmath.Vec2) donburi.Entity {
	s.positions = append(s.positions, pos)
	s.velocities = append(s.velocities, vel)
	return s.world.Create(Projectile)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSplitter_SpawnsClones(t *testing.T) {
	w := physics.NewWorld(physics.DefaultOptions())
	p := newTestProjectile(w, cfg.Splitter, dmath.Vec2{X: 100, Y: 100}, dmath.Vec2{X: 5, Y: 0})
	s := newRecordingSpawner()

	clones := p.ActivateSpecialAbility(s)

	if len(clones) != 2 || len(p.Clones) != 2 {
		t.Fatalf("clones = %d, registered = %d, want 2 and 2", len(clones), len(p.Clones))
	}
	wantPos := []dmath.Vec2{{X: 90, Y: 90}, {X: 110, Y: 110}}
	wantVel := []float64{5, 6}
	for i := range wantPos {
		if !near(s.positions[i].X, wantPos[i].X) || !near(s.positions[i].Y, wantPos[i].Y) {
			t.Errorf("clone %d position = %v, want %v", i, s.positions[i], wantPos[i])
		}
		if !near(s.velocities[i].X, wantVel[i]) || s.velocities[i].Y != 0 {
			t.Errorf("clone %d velocity = %v, want (%v, 0)", i, s.velocities[i], wantVel[i])
		}
	}
	if !p.SpecialAbilityUsed {
		t.Error("SpecialAbilityUsed = false, want true")
	}
	if p.Disposed {
		t.Error("parent disposed by splitting")
	}
}

func TestSpeedBoost_VelocityThenDensity(t *testing.T) {
	w := physics.NewWorld(physics.DefaultOptions())
	p := newTestProjectile(w, cfg.SpeedBoost, dmath.Vec2{X: 400, Y: 700}, dmath.Vec2{X: 3, Y: 4})
	massBefore := p.Body().Mass()

	p.ActivateSpecialAbility(nil)

	if v := p.Velocity(); !near(v.X, 6) || !near(v.Y, 8) {
		t.Errorf("Velocity = %v, want (6, 8)", v)
	}
	if !near(p.Density(), 0.7*1.5) {
		t.Errorf("Density = %v, want %v", p.Density(), 0.7*1.5)
	}
	if got := p.Body().Mass(); !near(got, massBefore*1.5) {
		t.Errorf("Mass = %v, want %v", got, massBefore*1.5)
	}
}

func TestShaker_TimerAndOffset(t *testing.T) {
	w := physics.NewWorld(physics.DefaultOptions())
	p := newTestProjectile(w, cfg.Shaker, dmath.Vec2{X: 400, Y: 700}, dmath.Vec2{X: 3, Y: 1})

	p.ActivateSpecialAbility(nil)
	if !p.Shake.Active || p.Shake.Remaining != 0.5 {
		t.Fatalf("Shake = %+v, want active with 0.5s", p.Shake)
	}

	p.UpdateShake(0.3)
	if !p.Shake.Active {
		t.Error("shake ended early")
	}
	for i := 0; i < 100; i++ {
		off := p.CurrentShakeOffset()
		if math.Abs(off.X) > 10 || math.Abs(off.Y) > 10 {
			t.Fatalf("CurrentShakeOffset = %v, want within [-10, 10]", off)
		}
	}

	p.UpdateShake(0.25)
	if p.Shake.Active {
		t.Error("shake still active after its duration")
	}
	if off := p.CurrentShakeOffset(); off.X != 0 || off.Y != 0 {
		t.Errorf("CurrentShakeOffset after expiry = %v, want zero", off)
	}

	p.ActivateSpecialAbility(nil)
	if p.Shake.Active {
		t.Error("second activation restarted the shake")
	}
}

func TestStandard_NoOp(t *testing.T) {
	w := physics.NewWorld(physics.DefaultOptions())
	p := newTestProjectile(w, cfg.Standard, dmath.Vec2{X: 400, Y: 700}, dmath.Vec2{X: 3, Y: 1})

	if clones := p.ActivateSpecialAbility(newRecordingSpawner()); clones != nil {
		t.Errorf("clones = %v, want nil", clones)
	}
	if v := p.Velocity(); v.X != 3 || v.Y != 1 {
		t.Errorf("Velocity = %v, want (3, 1)", v)
	}
}

type abilitySnapshot struct {
	vel     dmath.Vec2
	density float64
	clones  int
	shake   bool
	remain  float64
	used    bool
}

func snapshot(p *ProjectileData) abilitySnapshot {
	return abilitySnapshot{
		vel:     p.Velocity(),
		density: p.Density(),
		clones:  len(p.Clones),
		shake:   p.Shake.Active,
		remain:  p.Shake.Remaining,
		used:    p.SpecialAbilityUsed,
	}
}

func TestAbility_OneShot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		variant := cfg.Variant(rapid.IntRange(int(cfg.Standard), int(cfg.Shaker)).Draw(t, "variant"))
		vx := rapid.Float64Range(-14, 14).Draw(t, "vx")
		vy := rapid.Float64Range(-14, 14).Draw(t, "vy")

		w := physics.NewWorld(physics.DefaultOptions())
		p := newTestProjectile(w, variant, dmath.Vec2{X: 500, Y: 700}, dmath.Vec2{X: vx, Y: vy})
		s := newRecordingSpawner()

		p.ActivateSpecialAbility(s)
		once := snapshot(p)
		spawned := len(s.positions)

		if second := p.ActivateSpecialAbility(s); len(second) != 0 {
			t.Fatalf("second activation spawned %d clones", len(second))
		}
		if twice := snapshot(p); twice != once {
			t.Fatalf("second activation changed state: %+v -> %+v", once, twice)
		}
		if len(s.positions) != spawned {
			t.Fatalf("spawner called again: %d -> %d", spawned, len(s.positions))
		}
	})
}

func TestProjectile_Dispose(t *testing.T) {
	w := physics.NewWorld(physics.DefaultOptions())
	p := newTestProjectile(w, cfg.Standard, dmath.Vec2{X: 400, Y: 700}, dmath.Vec2{})

	p.Dispose(w)
	p.Dispose(w)

	if w.BodyCount() != 0 {
		t.Errorf("BodyCount = %d, want 0", w.BodyCount())
	}
	if p.ActivateSpecialAbility(nil) != nil {
		t.Error("ability ran on a disposed projectile")
	}
	defer func() {
		if recover() == nil {
			t.Error("Position after Dispose did not panic")
		}
	}()
	p.Position()
}

func TestProjectile_LaunchAppliesImpulse(t *testing.T) {
	w := physics.NewWorld(physics.DefaultOptions())
	p := newTestProjectile(w, cfg.Standard, dmath.Vec2{X: 400, Y: 700}, dmath.Vec2{})
	m := p.Body().Mass()

	p.Launch(dmath.Vec2{X: m * 4, Y: m * 2})

	if v := p.Velocity(); !near(v.X, 4) || !near(v.Y, 2) {
		t.Errorf("Velocity = %v, want (4, 2)", v)
	}
}
