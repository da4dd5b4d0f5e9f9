package components

import (
	"testing"

	cfg "github.com/automoto/slingshot/config"
	"pgregory.net/rapid"
)

func TestDestructible_DamageTiers(t *testing.T) {
	d := NewDestructibleData(cfg.KindStructure, nil, 50)

	d.ApplyDamage(20)
	if d.Health != 30 || d.Destroyed || d.Damaged {
		t.Errorf("after 20: Health = %v Destroyed = %v Damaged = %v, want 30 false false", d.Health, d.Destroyed, d.Damaged)
	}

	d.ApplyDamage(1)
	if d.Health != 29 || !d.Damaged || d.Destroyed {
		t.Errorf("after 21: Health = %v Destroyed = %v Damaged = %v, want 29 false true", d.Health, d.Destroyed, d.Damaged)
	}

	d.ApplyDamage(40)
	if d.Health != 0 || !d.Destroyed {
		t.Errorf("after 61: Health = %v Destroyed = %v, want 0 true", d.Health, d.Destroyed)
	}
}

func TestDestructible_HealthPercentage(t *testing.T) {
	tests := []struct {
		name   string
		damage float64
		want   float64
	}{
		{"untouched", 0, 100},
		{"quarter", 25, 75},
		{"overkill", 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDestructibleData(cfg.KindTarget, nil, 100)
			d.ApplyDamage(tt.damage)
			if got := d.HealthPercentage(); got != tt.want {
				t.Errorf("HealthPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDestructible_BodyAfterRemovalPanics(t *testing.T) {
	d := NewDestructibleData(cfg.KindStructure, nil, 10)
	d.Removed = true
	defer func() {
		if recover() == nil {
			t.Error("Body() after removal did not panic")
		}
	}()
	d.Body()
}

func TestDestructible_DamageMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHealth := rapid.Float64Range(1, 500).Draw(t, "maxHealth")
		hits := rapid.SliceOf(rapid.Float64Range(0, 200)).Draw(t, "hits")

		d := NewDestructibleData(cfg.KindStructure, nil, maxHealth)
		prev := d.Health
		for _, h := range hits {
			d.ApplyDamage(h)
			if d.Health > prev {
				t.Fatalf("Health rose from %v to %v", prev, d.Health)
			}
			if d.Health < 0 {
				t.Fatalf("Health = %v, want >= 0", d.Health)
			}
			if d.Destroyed != (d.Health <= 0) {
				t.Fatalf("Destroyed = %v with Health %v", d.Destroyed, d.Health)
			}
			prev = d.Health
		}
	})
}

func TestDestructible_DestroyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHealth := rapid.Float64Range(1, 200).Draw(t, "maxHealth")
		extra := rapid.SliceOf(rapid.Float64Range(0, 1000)).Draw(t, "extra")

		d := NewDestructibleData(cfg.KindTarget, nil, maxHealth)
		d.ApplyDamage(maxHealth)
		if !d.Destroyed {
			t.Fatalf("lethal damage did not destroy")
		}
		before := d
		for _, h := range extra {
			d.ApplyDamage(h)
		}
		if d.Health != before.Health || d.Destroyed != before.Destroyed || d.Damaged != before.Damaged {
			t.Fatalf("state changed after destruction: %+v -> %+v", before, d)
		}
	})
}
