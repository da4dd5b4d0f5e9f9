package main

import (
	"errors"
	"testing"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
)

func TestParseShots(t *testing.T) {
	shots, err := parseShots("-50,-30; -40, -10 ;")
	if err != nil {
		t.Fatalf("parseShots: %v", err)
	}
	want := []shot{{-50, -30}, {-40, -10}}
	if len(shots) != len(want) {
		t.Fatalf("shots = %v, want %v", shots, want)
	}
	for i := range want {
		if shots[i] != want[i] {
			t.Errorf("shots[%d] = %v, want %v", i, shots[i], want[i])
		}
	}
}

func TestParseShots_Errors(t *testing.T) {
	if _, err := parseShots(""); !errors.Is(err, errNoShots) {
		t.Errorf("empty: err = %v, want errNoShots", err)
	}
	for _, in := range []string{"1", "a,2", "1,b", "1,2,3"} {
		if _, err := parseShots(in); err == nil {
			t.Errorf("parseShots(%q): err = nil", in)
		}
	}
}

func TestScript_FiresShots(t *testing.T) {
	level := leveldata.Builtin(1)
	phys := physics.NewWorld(physics.DefaultOptions())
	c, err := core.NewController(phys, &level)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	sc := newScript([]shot{{-50, 0}}, 10)
	loop := core.NewGameLoop(c, 60)
	loop.OnTick = sc.step

	loop.RunFor(3000)

	if sc.fired == 0 {
		t.Error("no shot fired")
	}
	if c.Launcher().State() == cfg.LauncherDragging {
		t.Error("script left the launcher mid-drag")
	}
	if phys.NestedDestroyCalls() != 0 {
		t.Errorf("NestedDestroyCalls = %d, want 0", phys.NestedDestroyCalls())
	}
}
