package assets

import (
	"testing"

	"github.com/automoto/slingshot/shared/leveldata"
)

func TestLoadLevels(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != leveldata.BuiltinCount+2 {
		t.Fatalf("levels = %d, want %d", len(levels), leveldata.BuiltinCount+2)
	}
	for i, level := range levels {
		if level.Number != i+1 {
			t.Errorf("levels[%d].Number = %d, want %d", i, level.Number, i+1)
		}
		if err := level.Validate(); err != nil {
			t.Errorf("levels[%d]: %v", i, err)
		}
	}

	bridge := levels[leveldata.BuiltinCount]
	if bridge.Name != "bridge" {
		t.Fatalf("first TMX level = %q, want bridge", bridge.Name)
	}
	if len(bridge.Targets) != 3 || len(bridge.Structures) != 5 || len(bridge.Projectiles) != 3 {
		t.Errorf("bridge = %d targets, %d structures, %d projectiles", len(bridge.Targets), len(bridge.Structures), len(bridge.Projectiles))
	}
	if bridge.Anchor.X != 325 || bridge.Anchor.Y != 585 || bridge.GroundY != 460 {
		t.Errorf("bridge anchor = %v, ground = %v", bridge.Anchor, bridge.GroundY)
	}
}
