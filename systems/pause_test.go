package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestWithPauseCheck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	sys := WithPauseCheck(func(*ecs.ECS) { runs++ })

	sys(e)
	GetOrCreatePause(e).Toggle()
	sys(e)
	sys(e)
	GetOrCreatePause(e).Toggle()
	sys(e)

	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestGetOrCreatePause_Singleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreatePause(e).Toggle()
	if !GetOrCreatePause(e).IsPaused {
		t.Error("second lookup returned a fresh pause state")
	}
}

func TestItemAt(t *testing.T) {
	tests := []struct {
		y    int
		want int
	}{
		{99, -1},
		{100, 0},
		{140, 0},
		{150, -1}, // in the gap
		{156, 1},
		{270, -1}, // past the last item
	}
	for _, tt := range tests {
		if got := itemAt(tt.y, 100, 40, 16, 2); got != tt.want {
			t.Errorf("itemAt(%d) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestCardAt(t *testing.T) {
	tests := []struct {
		x, y int
		want int
	}{
		{10, 10, 0},
		{125, 10, 1},
		{105, 10, -1}, // gap between columns
		{10, 125, 2},
		{125, 125, -1}, // no fourth card
		{-5, 10, -1},
	}
	for _, tt := range tests {
		if got := cardAt(tt.x, tt.y, 0, 0, 100, 20, 2, 3); got != tt.want {
			t.Errorf("cardAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
