package components

import "testing"

func TestMainMenuOptions(t *testing.T) {
	fresh := MainMenuOptions(false)
	if len(fresh) != 3 || fresh[0] != MainMenuNewGame {
		t.Errorf("fresh options = %v, want New Game first without Continue", fresh)
	}
	saved := MainMenuOptions(true)
	if len(saved) != 4 || saved[0] != MainMenuContinue {
		t.Errorf("saved options = %v, want Continue first", saved)
	}
}

func TestMenuData_MoveWraps(t *testing.T) {
	m := MenuData{VisibleOptions: MainMenuOptions(false)}
	m.Move(-1)
	if got, _ := m.Selected(); got != MainMenuExit {
		t.Errorf("Move(-1) from the top selected %s, want Exit", got)
	}
	m.Move(1)
	if got, _ := m.Selected(); got != MainMenuNewGame {
		t.Errorf("Move(1) from the bottom selected %s, want New Game", got)
	}
}

func TestLevelSelectData(t *testing.T) {
	l := LevelSelectData{
		Columns: 2,
		Cards: []LevelCard{
			{Index: 0, Number: 1, Unlocked: true},
			{Index: 1, Number: 2, Unlocked: true},
			{Index: 2, Number: 3},
		},
	}

	tests := []struct {
		dx, dy int
		want   int
	}{
		{-1, 0, 0}, // stays on the grid
		{1, 0, 1},
		{0, 1, 1}, // no card below
		{-1, 1, 2},
		{0, -1, 0},
	}
	for _, tt := range tests {
		l.Move(tt.dx, tt.dy)
		if l.SelectedIndex != tt.want {
			t.Errorf("Move(%d, %d): SelectedIndex = %d, want %d", tt.dx, tt.dy, l.SelectedIndex, tt.want)
		}
	}

	l.SelectedIndex = 2
	if _, ok := l.Selected(); ok {
		t.Error("locked level selectable")
	}
	l.SelectedIndex = 1
	if card, ok := l.Selected(); !ok || card.Number != 2 {
		t.Errorf("Selected = %+v, %v, want level 2", card, ok)
	}
}

func TestPauseData(t *testing.T) {
	var p PauseData
	p.Toggle()
	if !p.IsPaused || p.SelectedOption != PauseResume {
		t.Fatalf("after Toggle: %+v, want paused on Resume", p)
	}
	p.Move(-1)
	if p.SelectedOption != PauseLevels {
		t.Errorf("Move(-1) = %d, want Levels", p.SelectedOption)
	}
	p.Move(1)
	p.Move(1)
	if p.SelectedOption != PauseRestart {
		t.Errorf("SelectedOption = %d, want Restart", p.SelectedOption)
	}
	p.Toggle()
	p.Toggle()
	if p.SelectedOption != PauseResume {
		t.Errorf("pausing again kept %d, want Resume", p.SelectedOption)
	}
}
