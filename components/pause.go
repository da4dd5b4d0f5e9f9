package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	PauseResume PauseMenuOption = iota
	PauseRestart
	PauseLevels
)

const pauseOptionCount = int(PauseLevels) + 1

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

// Toggle flips the pause state. Pausing always highlights Resume.
func (p *PauseData) Toggle() {
	p.IsPaused = !p.IsPaused
	if p.IsPaused {
		p.SelectedOption = PauseResume
	}
}

// Move steps the selection with wrap-around.
func (p *PauseData) Move(delta int) {
	p.SelectedOption = PauseMenuOption(((int(p.SelectedOption)+delta)%pauseOptionCount + pauseOptionCount) % pauseOptionCount)
}

var Pause = donburi.NewComponentType[PauseData]()
