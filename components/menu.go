package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available title screen selections
type MainMenuOption int

const (
	MainMenuContinue MainMenuOption = iota
	MainMenuLevels
	MainMenuNewGame
	MainMenuExit
)

func (o MainMenuOption) String() string {
	switch o {
	case MainMenuContinue:
		return "Continue"
	case MainMenuLevels:
		return "Select Level"
	case MainMenuNewGame:
		return "New Game"
	case MainMenuExit:
		return "Exit"
	}
	return ""
}

// MainMenuOptions lists the title screen entries. Continue only shows when
// there is saved progress to continue.
func MainMenuOptions(hasProgress bool) []MainMenuOption {
	if hasProgress {
		return []MainMenuOption{MainMenuContinue, MainMenuLevels, MainMenuNewGame, MainMenuExit}
	}
	return []MainMenuOption{MainMenuNewGame, MainMenuLevels, MainMenuExit}
}

// MenuData stores the current state of the title screen
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

// Move steps the selection with wrap-around.
func (m *MenuData) Move(delta int) {
	n := len(m.VisibleOptions)
	if n == 0 {
		return
	}
	m.SelectedIndex = ((m.SelectedIndex+delta)%n + n) % n
}

func (m *MenuData) Selected() (MainMenuOption, bool) {
	if m.SelectedIndex < 0 || m.SelectedIndex >= len(m.VisibleOptions) {
		return 0, false
	}
	return m.VisibleOptions[m.SelectedIndex], true
}

// LevelCard is one entry of the level select grid.
type LevelCard struct {
	Index     int // position in the campaign
	Number    int
	Name      string
	Unlocked  bool
	BestScore int
	Stars     int
}

// LevelSelectData stores the level grid and the highlighted card.
type LevelSelectData struct {
	Cards         []LevelCard
	Columns       int
	SelectedIndex int
}

// Move steps the highlight by dx cards and dy rows, staying on the grid.
func (l *LevelSelectData) Move(dx, dy int) {
	if len(l.Cards) == 0 {
		return
	}
	cols := max(1, l.Columns)
	next := l.SelectedIndex + dx + dy*cols
	if next < 0 || next >= len(l.Cards) {
		return
	}
	l.SelectedIndex = next
}

// Selected returns the highlighted card if it can be played.
func (l *LevelSelectData) Selected() (LevelCard, bool) {
	if l.SelectedIndex < 0 || l.SelectedIndex >= len(l.Cards) {
		return LevelCard{}, false
	}
	card := l.Cards[l.SelectedIndex]
	return card, card.Unlocked
}

var (
	Menu        = donburi.NewComponentType[MenuData]()
	LevelSelect = donburi.NewComponentType[LevelSelectData]()
)
