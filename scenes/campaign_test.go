package scenes

import (
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/persistence"
	"github.com/automoto/slingshot/shared/leveldata"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func testCampaign(store memStore) *Campaign {
	levels := make([]*leveldata.Level, 3)
	for i := range levels {
		l := leveldata.Builtin(i + 1)
		levels[i] = &l
	}
	return NewCampaign(levels, persistence.NewSaver(store))
}

func TestCampaign_StartsAtFirstLevel(t *testing.T) {
	c := testCampaign(memStore{})
	if got := c.StartIndex(); got != 0 {
		t.Errorf("StartIndex = %d, want 0", got)
	}
	if !c.HasNext(1) || c.HasNext(2) {
		t.Error("HasNext wrong at the end of the campaign")
	}
}

func TestCampaign_RecordResumesLastLevel(t *testing.T) {
	store := memStore{}
	c := testCampaign(store)

	won := components.ScoreData{Points: 12000, Stars: 2, Outcome: cfg.OutcomeWon}
	if !c.Record(0, won) {
		t.Error("first win not reported as a new best")
	}
	c.Record(1, components.ScoreData{Points: 500, Outcome: cfg.OutcomeLost})

	reloaded := testCampaign(store)
	if got := reloaded.StartIndex(); got != 1 {
		t.Errorf("StartIndex after reload = %d, want 1", got)
	}
	if rec := reloaded.Progress.Levels[1]; rec.BestScore != 12000 || rec.Stars != 2 {
		t.Errorf("Levels[1] = %+v, want best 12000 with 2 stars", rec)
	}
}

func TestCampaign_WithoutStore(t *testing.T) {
	c := NewCampaign([]*leveldata.Level{}, &persistence.Saver{})
	if c.Progress == nil {
		t.Fatal("Progress is nil without a store")
	}
	if got := c.StartIndex(); got != 0 {
		t.Errorf("StartIndex = %d, want 0", got)
	}
}

func TestCampaign_LevelCardsFollowUnlocks(t *testing.T) {
	c := testCampaign(memStore{})
	c.Record(0, components.ScoreData{Points: 9000, Stars: 1, Outcome: cfg.OutcomeWon})

	cards := c.LevelCards()
	if len(cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(cards))
	}
	want := []bool{true, true, false}
	for i, card := range cards {
		if card.Index != i || card.Unlocked != want[i] {
			t.Errorf("card %d = %+v, want Unlocked %v", i, card, want[i])
		}
	}
	if cards[0].BestScore != 9000 || cards[0].Stars != 1 {
		t.Errorf("card 0 = %+v, want best 9000 with 1 star", cards[0])
	}
}

func TestCampaign_SelectRefusesLockedLevels(t *testing.T) {
	store := memStore{}
	c := testCampaign(store)

	if c.Select(2) {
		t.Error("Select(2) accepted a locked level")
	}
	if c.Select(-1) || c.Select(5) {
		t.Error("Select accepted an index outside the campaign")
	}

	c.Record(0, components.ScoreData{Points: 9000, Stars: 1, Outcome: cfg.OutcomeWon})
	c.Record(1, components.ScoreData{Points: 9000, Stars: 1, Outcome: cfg.OutcomeWon})
	if !c.Select(0) {
		t.Fatal("Select(0) refused an unlocked level")
	}
	if got := testCampaign(store).StartIndex(); got != 0 {
		t.Errorf("StartIndex after selecting level 1 = %d, want 0", got)
	}
}

func TestCampaign_NewGameClearsProgress(t *testing.T) {
	store := memStore{}
	c := testCampaign(store)
	c.Record(0, components.ScoreData{Points: 9000, Stars: 1, Outcome: cfg.OutcomeWon})
	if !c.HasProgress() {
		t.Fatal("HasProgress = false after a win")
	}

	c.NewGame()

	if c.HasProgress() {
		t.Error("HasProgress = true after NewGame")
	}
	if testCampaign(store).HasProgress() {
		t.Error("cleared progress came back after reload")
	}
}
