package scenes

import (
	"errors"
	"log"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/persistence"
	"github.com/automoto/slingshot/shared/leveldata"
)

// Campaign is the ordered level list plus the player's saved progress.
type Campaign struct {
	Levels   []*leveldata.Level
	Saver    *persistence.Saver
	Progress *persistence.Progress
}

func NewCampaign(levels []*leveldata.Level, saver *persistence.Saver) *Campaign {
	progress, err := saver.Load()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
	}
	return &Campaign{Levels: levels, Saver: saver, Progress: progress}
}

// StartIndex is the last level played, if it is still unlocked.
func (c *Campaign) StartIndex() int {
	idx := c.Progress.LastLevel - 1
	if idx < 0 || idx >= len(c.Levels) || !c.Progress.IsUnlocked(c.Levels[idx].Number) {
		return 0
	}
	return idx
}

// HasProgress reports whether anything has been played yet.
func (c *Campaign) HasProgress() bool {
	return len(c.Progress.Levels) > 0 || c.Progress.Unlocked > 1 || c.Progress.LastLevel > 1
}

// LevelCards lists every level with its lock state and best result.
func (c *Campaign) LevelCards() []components.LevelCard {
	cards := make([]components.LevelCard, len(c.Levels))
	for i, l := range c.Levels {
		rec := c.Progress.Levels[l.Number]
		cards[i] = components.LevelCard{
			Index:     i,
			Number:    l.Number,
			Name:      l.Name,
			Unlocked:  c.Progress.IsUnlocked(l.Number),
			BestScore: rec.BestScore,
			Stars:     rec.Stars,
		}
	}
	return cards
}

// Select makes an unlocked level the one to continue from. Locked or
// unknown levels are refused.
func (c *Campaign) Select(index int) bool {
	if index < 0 || index >= len(c.Levels) || !c.Progress.IsUnlocked(c.Levels[index].Number) {
		return false
	}
	c.Progress.LastLevel = c.Levels[index].Number
	c.save()
	return true
}

// NewGame forgets all progress.
func (c *Campaign) NewGame() {
	c.Progress = persistence.NewProgress()
	if err := c.Saver.Clear(); err != nil && !errors.Is(err, persistence.ErrNotOpen) {
		log.Printf("Warning: Could not clear progress: %v", err)
	}
}

func (c *Campaign) HasNext(index int) bool {
	return index+1 < len(c.Levels)
}

// Record saves the result of a finished level and reports a new best.
func (c *Campaign) Record(index int, score components.ScoreData) bool {
	level := c.Levels[index]
	improved := c.Progress.Record(level.Number, score.Points, score.Stars, score.Outcome == cfg.OutcomeWon)
	c.save()
	return improved
}

func (c *Campaign) save() {
	if err := c.Saver.Save(c.Progress); err != nil && !errors.Is(err, persistence.ErrNotOpen) {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
