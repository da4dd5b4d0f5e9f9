// Package persistence stores level progress on disk through gdata.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

var ErrNotOpen = errors.New("persistence not initialized")

// Store is the part of gdata.Manager this package uses.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// LevelRecord is the best result on one level.
type LevelRecord struct {
	BestScore int `json:"bestScore"`
	Stars     int `json:"stars"`
}

// Progress is everything saved between sessions.
type Progress struct {
	Unlocked  int                 `json:"unlocked"`
	LastLevel int                 `json:"lastLevel"`
	Levels    map[int]LevelRecord `json:"levels"`
}

func NewProgress() *Progress {
	return &Progress{
		Unlocked:  1,
		LastLevel: 1,
		Levels:    map[int]LevelRecord{},
	}
}

// Record folds a finished attempt into the progress and reports whether it
// set a new best. Only a win unlocks the next level.
func (p *Progress) Record(level, points, stars int, won bool) bool {
	p.LastLevel = level
	if !won {
		return false
	}
	if level+1 > p.Unlocked {
		p.Unlocked = level + 1
	}
	best, ok := p.Levels[level]
	if ok && best.BestScore >= points {
		if stars > best.Stars {
			best.Stars = stars
			p.Levels[level] = best
		}
		return false
	}
	p.Levels[level] = LevelRecord{BestScore: points, Stars: max(stars, best.Stars)}
	return true
}

func (p *Progress) IsUnlocked(level int) bool {
	return level >= 1 && level <= p.Unlocked
}

// Saver reads and writes Progress. A Saver with no store is a no-op, so the
// game still runs where no data directory is available.
type Saver struct {
	store Store
}

// Open creates the gdata-backed saver for appName.
func Open(appName string) (*Saver, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Saver{}, fmt.Errorf("open gdata: %w", err)
	}
	return NewSaver(m), nil
}

func NewSaver(store Store) *Saver {
	return &Saver{store: store}
}

// Load returns the saved progress, or fresh progress if nothing was saved.
func (s *Saver) Load() (*Progress, error) {
	if s.store == nil {
		return NewProgress(), nil
	}
	data, err := s.store.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return NewProgress(), nil
	}
	if len(data) == 0 {
		return NewProgress(), nil
	}

	progress := NewProgress()
	if err := json.Unmarshal(data, progress); err != nil {
		return NewProgress(), fmt.Errorf("parse saved progress: %w", err)
	}
	if progress.Levels == nil {
		progress.Levels = map[int]LevelRecord{}
	}
	if progress.Unlocked < 1 {
		progress.Unlocked = 1
	}
	return progress, nil
}

func (s *Saver) Save(p *Progress) error {
	if s.store == nil {
		return ErrNotOpen
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := s.store.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Clear forgets all progress.
func (s *Saver) Clear() error {
	if s.store == nil {
		return ErrNotOpen
	}
	if err := s.store.SaveItem(progressKey, nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
