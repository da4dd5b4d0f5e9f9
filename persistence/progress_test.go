package persistence

import (
	"errors"
	"testing"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestProgress_Record(t *testing.T) {
	p := NewProgress()

	if p.Record(1, 3000, 1, false) {
		t.Error("a loss set a new best")
	}
	if p.Unlocked != 1 || p.LastLevel != 1 {
		t.Errorf("after loss: Unlocked = %d, LastLevel = %d", p.Unlocked, p.LastLevel)
	}

	if !p.Record(1, 12000, 2, true) {
		t.Error("first win did not set a best")
	}
	if p.Unlocked != 2 {
		t.Errorf("Unlocked = %d, want 2", p.Unlocked)
	}

	if p.Record(1, 9000, 3, true) {
		t.Error("lower score set a new best")
	}
	if got := p.Levels[1]; got.BestScore != 12000 || got.Stars != 3 {
		t.Errorf("Levels[1] = %+v, want best 12000 with 3 stars", got)
	}

	p.Record(3, 100, 1, true)
	if !p.IsUnlocked(4) || p.IsUnlocked(5) || p.IsUnlocked(0) {
		t.Errorf("IsUnlocked wrong with Unlocked = %d", p.Unlocked)
	}
}

func TestSaver_RoundTrip(t *testing.T) {
	s := NewSaver(memStore{})

	fresh, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fresh.Unlocked != 1 || len(fresh.Levels) != 0 {
		t.Errorf("fresh progress = %+v", fresh)
	}

	fresh.Record(2, 20000, 3, true)
	if err := s.Save(fresh); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Unlocked != 3 || loaded.LastLevel != 2 || loaded.Levels[2].BestScore != 20000 {
		t.Errorf("loaded = %+v", loaded)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if cleared, _ := s.Load(); cleared.Unlocked != 1 {
		t.Errorf("after Clear: Unlocked = %d, want 1", cleared.Unlocked)
	}
}

func TestSaver_CorruptData(t *testing.T) {
	s := NewSaver(memStore{progressKey: []byte("{not json")})
	p, err := s.Load()
	if err == nil {
		t.Error("Load of corrupt data: err = nil")
	}
	if p == nil || p.Unlocked != 1 {
		t.Errorf("fallback progress = %+v", p)
	}
}

func TestSaver_WithoutStore(t *testing.T) {
	s := &Saver{}
	if _, err := s.Load(); err != nil {
		t.Errorf("Load: %v", err)
	}
	if err := s.Save(NewProgress()); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Save err = %v, want ErrNotOpen", err)
	}
}
