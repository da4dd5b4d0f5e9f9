package core

import (
	"log"
	"time"

	cfg "github.com/automoto/slingshot/config"
)

// GameLoop drives a Controller at a fixed rate on its own goroutine.
type GameLoop struct {
	controller *Controller
	tickRate   int
	stopChan   chan struct{}

	// OnTick runs before every tick, on the loop goroutine. Scripted input
	// goes here.
	OnTick func(c *Controller)
}

func NewGameLoop(controller *Controller, tickRate int) *GameLoop {
	return &GameLoop{
		controller: controller,
		tickRate:   tickRate,
		stopChan:   make(chan struct{}),
	}
}

// Run ticks in real time until Stop is called or the level is decided.
func (g *GameLoop) Run() {
	interval := time.Second / time.Duration(g.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if g.tick(interval.Seconds()) {
				log.Printf("Game loop finished: %s", g.controller.Outcome())
				return
			}
		}
	}
}

// RunFor ticks as fast as possible, at most maxTicks times, and returns the
// number of ticks run. It stops early once the level is decided.
func (g *GameLoop) RunFor(maxTicks int) int {
	dt := 1.0 / float64(g.tickRate)
	for i := 0; i < maxTicks; i++ {
		if g.tick(dt) {
			return i + 1
		}
	}
	return maxTicks
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick(dt float64) (done bool) {
	if g.OnTick != nil {
		g.OnTick(g.controller)
	}
	g.controller.Tick(dt)
	return g.controller.Outcome() != cfg.OutcomePending
}
