// Command simulate plays a level headlessly with scripted shots and logs each
// turn, every destruction and the outcome.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
)

func main() {
	levelNumber := flag.Int("level", 1, "Built-in level number")
	tmxPath := flag.String("tmx", "", "Load a Tiled map instead of a built-in level")
	shotsFlag := flag.String("shots", "-50,-30", "Pulls as dx,dy pairs separated by ';', reused in order")
	abilityAfter := flag.Int("ability-after", 45, "Ticks of flight before the ability fires (0 = never)")
	maxTicks := flag.Int("max-ticks", 20000, "Stop after this many ticks")
	realtime := flag.Bool("realtime", false, "Tick in real time instead of as fast as possible")
	flag.Parse()

	shots, err := parseShots(*shotsFlag)
	if err != nil {
		log.Fatalf("Invalid -shots: %v", err)
	}

	level, err := loadLevel(*levelNumber, *tmxPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	phys := physics.NewWorld(physics.DefaultOptions())
	controller, err := core.NewController(phys, level)
	if err != nil {
		log.Fatalf("Failed to set up level: %v", err)
	}

	loop := core.NewGameLoop(controller, int(1/cfg.Physics.FixedTimestep))
	loop.OnTick = newScript(shots, *abilityAfter).step

	if *realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Stopping simulation...")
			loop.Stop()
		}()
		loop.Run()
	} else {
		loop.RunFor(*maxTicks)
	}

	s := controller.Score()
	log.Printf("Finished %q after %d ticks: %s, %d points, %d stars, %d/%d targets, %d structures, %d shots",
		level.Name, controller.Ticks(), s.Outcome, s.Points, s.Stars,
		s.TargetsDestroyed, len(level.Targets), s.StructuresDestroyed, s.ProjectilesFired)
	if n := phys.NestedDestroyCalls(); n != 0 {
		log.Fatalf("Bodies destroyed inside a physics step: %d", n)
	}
}

func loadLevel(number int, tmxPath string) (*leveldata.Level, error) {
	if tmxPath == "" {
		level := leveldata.Builtin(number)
		return &level, nil
	}
	return leveldata.LoadTMX(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath))
}

// script fires the configured pulls in turn and triggers abilities.
type script struct {
	shots        []shot
	abilityAfter int

	fired  int
	flight int
}

func newScript(shots []shot, abilityAfter int) *script {
	return &script{shots: shots, abilityAfter: abilityAfter}
}

func (s *script) step(c *core.Controller) {
	l := c.Launcher()
	switch l.State() {
	case cfg.LauncherLoaded:
		pull := s.shots[s.fired%len(s.shots)]
		s.fired++
		s.flight = 0
		anchor := l.Anchor()
		if !l.BeginDrag(anchor) || !l.EndDrag(gamemath.Add(anchor, pull.vec())) {
			log.Printf("Shot %d (%v) was not launched", s.fired, pull)
		}
	case cfg.LauncherLaunched:
		s.flight++
		if s.abilityAfter > 0 && s.flight == s.abilityAfter {
			c.ActivateAbility()
		}
	}
}
