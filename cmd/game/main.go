// cmd/game/main.go
package main

import (
	"flag"
	"gym-guardian/internal/audio"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	mapID := flag.String("map", "", "layout to start on: straight, zigzag or spiral (empty opens the menu)")
	defsDir := flag.String("defs", "", "directory with towers.json, enemies.json and powerups.json overrides")
	seed := flag.Int64("seed", 0, "random seed for spawn patterns (0 uses the clock)")
	mute := flag.Bool("mute", false, "start with sound cues muted")
	pprofAddr := flag.String("pprof", "", "address for the pprof HTTP server, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if *defsDir != "" {
		if err := defs.LoadDefinitions(*defsDir); err != nil {
			log.Fatalf("Failed to load definitions: %v", err)
		}
	}

	cues := audio.NewSoundCues(0.6)
	cues.SetMuted(*mute)
	if err := cues.Init(); err != nil {
		log.Printf("Звук отключён: %v", err)
	}
	defer cues.Close()

	sm := state.NewStateMachine() // Создаём машину состояний
	if *mapID == "" {
		sm.SetState(state.NewMenuState(sm, *seed, cues))
	} else {
		layout, ok := defs.Layout(*mapID)
		if !ok {
			log.Fatalf("Unknown map %q", *mapID)
		}
		sm.SetState(state.NewGameState(sm, layout, *seed, cues))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Gym Guardian")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}

	if gs, ok := sm.Session(); ok {
		log.Printf("Итоги партии:\n%s", gs.Game().Report())
	}
}
