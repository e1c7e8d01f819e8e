// internal/app/view.go
package app

import (
	"fmt"
	"gym-guardian/internal/component"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
	"gym-guardian/internal/utils"
	"strings"
)

// Снимки состояния для отрисовки. Рендер и UI не держат указателей на сущности.

type EnemyView struct {
	ID          types.EntityID
	Kind        defs.EnemyKind
	Pos         utils.Vec2
	Radius      float64
	HealthRatio float64
	Slowed      bool
}

type TowerView struct {
	ID            types.EntityID
	Kind          defs.TowerKind
	Cell          defs.Cell
	Center        utils.Vec2
	Range         float64
	Level         int
	Selected      bool
	Deactivated   bool
	Hasted        bool
	ShotsFired    int
	EnemiesKilled int
	DamageDealt   float64
}

type ProjectileView struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	Behavior defs.StrikeBehavior
	Pos      utils.Vec2
	Origin   utils.Vec2
	BeamEnd  utils.Vec2
	Radius   float64
	Hit      bool
	Missed   bool
}

type PowerUpView struct {
	Kind         defs.PowerUpKind
	Name         string
	Key          string
	Cost         int
	Active       bool
	CooldownLeft float64 // мс
	Affordable   bool
}

// HUD — данные для верхней панели.
type HUD struct {
	Gold     int
	Lives    int
	Wave     int
	Phase    component.WavePhase
	Spawned  int
	Total    int
	Alive    int
	Kills    int
	GameOver bool
	Paused   bool
	Speed    float64
	Message  string
}

func (g *Game) Enemies() []EnemyView {
	list := g.ECS.EnemyList()
	views := make([]EnemyView, 0, len(list))
	for _, e := range list {
		views = append(views, EnemyView{
			ID:          e.ID,
			Kind:        e.Kind,
			Pos:         e.Pos,
			Radius:      e.Radius,
			HealthRatio: e.HealthRatio(),
			Slowed:      e.Effects.Has(defs.EffectSlow),
		})
	}
	return views
}

func (g *Game) Towers() []TowerView {
	list := g.ECS.TowerList()
	views := make([]TowerView, 0, len(list))
	for _, t := range list {
		views = append(views, TowerView{
			ID:            t.ID,
			Kind:          t.Kind,
			Cell:          t.Cell,
			Center:        t.Center,
			Range:         t.Range,
			Level:         t.Level,
			Selected:      t.Selected,
			Deactivated:   t.Deactivated,
			Hasted:        t.Buffs.Has(defs.BuffHaste),
			ShotsFired:    t.ShotsFired,
			EnemiesKilled: t.EnemiesKilled,
			DamageDealt:   t.DamageDealt,
		})
	}
	return views
}

func (g *Game) Projectiles() []ProjectileView {
	list := g.ECS.ProjectileList()
	views := make([]ProjectileView, 0, len(list))
	for _, p := range list {
		views = append(views, ProjectileView{
			ID:       p.ID,
			Kind:     p.Kind,
			Behavior: p.Profile.Behavior,
			Pos:      p.Pos,
			Origin:   p.Origin,
			BeamEnd:  p.BeamEnd,
			Radius:   p.Profile.Radius,
			Hit:      p.HitTarget(),
			Missed:   p.Missed(),
		})
	}
	return views
}

// BeamFlashes returns copies of the beam flashes still on screen.
func (g *Game) BeamFlashes() []component.BeamFlash {
	flashes := make([]component.BeamFlash, 0, len(g.ECS.BeamFlashes))
	for _, f := range g.ECS.BeamFlashes {
		flashes = append(flashes, *f)
	}
	return flashes
}

func (g *Game) PowerUps() []PowerUpView {
	now := g.Now()
	views := make([]PowerUpView, 0, len(defs.AllPowerUpKinds))
	for _, kind := range defs.AllPowerUpKinds {
		def := defs.PowerUpLibrary[kind]
		state := g.ECS.PowerUps[kind]
		views = append(views, PowerUpView{
			Kind:         kind,
			Name:         def.Name,
			Key:          def.Key,
			Cost:         def.Cost,
			Active:       state.Active(now),
			CooldownLeft: state.CooldownLeft(now),
			Affordable:   g.ECS.Session.Gold >= def.Cost,
		})
	}
	return views
}

func (g *Game) HUD() HUD {
	session := g.ECS.Session
	wave := g.ECS.Wave
	return HUD{
		Gold:     session.Gold,
		Lives:    session.Lives,
		Wave:     wave.Number,
		Phase:    wave.Phase,
		Spawned:  wave.Spawned,
		Total:    wave.Total,
		Alive:    g.ECS.EnemyCount(),
		Kills:    session.Kills,
		GameOver: session.GameOver,
		Paused:   g.isPaused,
		Speed:    g.SpeedMultiplier(),
		Message:  g.message,
	}
}

// Report returns a plain-text summary of the run and per-tower statistics.
func (g *Game) Report() string {
	session := g.ECS.Session
	var b strings.Builder
	fmt.Fprintf(&b, "Gym Guardian: wave %d, %.1fs\n", g.ECS.Wave.Number, g.Now()/1000)
	fmt.Fprintf(&b, "Gold %d | Lives %d | Kills %d | Leaks %d\n", session.Gold, session.Lives, session.Kills, session.Leaks)
	if session.GameOver {
		b.WriteString("Result: game over\n")
	}
	for _, t := range g.ECS.TowerList() {
		def, _ := defs.Tower(t.Kind)
		fmt.Fprintf(&b, "- %s L%d at (%d,%d): shots %d, kills %d, damage %.1f\n",
			def.Name, t.Level, t.Cell.X, t.Cell.Y, t.ShotsFired, t.EnemiesKilled, t.DamageDealt)
	}
	return b.String()
}
