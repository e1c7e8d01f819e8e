// internal/app/game.go
package app

import (
	"fmt"
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/entity"
	"gym-guardian/internal/event"
	"gym-guardian/internal/interfaces"
	"gym-guardian/internal/system"
	"gym-guardian/internal/types"
	"gym-guardian/internal/utils"
	"log"
)

var (
	_ interfaces.Game        = (*Game)(nil)
	_ interfaces.GameContext = (*Game)(nil)
)

// Game holds the simulation session: grid, entities, systems and pacing.
type Game struct {
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	LifecycleSystem    *system.LifecycleSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	PowerUpSystem      *system.PowerUpSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	GridSize int
	Cols     int
	Rows     int
	Cells    []defs.Cell    // маршрут в клетках
	Path     component.Path // маршрут в пикселях, общий для всех врагов

	pathCells     map[defs.Cell]bool
	occupied      map[defs.Cell]types.EntityID
	selectedTower types.EntityID

	speedIndex  int
	isPaused    bool
	accumulator float64 // мс симуляции, ещё не отработанные шагами
	message     string
}

// NewGame builds a session for a path given as grid cells. seed 0 means a
// time-based seed.
func NewGame(cells []defs.Cell, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		Cells:           append([]defs.Cell(nil), cells...),
		pathCells:       make(map[defs.Cell]bool, len(cells)),
		occupied:        make(map[defs.Cell]types.EntityID),
	}
	g.initGrid()

	center := utils.Vec2{X: config.GameWidth / 2, Y: config.GameHeight / 2}
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.LifecycleSystem = system.NewLifecycleSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g.Rng, g.Path)
	g.PowerUpSystem = system.NewPowerUpSystem(ecs, eventDispatcher, center)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener, event.WaveStarted, event.WaveEnded, event.GameOver)
	return g
}

// initGrid derives the cell size from the path extents and converts the
// path to pixel waypoints at cell centers.
func (g *Game) initGrid() {
	g.GridSize = config.DefaultGrid
	if len(g.Cells) > 0 {
		maxX, maxY := 0, 0
		for _, c := range g.Cells {
			maxX = max(maxX, c.X)
			maxY = max(maxY, c.Y)
		}
		g.GridSize = max(1, min(config.GameWidth/(maxX+1), config.GameHeight/(maxY+1)))
	}
	g.Cols = config.GameWidth / g.GridSize
	g.Rows = config.GameHeight / g.GridSize

	g.Path = make(component.Path, 0, len(g.Cells))
	for _, c := range g.Cells {
		g.pathCells[c] = true
		g.Path = append(g.Path, g.CellCenter(c))
	}
}

// CellCenter returns the pixel center of cell.
func (g *Game) CellCenter(c defs.Cell) utils.Vec2 {
	return utils.Vec2{
		X: float64(c.X*g.GridSize + g.GridSize/2),
		Y: float64(c.Y*g.GridSize + g.GridSize/2),
	}
}

// CellAt converts a pixel position inside the game area to a cell.
func (g *Game) CellAt(x, y int) (defs.Cell, bool) {
	if x < 0 || y < 0 {
		return defs.Cell{}, false
	}
	c := defs.Cell{X: x / g.GridSize, Y: y / g.GridSize}
	return c, g.InGrid(c)
}

func (g *Game) InGrid(c defs.Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Cols && c.Y < g.Rows
}

func (g *Game) IsPathCell(c defs.Cell) bool {
	return g.pathCells[c]
}

// Now is the simulation clock in ms.
func (g *Game) Now() float64 {
	return g.ECS.GameTime
}

// Step advances the simulation by one fixed step:
// враги → уборка (смерть раньше утечки) → башни → снаряды → уборка снарядов
// → вспышки → спавн → завершение волны.
func (g *Game) Step() {
	g.ECS.GameTime += config.StepMillis
	now := g.ECS.GameTime

	g.MovementSystem.Update(now)
	g.LifecycleSystem.ReapEnemies()
	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update(now)
	g.LifecycleSystem.ReapProjectiles()
	g.VisualEffectSystem.Update(now)

	// После поражения волны не продвигаются, но состояние доступно для чтения
	if g.ECS.Session.GameOver {
		return
	}
	g.WaveSystem.Update(now)
	g.WaveSystem.CheckCompletion()
}

// Update converts real frame time into whole fixed steps, scaled by the speed
// multiplier. Returns the number of steps run.
func (g *Game) Update(deltaSeconds float64) int {
	if g.isPaused || deltaSeconds <= 0 {
		return 0
	}
	if deltaSeconds > config.MaxDeltaTime {
		deltaSeconds = config.MaxDeltaTime
	}
	g.accumulator += deltaSeconds * 1000 * g.SpeedMultiplier()

	steps := 0
	for g.accumulator >= config.StepMillis {
		if steps >= config.MaxStepsPerFrame*int(g.SpeedMultiplier()) {
			g.accumulator = 0
			break
		}
		g.Step()
		g.accumulator -= config.StepMillis
		steps++
	}
	return steps
}

func (g *Game) SpeedMultiplier() float64 {
	return config.SpeedMultipliers[g.speedIndex]
}

// CycleSpeed switches x1 → x2 → x4 → x1.
func (g *Game) CycleSpeed() int {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	return g.speedIndex
}

func (g *Game) SpeedIndex() int {
	return g.speedIndex
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) IsGameOver() bool {
	return g.ECS.Session.GameOver
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		l.game.message = fmt.Sprintf("Wave %v incoming!", e.Data)
	case event.WaveEnded:
		l.game.message = fmt.Sprintf("Wave %v cleared! Press SPACE for the next one", e.Data)
		log.Printf("Золото: %d, жизни: %d", l.game.ECS.Session.Gold, l.game.ECS.Session.Lives)
	case event.GameOver:
		l.game.message = "Game over! Your members gave up"
	}
}
