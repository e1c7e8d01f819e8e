// internal/state/game_state.go
package state

import (
	"fmt"
	"gym-guardian/internal/app"
	"gym-guardian/internal/audio"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/interfaces"
	"gym-guardian/internal/types"
	"gym-guardian/internal/ui"
	"gym-guardian/pkg/render"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var powerUpKeys = map[string]ebiten.Key{
	"Q": ebiten.KeyQ, "W": ebiten.KeyW, "E": ebiten.KeyE, "R": ebiten.KeyR,
	"A": ebiten.KeyA, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
}

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// GameState — состояние игры: переводит ввод в намерения и рисует сцену.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	layout        defs.MapLayout
	seed          int64
	cues          *audio.SoundCues
	face          font.Face
	renderer      *render.GridRenderer
	sidebar       *ui.Sidebar
	infoPanel     *ui.InfoPanel
	buildKind     defs.TowerKind
	lastClickTime time.Time
}

// NewGameState starts a session on layout. cues may be nil.
func NewGameState(sm *StateMachine, layout defs.MapLayout, seed int64, cues *audio.SoundCues) *GameState {
	gameLogic := app.NewGame(layout.Path, seed)
	if cues != nil {
		cues.Subscribe(gameLogic.EventDispatcher)
	}

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		FieldColor:      config.FieldColor,
		GridLineColor:   config.GridLineColor,
		PathStartColor:  config.PathStartColor,
		PathEndColor:    config.PathEndColor,
		StrokeWidth:     1,
	}
	renderer := render.NewGridRenderer(gameLogic.GridSize, gameLogic.Cols, gameLogic.Rows, layout.Path, mapColors)
	renderer.RenderMapImage()

	face := basicfont.Face7x13
	log.Printf("Карта %q: клетка %dpx, %d точек маршрута", layout.ID, gameLogic.GridSize, len(layout.Path))
	return &GameState{
		sm:        sm,
		game:      gameLogic,
		layout:    layout,
		seed:      seed,
		cues:      cues,
		face:      face,
		renderer:  renderer,
		sidebar:   ui.NewSidebar(face),
		infoPanel: ui.NewInfoPanel(face),
	}
}

// Game returns the running session.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g, g.game, g.face))
		return
	}
	if g.game.IsGameOver() && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sm.SetState(NewMenuState(g.sm, g.seed, g.cues))
		return
	}

	g.handleKeys()
	g.handleMouse()

	g.game.Update(deltaTime)

	if _, ok := g.game.SelectedTower(); !ok {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()
	g.sidebar.Update(g.game, g.buildKind)
}

func (g *GameState) handleKeys() {
	for i, key := range towerKeys {
		if i < len(defs.AllTowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.toggleBuildKind(defs.AllTowerKinds[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartWave()
	}
	for _, def := range defs.PowerUpLibrary {
		if key, ok := powerUpKeys[def.Key]; ok && inpututil.IsKeyJustPressed(key) {
			g.game.ActivatePowerUp(def.Kind)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.game.CycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.buildKind = ""
		g.game.ClearSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.cues != nil {
		g.cues.SetMuted(!g.cues.Muted())
	}

	tower, ok := g.game.SelectedTower()
	if !ok {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.game.UpgradeTower(tower.ID)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.game.SellTower(tower.ID)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.toggleTower(tower.ID, tower.Deactivated)
	}
}

func (g *GameState) handleMouse() {
	if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return
	}
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.buildKind = ""
		g.game.ClearSelection()
		g.lastClickTime = time.Now()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	g.lastClickTime = time.Now()

	// Проверяем клик по UI элементам в первую очередь
	if g.sidebar.Contains(x, y) {
		g.handleSidebarClick(g.sidebar.HitTest(x, y))
		return
	}
	if g.infoPanel.Contains(x, y) {
		g.handlePanelClick(g.infoPanel.HitTest(x, y))
		return
	}
	g.handleGridClick(x, y)
}

func (g *GameState) handleSidebarClick(hit ui.Hit) {
	switch hit.Action {
	case ui.ActionTower:
		g.toggleBuildKind(hit.Tower)
	case ui.ActionPowerUp:
		g.game.ActivatePowerUp(hit.PowerUp)
	case ui.ActionStartWave:
		if g.game.StartWave() {
			g.sidebar.Indicator.HandleClick()
		}
	case ui.ActionPause:
		g.sm.SetState(NewPauseState(g.sm, g, g.game, g.face))
	case ui.ActionSpeed:
		g.game.CycleSpeed()
	}
}

func (g *GameState) handlePanelClick(action ui.PanelAction) {
	tower, ok := g.game.SelectedTower()
	if !ok {
		return
	}
	switch action {
	case ui.PanelUpgrade:
		g.game.UpgradeTower(tower.ID)
	case ui.PanelSell:
		g.game.SellTower(tower.ID)
	case ui.PanelToggle:
		g.toggleTower(tower.ID, tower.Deactivated)
	}
}

func (g *GameState) handleGridClick(x, y int) {
	cell, ok := g.game.CellAt(x, y)
	if !ok {
		return
	}
	if id, selected := g.game.SelectCell(cell); selected {
		g.buildKind = ""
		g.infoPanel.SetTarget(id)
		return
	}
	if g.buildKind == "" {
		return
	}
	if _, placed := g.game.PlaceTower(g.buildKind, cell); placed && !g.game.CanAfford(g.buildKind) {
		g.buildKind = ""
	}
}

func (g *GameState) toggleBuildKind(kind defs.TowerKind) {
	if g.buildKind == kind {
		g.buildKind = ""
		return
	}
	g.buildKind = kind
	g.game.ClearSelection()
}

func (g *GameState) toggleTower(id types.EntityID, deactivated bool) {
	setTowerEnabled(g.game, id, deactivated)
}

// setTowerEnabled reactivates a deactivated tower and deactivates an active one.
func setTowerEnabled(intents interfaces.Game, id types.EntityID, deactivated bool) bool {
	if deactivated {
		return intents.ReactivateTower(id)
	}
	return intents.DeactivateTower(id)
}

func (g *GameState) copyReport() {
	if err := clipboard.WriteAll(g.game.Report()); err != nil {
		log.Printf("Не удалось скопировать отчёт: %v", err)
		return
	}
	log.Println("Отчёт скопирован в буфер обмена")
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)

	if g.buildKind != "" {
		x, y := ebiten.CursorPosition()
		if cell, ok := g.game.CellAt(x, y); ok {
			_, occupied := g.game.TowerAt(cell)
			canPlace := !occupied && !g.game.IsPathCell(cell) && g.game.CanAfford(g.buildKind)
			g.renderer.DrawPlacementPreview(screen, cell, g.buildKind, canPlace)
		}
	}

	g.infoPanel.Draw(screen, g.game)
	g.sidebar.Draw(screen, g.game)

	if g.game.IsGameOver() {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWidth, config.GameHeight, config.OverlayColor, false)
	hud := g.game.HUD()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("You reached wave %d with %d kills", hud.Wave, hud.Kills),
		"N - back to map selection, C - copy report",
	}
	y := config.GameHeight/2 - 20
	for _, line := range lines {
		bounds := text.BoundString(g.face, line)
		text.Draw(screen, line, g.face, (config.GameWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (g *GameState) Exit() {}
