package ui

import (
	"fmt"
	"gym-guardian/internal/app"
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	sidebarPadding = 10
	buttonHeight   = 34
	buttonGap      = 4
	towerBarTop    = 165
	messageChars   = 32
)

// Action — то, что произошло при клике по боковой панели.
type Action int

const (
	ActionNone Action = iota
	ActionTower
	ActionPowerUp
	ActionStartWave
	ActionPause
	ActionSpeed
)

// Hit describes a click on the sidebar.
type Hit struct {
	Action  Action
	Tower   defs.TowerKind
	PowerUp defs.PowerUpKind
}

// Sidebar — правая панель: HUD, выбор башни, способности, запуск волны.
type Sidebar struct {
	face  font.Face
	left  int
	width int

	towerButtons []*Button
	towerKinds   []defs.TowerKind
	powerButtons []*Button
	powerKinds   []defs.PowerUpKind
	startButton  *Button

	Speed     *SpeedButton
	Pause     *PauseButton
	Indicator *StateIndicator
	Wave      *WaveIndicator
	Lives     *LivesIndicator
}

func NewSidebar(face font.Face) *Sidebar {
	s := &Sidebar{
		face:  face,
		left:  config.GameWidth,
		width: config.UIWidth,
	}
	x0 := s.left + sidebarPadding
	x1 := s.left + s.width - sidebarPadding

	y := towerBarTop
	for _, kind := range defs.AllTowerKinds {
		s.towerButtons = append(s.towerButtons, NewButton(image.Rect(x0, y, x1, y+buttonHeight), string(kind)))
		s.towerKinds = append(s.towerKinds, kind)
		y += buttonHeight + buttonGap
	}
	y += 2 * buttonGap
	for _, kind := range defs.AllPowerUpKinds {
		s.powerButtons = append(s.powerButtons, NewButton(image.Rect(x0, y, x1, y+buttonHeight), string(kind)))
		s.powerKinds = append(s.powerKinds, kind)
		y += buttonHeight + buttonGap
	}
	y += 2 * buttonGap
	s.startButton = NewButton(image.Rect(x0, y, x1, y+buttonHeight), "Start Wave (SPACE)")

	s.Pause = NewPauseButton(float32(config.PauseButtonX), float32(config.SpeedButtonY), config.SpeedButtonSize, config.ButtonActive, config.HealthFillColor)
	s.Speed = NewSpeedButton(float32(config.SpeedButtonX), float32(config.SpeedButtonY), config.SpeedButtonSize, config.SpeedButtonColors)
	s.Indicator = NewStateIndicator(float32(config.IndicatorX), float32(config.SpeedButtonY), config.SpeedButtonSize)
	s.Wave = NewWaveIndicator(s.left+40, config.SpeedButtonY+5)
	s.Lives = NewLivesIndicator(float32(x0), 95)
	return s
}

// HitTest maps a click to a sidebar action.
func (s *Sidebar) HitTest(x, y int) Hit {
	switch {
	case s.Pause.IsClicked(x, y):
		return Hit{Action: ActionPause}
	case s.Speed.IsClicked(x, y):
		return Hit{Action: ActionSpeed}
	case s.Indicator.IsClicked(x, y), s.startButton.Contains(x, y):
		return Hit{Action: ActionStartWave}
	}
	for i, b := range s.towerButtons {
		if b.Contains(x, y) {
			return Hit{Action: ActionTower, Tower: s.towerKinds[i]}
		}
	}
	for i, b := range s.powerButtons {
		if b.Contains(x, y) {
			return Hit{Action: ActionPowerUp, PowerUp: s.powerKinds[i]}
		}
	}
	return Hit{Action: ActionNone}
}

// Contains reports whether a point is inside the sidebar.
func (s *Sidebar) Contains(x, y int) bool {
	return x >= s.left && x < s.left+s.width && y >= 0 && y < config.ScreenHeight
}

// Update синхронизирует кнопки с состоянием игры.
func (s *Sidebar) Update(g *app.Game, buildKind defs.TowerKind) {
	for i, b := range s.towerButtons {
		def, _ := defs.Tower(s.towerKinds[i])
		b.Text = fmt.Sprintf("%d %s", i+1, def.Name)
		b.Subtext = fmt.Sprintf("$%d  dmg %.0f  rng %.0f", def.Cost, def.Damage, def.Range)
		b.Color = def.Visuals.Color
		b.Enabled = g.CanAfford(def.Kind)
		b.Active = def.Kind == buildKind
	}
	for i, view := range g.PowerUps() {
		if i >= len(s.powerButtons) {
			break
		}
		b := s.powerButtons[i]
		def := defs.PowerUpLibrary[view.Kind]
		b.Text = fmt.Sprintf("%s %s", view.Key, view.Name)
		switch {
		case view.Active:
			b.Subtext = "active"
		case view.CooldownLeft > 0:
			b.Subtext = fmt.Sprintf("ready in %.0fs", view.CooldownLeft/1000)
		default:
			b.Subtext = fmt.Sprintf("$%d", view.Cost)
		}
		b.Color = def.Color
		b.Enabled = view.Affordable && view.CooldownLeft == 0
		b.Active = view.Active
		b.Progress = 0
		if def.Cooldown > 0 {
			b.Progress = view.CooldownLeft / def.Cooldown
		}
	}
	hud := g.HUD()
	s.startButton.Enabled = hud.Phase == component.WaveIdle && !hud.GameOver
	s.Pause.SetPaused(hud.Paused)
	s.Speed.SetState(g.SpeedIndex())
}

func (s *Sidebar) Draw(screen *ebiten.Image, g *app.Game) {
	vector.DrawFilledRect(screen, float32(s.left), 0, float32(s.width), config.ScreenHeight, config.SidebarColor, false)
	hud := g.HUD()

	s.Wave.Draw(screen, hud.Wave, s.face)
	s.Pause.Draw(screen)
	s.Speed.Draw(screen)
	s.Indicator.Draw(screen, hud.Phase)

	x := s.left + sidebarPadding
	text.Draw(screen, fmt.Sprintf("Gold: %d", hud.Gold), s.face, x, 70, config.GoldColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", hud.Lives), s.face, x, 88, config.LivesColor)
	s.Lives.Draw(screen, hud.Lives, config.StartingLives)
	text.Draw(screen, fmt.Sprintf("Wave %d %s  x%.0f", hud.Wave, hud.Phase, hud.Speed), s.face, x, 140, config.TextLightColor)
	if hud.Phase != component.WaveIdle {
		text.Draw(screen, fmt.Sprintf("Spawned %d/%d  alive %d", hud.Spawned, hud.Total, hud.Alive), s.face, x, 156, config.TextDimColor)
	}

	for _, b := range s.towerButtons {
		s.drawButton(screen, b)
	}
	for _, b := range s.powerButtons {
		s.drawButton(screen, b)
	}
	s.drawButton(screen, s.startButton)

	y := s.startButton.Rect.Max.Y + 20
	for _, line := range WrapText(hud.Message, messageChars) {
		text.Draw(screen, line, s.face, x, y, config.TextLightColor)
		y += 15
	}
}

func (s *Sidebar) drawButton(screen *ebiten.Image, b *Button) {
	bg := config.ButtonColor
	switch {
	case b.Active:
		bg = config.ButtonActive
	case !b.Enabled:
		bg = config.ButtonDisabled
	}
	border := config.PanelColor
	if b.Active {
		border = config.SelectionColor
	}
	b.Draw(screen, s.face, bg, border)
}

// WrapText splits s into lines of at most width characters on word boundaries.
func WrapText(s string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
