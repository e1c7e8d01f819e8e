// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"gym-guardian/internal/app"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 220
	panelButtonW   = 130
	panelButtonH   = 28
)

// PanelAction — кнопка панели, по которой кликнули.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
	PanelToggle
)

// InfoPanel displays information about the selected tower.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	currentY      float64
	targetY       float64
	UpgradeButton *Button
	SellButton    *Button
	ToggleButton  *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		currentY:      config.GameHeight,
		targetY:       config.GameHeight,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade (U)"),
		SellButton:    NewButton(image.Rectangle{}, "Sell (S)"),
		ToggleButton:  NewButton(image.Rectangle{}, "Disable (D)"),
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = config.GameHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.GameHeight
}

// Update двигает панель к целевой позиции и раскладывает кнопки.
func (p *InfoPanel) Update() {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.GameHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}

	right := config.GameWidth - panelMargin - 15
	top := int(p.currentY) + panelMargin + 12
	for i, b := range []*Button{p.UpgradeButton, p.SellButton, p.ToggleButton} {
		y := top + i*(panelButtonH+4)
		b.Rect = image.Rect(right-panelButtonW, y, right, y+panelButtonH)
	}
}

// Contains reports whether a point is inside the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && x >= panelMargin && x < config.GameWidth-panelMargin && y >= int(p.currentY)+panelMargin
}

// HitTest maps a click to a panel button.
func (p *InfoPanel) HitTest(x, y int) PanelAction {
	if !p.IsVisible {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.Contains(x, y):
		return PanelUpgrade
	case p.SellButton.Contains(x, y):
		return PanelSell
	case p.ToggleButton.Contains(x, y):
		return PanelToggle
	}
	return PanelNone
}

func (p *InfoPanel) Draw(screen *ebiten.Image, g *app.Game) {
	if !p.IsVisible && p.currentY >= config.GameHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.GameWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	tower, ok := g.ECS.Tower(p.TargetEntity)
	if !ok {
		return
	}
	def, _ := defs.Tower(tower.Kind)

	x := panelRect.Min.X + 15
	y := panelRect.Min.Y + 20
	text.Draw(screen, fmt.Sprintf("%s  (level %d)", def.Name, tower.Level), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, def.Special, p.fontFace, x, y, config.TextDimColor)
	y += lineHeight + 4

	col2 := x + columnSpacing
	text.Draw(screen, fmt.Sprintf("Damage: %.1f", tower.Damage), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Shots: %d", tower.ShotsFired), p.fontFace, col2, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", tower.Range), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Kills: %d", tower.EnemiesKilled), p.fontFace, col2, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Fire rate: %.0f ms", tower.FireRate), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Damage dealt: %.0f", tower.DamageDealt), p.fontFace, col2, y, config.TextLightColor)

	p.UpgradeButton.Subtext = ""
	p.UpgradeButton.Text = fmt.Sprintf("Upgrade $%d (U)", app.UpgradeCost(tower.Kind))
	p.UpgradeButton.Enabled = tower.Level < config.MaxTowerLevel && g.ECS.Session.Gold >= app.UpgradeCost(tower.Kind)
	if tower.Level >= config.MaxTowerLevel {
		p.UpgradeButton.Text = "Max level"
	}
	p.SellButton.Text = fmt.Sprintf("Sell +$%d (S)", tower.Spent/2)
	p.ToggleButton.Text = "Disable (D)"
	if tower.Deactivated {
		p.ToggleButton.Text = "Enable (D)"
	}

	for _, b := range []*Button{p.UpgradeButton, p.SellButton, p.ToggleButton} {
		bg := config.ButtonColor
		if !b.Enabled {
			bg = config.ButtonDisabled
		}
		b.Draw(screen, p.fontFace, bg, borderColor)
	}
}
