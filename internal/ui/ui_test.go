package ui

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for n, expected := range tests {
		assert.Equal(t, expected, toRoman(n), "toRoman(%d)", n)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t,
		[]string{"Wave 3 cleared!", "Press SPACE for", "the next one"},
		WrapText("Wave 3 cleared! Press SPACE for the next one", 16))
	assert.Nil(t, WrapText("   ", 10))
	assert.Equal(t, []string{"Supercalifragilistic", "ok"}, WrapText("Supercalifragilistic ok", 8))
}

func TestSidebarHitTest(t *testing.T) {
	s := NewSidebar(basicfont.Face7x13)
	x := config.GameWidth + 20

	tests := []struct {
		name    string
		x, y    int
		expects Hit
	}{
		{"first tower", x, towerBarTop + 5, Hit{Action: ActionTower, Tower: defs.TowerTreadmill}},
		{"second tower", x, towerBarTop + buttonHeight + buttonGap + 5, Hit{Action: ActionTower, Tower: defs.TowerProtein}},
		{"first power-up", x, 410, Hit{Action: ActionPowerUp, PowerUp: defs.PowerUpPreWorkout}},
		{"start wave", x, 570, Hit{Action: ActionStartWave}},
		{"pause", config.PauseButtonX, config.SpeedButtonY, Hit{Action: ActionPause}},
		{"speed", config.SpeedButtonX, config.SpeedButtonY, Hit{Action: ActionSpeed}},
		{"indicator", config.IndicatorX, config.SpeedButtonY, Hit{Action: ActionStartWave}},
		{"gap between buttons", x, towerBarTop + buttonHeight + 1, Hit{Action: ActionNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects, s.HitTest(tt.x, tt.y))
		})
	}

	assert.True(t, s.Contains(config.GameWidth, 0))
	assert.False(t, s.Contains(config.GameWidth-1, 0))
}

func TestInfoPanel_SlideAndHitTest(t *testing.T) {
	p := NewInfoPanel(basicfont.Face7x13)
	assert.Equal(t, PanelNone, p.HitTest(900, 630))

	p.SetTarget(5)
	for i := 0; i < 20; i++ {
		p.Update()
	}
	assert.True(t, p.IsVisible)
	assert.Equal(t, PanelUpgrade, p.HitTest(900, 630))
	assert.Equal(t, PanelSell, p.HitTest(900, 665))
	assert.Equal(t, PanelToggle, p.HitTest(900, 695))
	assert.True(t, p.Contains(100, 650))

	p.Hide()
	for i := 0; i < 20; i++ {
		p.Update()
	}
	assert.False(t, p.IsVisible)
	assert.Zero(t, p.TargetEntity)
}

func TestPhaseColor(t *testing.T) {
	assert.NotEqual(t, PhaseColor(component.WaveIdle), PhaseColor(component.WaveSpawning))
	assert.NotEqual(t, PhaseColor(component.WaveSpawning), PhaseColor(component.WaveDraining))
}

func TestLivesIndicatorHeight(t *testing.T) {
	i := NewLivesIndicator(0, 0)
	assert.Positive(t, i.Height(config.StartingLives))
}
