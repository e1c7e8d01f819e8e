// internal/ui/indicator.go
package ui

import (
	"gym-guardian/internal/component"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — круг фазы волны; клик в фазе idle запускает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor returns the indicator color for a wave phase.
func PhaseColor(phase component.WavePhase) color.RGBA {
	switch phase {
	case component.WaveSpawning:
		return color.RGBA{220, 60, 60, 255}
	case component.WaveDraining:
		return color.RGBA{255, 165, 0, 255}
	}
	return color.RGBA{60, 200, 90, 255}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.WavePhase) {
	currentRadius := i.Radius * clickPulse(time.Since(i.LastClickTime).Seconds())
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	return insideCircle(x, y, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
