// internal/ui/lives_indicator.go
package ui

import (
	"gym-guardian/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует lives заполненных кружков из maxLives. Когда остаётся половина
// или меньше, кружки краснеют.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius

		var clr color.Color = color.Black
		if j < lives {
			clr = config.HealthFillColor
			if lives*2 <= maxLives {
				clr = config.LivesColor
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}

// Height возвращает общую высоту индикатора.
func (i *LivesIndicator) Height(maxLives int) float32 {
	rows := (maxLives + LivesCols - 1) / LivesCols
	return float32(rows) * (LivesCircleRadius*2 + LivesCircleSpacing)
}
