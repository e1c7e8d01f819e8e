// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует «паузу» или «play» в зависимости от состояния.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		// Треугольник (play)
		xs := []float32{b.X - rectSize, b.X - rectSize, b.X + rectSize}
		ys := []float32{b.Y - rectSize*1.2, b.Y + rectSize*1.2, b.Y}
		fillPolygon(screen, xs, ys, b.PlayColor)
		return
	}
	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, color.White, false)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.IsPaused = paused
		b.LastClickTime = time.Now()
	}
}
