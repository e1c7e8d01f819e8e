// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка переключения скорости x1/x2/x4.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, shift := range []float32{0, offset} {
		xs := []float32{b.X - width + shift, b.X + shift, b.X - width + shift}
		ys := []float32{b.Y - height/2, b.Y, b.Y + height/2}
		fillPolygon(screen, xs, ys, clr)
		vector.StrokeLine(screen, xs[0], ys[0], xs[1], ys[1], 1, color.White, true)
		vector.StrokeLine(screen, xs[1], ys[1], xs[2], ys[2], 1, color.White, true)
		vector.StrokeLine(screen, xs[2], ys[2], xs[0], ys[0], 1, color.White, true)
	}
}

// IsClicked использует круг для определения попадания, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// SetState синхронизирует кнопку с множителем скорости игры.
func (b *SpeedButton) SetState(state int) {
	if state != b.CurrentState {
		b.CurrentState = state
		b.LastClickTime = time.Now()
	}
}
