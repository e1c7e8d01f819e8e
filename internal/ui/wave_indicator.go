package ui

import (
	"gym-guardian/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.GoldColor,
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)

	// Каждая пятая волна заканчивается танками и боссом
	textColor := i.Color
	if waveNumber%5 == 0 {
		textColor = color.RGBA{255, 60, 60, 255}
	}

	bounds := text.BoundString(face, label)
	textX := i.X - bounds.Dx()/2
	textY := i.Y

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, face, textX+x, textY+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, textX, textY, textColor)
}
