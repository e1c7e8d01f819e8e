// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Subtext  string
	Color    color.RGBA // цвет маркера слева
	Enabled  bool
	Active   bool
	Progress float64 // доля оставшейся перезарядки, 0 — готово
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Text: label, Enabled: true}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, bg, border color.Color) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	if b.Progress > 0 {
		vector.DrawFilledRect(screen, x, y, w*float32(b.Progress), h, color.RGBA{0, 0, 0, 110}, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)
	if b.Color.A > 0 {
		vector.DrawFilledRect(screen, x+4, y+4, 8, h-8, b.Color, false)
	}

	textColor := color.Color(color.White)
	if !b.Enabled {
		textColor = color.RGBA{120, 120, 120, 255}
	}
	textY := b.Rect.Min.Y + 15
	if b.Subtext == "" {
		bounds := text.BoundString(face, b.Text)
		textY = b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	}
	text.Draw(screen, b.Text, face, b.Rect.Min.X+18, textY, textColor)
	if b.Subtext != "" {
		text.Draw(screen, b.Subtext, face, b.Rect.Min.X+18, textY+14, color.RGBA{200, 200, 200, 255})
	}
}
