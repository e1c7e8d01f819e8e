package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillPolygon заливает многоугольник по точкам xs, ys.
func fillPolygon(screen *ebiten.Image, xs, ys []float32, clr color.Color) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	var path vector.Path
	path.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		path.LineTo(xs[i], ys[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// clickPulse — масштаб «отскока» кнопки после клика.
func clickPulse(elapsedSeconds float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsedSeconds*8))
}

// insideCircle проверяет попадание точки в круг.
func insideCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
