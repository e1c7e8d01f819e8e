package render

import (
	"gym-guardian/internal/app"
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer рисует поле, маршрут и сущности. Статичная карта рисуется
// один раз в mapImage.
type GridRenderer struct {
	gridSize int
	cols     int
	rows     int
	path     []defs.Cell
	colors   *MapColors
	mapImage *ebiten.Image
}

func NewGridRenderer(gridSize, cols, rows int, path []defs.Cell, colors *MapColors) *GridRenderer {
	return &GridRenderer{
		gridSize: gridSize,
		cols:     cols,
		rows:     rows,
		path:     path,
		colors:   colors,
	}
}

// RenderMapImage pre-renders the field, grid lines and path.
func (r *GridRenderer) RenderMapImage() {
	img := ebiten.NewImage(config.GameWidth, config.GameHeight)
	img.Fill(r.colors.FieldColor)

	g := float32(r.gridSize)
	for i, cell := range r.path {
		t := float32(0)
		if len(r.path) > 1 {
			t = float32(i) / float32(len(r.path)-1)
		}
		c := LerpColor(r.colors.PathStartColor, r.colors.PathEndColor, t)
		vector.DrawFilledRect(img, float32(cell.X)*g, float32(cell.Y)*g, g, g, c, false)
	}
	for x := 0; x <= r.cols; x++ {
		vector.StrokeLine(img, float32(x)*g, 0, float32(x)*g, float32(r.rows)*g, r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}
	for y := 0; y <= r.rows; y++ {
		vector.StrokeLine(img, 0, float32(y)*g, float32(r.cols)*g, float32(y)*g, r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}
	r.mapImage = img
}

// Draw renders the map and every entity view of the game.
func (r *GridRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(r.colors.BackgroundColor)
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, &ebiten.DrawImageOptions{})

	for _, t := range g.Towers() {
		r.drawTower(screen, t)
	}
	for _, e := range g.Enemies() {
		r.drawEnemy(screen, e)
	}
	for _, p := range g.Projectiles() {
		r.drawProjectile(screen, p)
	}
	for _, f := range g.BeamFlashes() {
		r.drawBeam(screen, f)
	}
}

// DrawPlacementPreview highlights a cell under the cursor: green when the
// tower can be built, red otherwise, with the range circle.
func (r *GridRenderer) DrawPlacementPreview(screen *ebiten.Image, cell defs.Cell, kind defs.TowerKind, ok bool) {
	def, found := defs.Tower(kind)
	if !found {
		return
	}
	g := float32(r.gridSize)
	c := color.RGBA{0, 255, 0, 90}
	if !ok {
		c = color.RGBA{255, 0, 0, 90}
	}
	vector.DrawFilledRect(screen, float32(cell.X)*g, float32(cell.Y)*g, g, g, c, false)
	cx, cy := float32(cell.X)*g+g/2, float32(cell.Y)*g+g/2
	vector.StrokeCircle(screen, cx, cy, float32(def.Range), 1, WithAlpha(def.Visuals.Color, 120), true)
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	def, _ := defs.Tower(t.Kind)
	g := float32(r.gridSize)
	fill := def.Visuals.Color
	if t.Deactivated {
		fill = DarkenColor(fill)
	}
	inset := g * 0.1
	vector.DrawFilledRect(screen, float32(t.Cell.X)*g+inset, float32(t.Cell.Y)*g+inset, g-2*inset, g-2*inset, fill, false)

	// Уровень башни — точки в верхней части клетки
	for i := 1; i < t.Level; i++ {
		vector.DrawFilledCircle(screen, float32(t.Cell.X)*g+inset+float32(i)*4, float32(t.Cell.Y)*g+inset+3, 1.5, config.GoldColor, true)
	}
	if t.Hasted {
		vector.StrokeRect(screen, float32(t.Cell.X)*g+inset, float32(t.Cell.Y)*g+inset, g-2*inset, g-2*inset, 2, config.GoldColor, false)
	}
	if t.Selected {
		vector.StrokeRect(screen, float32(t.Cell.X)*g, float32(t.Cell.Y)*g, g, g, 2, config.SelectionColor, false)
		vector.StrokeCircle(screen, float32(t.Center.X), float32(t.Center.Y), float32(t.Range), 1, config.SelectionColor, true)
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	def, _ := defs.Enemy(e.Kind)
	x, y, radius := float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, def.Visuals.Color, true)
	if e.Slowed {
		vector.StrokeCircle(screen, x, y, radius+2, 1.5, color.RGBA{100, 100, 255, 255}, true)
	}

	// Полоса здоровья над врагом
	width := radius * 2
	top := y - radius - 6
	vector.DrawFilledRect(screen, x-radius, top, width, 3, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x-radius, top, width*float32(e.HealthRatio), 3, config.HealthFillColor, false)
}

func (r *GridRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	if p.Hit || p.Missed {
		return
	}
	def, _ := defs.Tower(p.Kind)
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	switch p.Behavior {
	case defs.StrikeMelee:
		// Тренер: тело и голова
		vector.DrawFilledRect(screen, x-4, y-4, 8, 12, def.Visuals.StrikeColor, false)
		vector.DrawFilledCircle(screen, x, y-8, 4, config.TrainerHeadColor, true)
	case defs.StrikeBeam:
		vector.StrokeLine(screen, float32(p.Origin.X), float32(p.Origin.Y), float32(p.BeamEnd.X), float32(p.BeamEnd.Y), 3, def.Visuals.StrikeColor, true)
	default:
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), def.Visuals.StrikeColor, true)
	}
}

func (r *GridRenderer) drawBeam(screen *ebiten.Image, f component.BeamFlash) {
	def, _ := defs.Tower(f.Kind)
	vector.StrokeLine(screen, float32(f.From.X), float32(f.From.Y), float32(f.To.X), float32(f.To.Y), 3, def.Visuals.StrikeColor, true)
}
