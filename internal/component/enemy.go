package component

import (
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
	"gym-guardian/internal/utils"
	"math"
)

// Enemy представляет вражескую сущность, идущую по маршруту.
type Enemy struct {
	ID         types.EntityID
	Kind       defs.EnemyKind
	Pos        utils.Vec2
	Path       Path // общий, только для чтения
	Waypoint   int  // индекс последней достигнутой точки маршрута
	Health     float64
	MaxHealth  float64
	BaseSpeed  float64
	Speed      float64
	Radius     float64
	Reward     int
	Effects    StatusEffects
	ReachedEnd bool
	Removed    bool // помечен на удаление, вычищается при уплотнении
}

// NewEnemy creates an enemy of kind standing on the first waypoint of path.
func NewEnemy(kind defs.EnemyKind, path Path) *Enemy {
	def, _ := defs.Enemy(kind)
	e := &Enemy{
		Kind:      kind,
		Path:      path,
		Health:    def.Health,
		MaxHealth: def.Health,
		BaseSpeed: def.Speed,
		Speed:     def.Speed,
		Radius:    def.Radius,
		Reward:    def.Reward,
	}
	if len(path) > 0 {
		e.Pos = path[0]
	}
	return e
}

// IsAlive reports whether the enemy can still be targeted.
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && !e.ReachedEnd
}

// HealthRatio is current health over max health, clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return utils.Clamp01(e.Health / e.MaxHealth)
}

// Advance ticks effect expiry and moves one step along the path.
// Точка маршрута, на которую враг встал, засчитывается сразу, а конец пути
// фиксируется только на следующем вызове.
func (e *Enemy) Advance(now float64) {
	if e.ReachedEnd {
		return
	}
	for _, kind := range e.Effects.Expire(now) {
		if kind == defs.EffectSlow {
			e.Speed = e.BaseSpeed
		}
	}

	if len(e.Path) == 0 || e.Waypoint >= len(e.Path)-1 {
		e.ReachedEnd = true
		return
	}

	target := e.Path[e.Waypoint+1]
	d := target.Sub(e.Pos)
	dist := d.Len()
	if dist < e.Speed || dist == 0 {
		e.Pos = target
		e.Waypoint++
		return
	}
	e.Pos = e.Pos.Add(d.Scale(e.Speed / dist))
}

// TakeDamage subtracts amount from health and reports whether the enemy is dead.
func (e *Enemy) TakeDamage(amount float64) bool {
	e.Health -= amount
	return e.Health <= 0
}

// ApplyEffects installs on-hit effects. Повторное замедление обновляет
// длительность и перезаписывает силу, без перемножения.
func (e *Enemy) ApplyEffects(effects []defs.EffectSpec, now float64) {
	for _, spec := range effects {
		e.Effects.Apply(spec.Kind, spec.Amount, spec.Duration, now)
		if spec.Kind == defs.EffectSlow {
			e.Speed = e.BaseSpeed * (1 - spec.Amount)
		}
	}
}

// Push displaces the enemy by offset without touching its waypoint progress.
func (e *Enemy) Push(offset utils.Vec2) {
	if math.IsNaN(offset.X) || math.IsNaN(offset.Y) {
		return
	}
	e.Pos = e.Pos.Add(offset)
}
