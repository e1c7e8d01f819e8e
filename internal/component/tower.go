// component/tower.go
package component

import (
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
	"gym-guardian/internal/utils"
	"math"
)

type Tower struct {
	ID     types.EntityID
	Kind   defs.TowerKind
	Cell   defs.Cell  // клетка сетки
	Center utils.Vec2 // центр клетки в пикселях
	Level  int
	Spent  int // золото, вложенное в башню (стоимость + улучшения)

	BaseDamage   float64
	BaseRange    float64
	BaseFireRate float64 // мс между выстрелами
	Damage       float64
	Range        float64
	FireRate     float64
	Strike       defs.ProjectileProfile

	LastShot float64
	CanFire  bool
	Target   types.EntityID
	Buffs    StatusEffects

	Deactivated      bool
	DeactivatedUntil float64

	ShotsFired    int
	EnemiesKilled int
	DamageDealt   float64

	Selected bool // только для отрисовки
	Removed  bool
}

// NewTower builds a level-1 tower of kind on cell for a grid of gridSize pixels.
func NewTower(kind defs.TowerKind, cell defs.Cell, gridSize int) *Tower {
	def, _ := defs.Tower(kind)
	t := &Tower{
		Kind:         kind,
		Cell:         cell,
		Center:       utils.Vec2{X: float64(cell.X*gridSize + gridSize/2), Y: float64(cell.Y*gridSize + gridSize/2)},
		Level:        1,
		Spent:        def.Cost,
		BaseDamage:   def.Damage,
		BaseRange:    def.Range,
		BaseFireRate: def.FireRate,
		Strike:       def.Strike,
		LastShot:     math.Inf(-1),
	}
	t.RecomputeStats()
	return t
}

// nearest returns the closest live enemy within range, first found wins ties.
func (t *Tower) nearest(enemies []*Enemy) *Enemy {
	var closest *Enemy
	minDistance := math.Inf(1)
	for _, enemy := range enemies {
		if !enemy.IsAlive() {
			continue
		}
		distance := enemy.Pos.Dist(t.Center)
		if distance < minDistance && distance <= t.Range {
			minDistance = distance
			closest = enemy
		}
	}
	return closest
}

// Retarget clears an expired deactivation, picks the nearest enemy in range
// and decides whether the cooldown allows a shot this step.
func (t *Tower) Retarget(enemies []*Enemy, now float64) {
	if t.Deactivated && now >= t.DeactivatedUntil {
		t.Deactivated = false
	}
	t.Target = 0
	t.CanFire = false
	if t.Deactivated {
		return
	}
	if target := t.nearest(enemies); target != nil {
		t.Target = target.ID
		t.CanFire = now-t.LastShot >= t.FireRate
	}
}

// Shoot launches a projectile at the nearest enemy using the freshest
// positions. Returns nil when the tower may not fire or nothing is in range.
func (t *Tower) Shoot(enemies []*Enemy, now float64) *Projectile {
	if !t.CanFire || t.Deactivated {
		return nil
	}
	target := t.nearest(enemies)
	if target == nil {
		return nil
	}
	p := NewProjectile(t, target)
	t.LastShot = now
	t.CanFire = false
	t.ShotsFired++
	return p
}

// ApplyBuff installs a multiplicative modifier of kind until now+duration.
func (t *Tower) ApplyBuff(kind defs.EffectKind, multiplier, duration, now float64) {
	t.Buffs.Apply(kind, multiplier, duration, now)
	t.RecomputeStats()
}

// UpdateBuffs drops expired buffs.
func (t *Tower) UpdateBuffs(now float64) {
	if expired := t.Buffs.Expire(now); len(expired) > 0 {
		t.RecomputeStats()
	}
}

// ClearDebuffs removes every modifier with a multiplier below 1.
func (t *Tower) ClearDebuffs() {
	for _, kind := range t.Buffs.Kinds() {
		if b, _ := t.Buffs.Get(kind); b.Magnitude < 1 {
			t.Buffs.Remove(kind)
		}
	}
	t.RecomputeStats()
}

// RecomputeStats derives current stats from base stats and active buffs.
// Haste делит интервал стрельбы, остальные баффы умножают урон.
func (t *Tower) RecomputeStats() {
	damage := t.BaseDamage
	haste := 1.0
	for _, kind := range t.Buffs.Kinds() {
		b, _ := t.Buffs.Get(kind)
		if kind == defs.BuffHaste {
			haste *= b.Magnitude
			continue
		}
		damage *= b.Magnitude
	}
	t.Damage = damage
	t.Range = t.BaseRange
	t.FireRate = t.BaseFireRate
	if haste > 0 {
		t.FireRate = t.BaseFireRate / haste
	}
}

// Deactivate disables targeting until now+duration.
func (t *Tower) Deactivate(duration, now float64) {
	t.Deactivated = true
	t.DeactivatedUntil = now + duration
	t.Target = 0
	t.CanFire = false
}

// Reactivate lifts a deactivation immediately.
func (t *Tower) Reactivate() {
	t.Deactivated = false
	t.DeactivatedUntil = 0
}

// Upgrade raises base stats by one level. Returns false at max level.
func (t *Tower) Upgrade() bool {
	if t.Level >= config.MaxTowerLevel {
		return false
	}
	t.Level++
	t.BaseDamage *= config.UpgradeDamageMul
	t.BaseRange *= config.UpgradeRangeMul
	t.BaseFireRate = math.Max(config.MinFireRateMillis, t.BaseFireRate*config.UpgradeFireMul)
	t.RecomputeStats()
	return true
}
