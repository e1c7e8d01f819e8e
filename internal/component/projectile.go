// internal/component/projectile.go
package component

import (
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
	"gym-guardian/internal/utils"
)

// ProjectileState is the flight state machine: flying → hit | missed.
type ProjectileState int

const (
	ProjectileFlying ProjectileState = iota
	ProjectileHit
	ProjectileMissed
)

// Projectile представляет летящий снаряд. Цель и башня хранятся как
// дескрипторы и могут исчезнуть до попадания.
type Projectile struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	OwnerID  types.EntityID
	TargetID types.EntityID
	Origin   utils.Vec2
	Pos      utils.Vec2
	Damage   float64
	Profile  defs.ProjectileProfile
	State    ProjectileState
	BeamEnd  utils.Vec2 // конец луча для отрисовки
	Removed  bool
}

// NewProjectile creates a projectile fired by t at target with t's current stats.
func NewProjectile(t *Tower, target *Enemy) *Projectile {
	return &Projectile{
		Kind:     t.Kind,
		OwnerID:  t.ID,
		TargetID: target.ID,
		Origin:   t.Center,
		Pos:      t.Center,
		Damage:   t.Damage,
		Profile:  t.Strike,
		State:    ProjectileFlying,
		BeamEnd:  target.Pos,
	}
}

func (p *Projectile) HitTarget() bool { return p.State == ProjectileHit }
func (p *Projectile) Missed() bool { return p.State == ProjectileMissed }
func (p *Projectile) Terminal() bool { return p.State != ProjectileFlying }

// MarkHit moves a flying projectile to hit. Terminal states are final.
func (p *Projectile) MarkHit() {
	if p.State == ProjectileFlying {
		p.State = ProjectileHit
	}
}

// MarkMissed moves a flying projectile to missed. Terminal states are final.
func (p *Projectile) MarkMissed() {
	if p.State == ProjectileFlying {
		p.State = ProjectileMissed
	}
}
