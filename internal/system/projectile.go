// internal/system/projectile.go
package system

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/entity"
	"math"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(now float64) {
	enemies := s.ecs.EnemyList()
	for _, projectile := range s.ecs.ProjectileList() {
		s.Advance(projectile, enemies, now)
	}
}

// Advance runs one tick of a projectile against the live enemy set.
// Терминальные снаряды не меняются.
func (s *ProjectileSystem) Advance(p *component.Projectile, enemies []*component.Enemy, now float64) {
	if p.Terminal() {
		return
	}
	switch p.Profile.Behavior {
	case defs.StrikeBeam:
		s.resolveBeam(p, enemies, now)
	case defs.StrikeMelee:
		s.chase(p)
	case defs.StrikeSingle, defs.StrikeSplash:
		s.fly(p, enemies, now)
	default:
		p.MarkMissed()
	}
}

// target resolves the projectile's target handle. Мёртвая, ушедшая или
// удалённая цель означает промах, а не ошибку.
func (s *ProjectileSystem) target(p *component.Projectile) (*component.Enemy, bool) {
	target, ok := s.ecs.Enemy(p.TargetID)
	if !ok || !target.IsAlive() {
		return nil, false
	}
	return target, true
}

func (s *ProjectileSystem) fly(p *component.Projectile, enemies []*component.Enemy, now float64) {
	target, ok := s.target(p)
	if !ok {
		p.MarkMissed()
		return
	}

	d := target.Pos.Sub(p.Pos)
	distance := d.Len()
	if distance <= p.Profile.Radius+target.Radius {
		if p.Profile.Behavior == defs.StrikeSplash {
			s.splash(p, enemies, now)
		} else {
			ApplyDamage(s.ecs, target, p.Damage, p.OwnerID)
			if len(p.Profile.Effects) > 0 {
				target.ApplyEffects(p.Profile.Effects, now)
			}
		}
		p.MarkHit()
		return
	}
	if distance > 0 {
		p.Pos = p.Pos.Add(d.Scale(p.Profile.Speed / distance))
	}
}

// splash damages every live enemy around the impact point with linear
// falloff and pushes it away when the profile carries knockback.
func (s *ProjectileSystem) splash(p *component.Projectile, enemies []*component.Enemy, now float64) {
	impact := p.Pos
	radius := p.Profile.SplashRadius
	for _, enemy := range enemies {
		if !enemy.IsAlive() {
			continue
		}
		offset := enemy.Pos.Sub(impact)
		distance := offset.Len()
		if distance > radius {
			continue
		}
		falloff := 1 - distance/radius
		ApplyDamage(s.ecs, enemy, SplashDamage(p.Damage, distance, radius), p.OwnerID)
		if len(p.Profile.Effects) > 0 {
			enemy.ApplyEffects(p.Profile.Effects, now)
		}
		if p.Profile.Knockback > 0 && distance > 0 {
			enemy.Push(offset.Normalize().Scale(p.Profile.Knockback * falloff))
		}
	}
}

// chase moves a melee trainer toward its target and punches within range.
func (s *ProjectileSystem) chase(p *component.Projectile) {
	target, ok := s.target(p)
	if !ok {
		p.MarkMissed()
		return
	}

	d := target.Pos.Sub(p.Pos)
	distance := d.Len()
	if distance <= p.Profile.PunchRange {
		ApplyDamage(s.ecs, target, p.Damage, p.OwnerID)
		p.MarkHit()
		return
	}
	if distance > 0 {
		p.Pos = p.Pos.Add(d.Scale(p.Profile.Speed / distance))
	}
	// Тренер не гонится бесконечно
	if p.Pos.Dist(p.Origin) > p.Profile.MaxChase {
		p.MarkMissed()
	}
}

// resolveBeam hits every live enemy in the corridor along the line to the
// target in a single tick.
func (s *ProjectileSystem) resolveBeam(p *component.Projectile, enemies []*component.Enemy, now float64) {
	target, ok := s.target(p)
	if !ok {
		p.MarkMissed()
		return
	}

	dir := target.Pos.Sub(p.Origin).Normalize()
	hits := 0
	for _, enemy := range enemies {
		if !enemy.IsAlive() {
			continue
		}
		v := enemy.Pos.Sub(p.Origin)
		along := v.Dot(dir)
		offset := math.Abs(v.Cross(dir))
		if along <= 0 || offset > p.Profile.BeamWidth || v.Len() > p.Profile.BeamRange {
			continue
		}
		ApplyDamage(s.ecs, enemy, p.Damage, p.OwnerID)
		if len(p.Profile.Effects) > 0 {
			enemy.ApplyEffects(p.Profile.Effects, now)
		}
		hits++
	}

	p.BeamEnd = target.Pos
	if hits == 0 {
		p.MarkMissed()
		return
	}
	p.MarkHit()
	s.ecs.BeamFlashes = append(s.ecs.BeamFlashes, &component.BeamFlash{
		Kind:      p.Kind,
		From:      p.Origin,
		To:        p.BeamEnd,
		ExpiresAt: now + config.BeamFlashDuration,
	})
}
