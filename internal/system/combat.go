package system

import (
	"gym-guardian/internal/entity"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update expires buffs, retargets every tower and enqueues the projectiles
// of towers whose cooldown has elapsed. Новые снаряды начинают полёт в этом же кадре.
func (s *CombatSystem) Update(now float64) {
	enemies := s.ecs.EnemyList()
	for _, tower := range s.ecs.TowerList() {
		tower.UpdateBuffs(now)
		tower.Retarget(enemies, now)
		if !tower.CanFire {
			continue
		}
		if projectile := tower.Shoot(enemies, now); projectile != nil {
			s.ecs.AddProjectile(projectile)
		}
	}
}
