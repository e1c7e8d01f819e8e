package system

import (
	"gym-guardian/internal/entity"
)

// MovementSystem продвигает врагов по маршруту и тикает их эффекты.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(now float64) {
	for _, enemy := range s.ecs.EnemyList() {
		enemy.Advance(now)
	}
}
