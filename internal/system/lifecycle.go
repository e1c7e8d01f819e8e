// internal/system/lifecycle.go
package system

import (
	"gym-guardian/internal/entity"
	"gym-guardian/internal/event"
	"log"
)

// LifecycleSystem убирает погибших и дошедших до конца врагов, начисляет
// золото и списывает жизни, а также вычищает завершённые снаряды.
type LifecycleSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewLifecycleSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// ReapEnemies removes dead and leaked enemies in one pass. Смерть проверяется
// раньше утечки: враг, убитый на последней точке, приносит золото.
func (s *LifecycleSystem) ReapEnemies() {
	session := s.ecs.Session
	for _, enemy := range s.ecs.EnemyList() {
		info := event.EnemyInfo{ID: enemy.ID, Kind: enemy.Kind, Reward: enemy.Reward}
		switch {
		case enemy.Health <= 0:
			enemy.Removed = true
			session.Gold += enemy.Reward
			session.Kills++
			s.eventDispatcher.Emit(event.EnemyKilled, info)
		case enemy.ReachedEnd:
			enemy.Removed = true
			session.Lives--
			session.Leaks++
			s.eventDispatcher.Emit(event.EnemyLeaked, info)
		}
	}
	s.ecs.CompactEnemies()

	if session.Lives > 0 {
		return
	}
	session.Lives = 0
	if !session.GameOver {
		session.GameOver = true
		log.Printf("Игра окончена на волне %d", s.ecs.Wave.Number)
		s.eventDispatcher.Emit(event.GameOver, s.ecs.Wave.Number)
	}
}

// ReapProjectiles removes every projectile that reached a terminal state.
func (s *LifecycleSystem) ReapProjectiles() {
	for _, p := range s.ecs.ProjectileList() {
		if p.Terminal() {
			p.Removed = true
		}
	}
	s.ecs.CompactProjectiles()
}
