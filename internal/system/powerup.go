// internal/system/powerup.go
package system

import (
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/entity"
	"gym-guardian/internal/event"
	"gym-guardian/internal/utils"
)

// PowerUpSystem активирует способности игрока за золото.
type PowerUpSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	center          utils.Vec2 // центр игрового поля для Cheat Meal
}

func NewPowerUpSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, center utils.Vec2) *PowerUpSystem {
	return &PowerUpSystem{ecs: ecs, eventDispatcher: eventDispatcher, center: center}
}

// Activate spends gold and applies kind. Returns false without mutating
// anything when kind is unknown, active, cooling down or unaffordable.
func (s *PowerUpSystem) Activate(kind defs.PowerUpKind, now float64) bool {
	def, ok := defs.PowerUpLibrary[kind]
	if !ok {
		return false
	}
	state := s.ecs.PowerUps[kind]
	session := s.ecs.Session
	if state == nil || session.GameOver || state.Active(now) || state.CoolingDown(now) || session.Gold < def.Cost {
		return false
	}

	session.Gold -= def.Cost
	state.ActiveUntil = now + config.PowerUpActiveMillis
	state.ReadyAt = now + def.Cooldown

	switch kind {
	case defs.PowerUpPreWorkout:
		for _, tower := range s.ecs.TowerList() {
			tower.ApplyBuff(defs.BuffHaste, 2, config.PowerUpActiveMillis, now)
		}
	case defs.PowerUpCheatMeal:
		s.cheatMeal()
	case defs.PowerUpPepTalk:
		for _, tower := range s.ecs.TowerList() {
			tower.Reactivate()
		}
	case defs.PowerUpWaterBreak:
		for _, tower := range s.ecs.TowerList() {
			tower.Reactivate()
			tower.ClearDebuffs()
		}
	}

	s.eventDispatcher.Emit(event.PowerUpActivated, kind)
	return true
}

// cheatMeal бьёт по всем живым врагам в радиусе и урезает за них награду.
func (s *PowerUpSystem) cheatMeal() {
	for _, enemy := range s.ecs.EnemyList() {
		if !enemy.IsAlive() || enemy.Pos.Dist(s.center) > config.CheatMealRadius {
			continue
		}
		enemy.Reward /= 2
		ApplyDamage(s.ecs, enemy, config.CheatMealDamage, 0)
	}
}
