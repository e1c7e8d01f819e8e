// internal/system/utils.go
package system

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/entity"
	"gym-guardian/internal/types"
)

// ApplyDamage наносит урон врагу и записывает статистику башне-владельцу.
// Убийство засчитывается только при переходе из живого состояния в мёртвое,
// поэтому повторный урон по уже мёртвому врагу не даёт второго килла.
func ApplyDamage(ecs *entity.ECS, enemy *component.Enemy, amount float64, ownerID types.EntityID) (killed bool) {
	wasAlive := enemy.Health > 0
	dead := enemy.TakeDamage(amount)
	killed = wasAlive && dead

	// Башня могла быть продана, пока снаряд летел
	if tower, ok := ecs.Tower(ownerID); ok {
		tower.DamageDealt += amount
		if killed {
			tower.EnemiesKilled++
		}
	}
	return killed
}

// SplashDamage is base damage with linear falloff to zero at radius.
func SplashDamage(base, distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	return base * (1 - distance/radius)
}
