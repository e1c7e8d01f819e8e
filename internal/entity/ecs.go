// internal/entity/ecs.go
package entity

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
)

// ECS — хранилище сущностей со стабильными дескрипторами. Порядок обхода
// совпадает с порядком добавления. Удаление двухфазное: сущность помечается
// Removed, а Compact вычищает помеченные после прохода.
type ECS struct {
	GameTime float64 // симуляционные часы, мс
	NextID   types.EntityID

	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	BeamFlashes []*component.BeamFlash
	PowerUps    map[defs.PowerUpKind]*component.PowerUp

	enemyOrder      []types.EntityID
	towerOrder      []types.EntityID
	projectileOrder []types.EntityID

	Wave    *component.Wave
	Session *component.Session
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID:      1,
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		PowerUps:    make(map[defs.PowerUpKind]*component.PowerUp),
		Wave:        &component.Wave{Number: 1},
		Session:     component.NewSession(),
	}
	for _, kind := range defs.AllPowerUpKinds {
		ecs.PowerUps[kind] = &component.PowerUp{Kind: kind}
	}
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	e.ID = ecs.NewEntity()
	ecs.Enemies[e.ID] = e
	ecs.enemyOrder = append(ecs.enemyOrder, e.ID)
	return e.ID
}

func (ecs *ECS) AddTower(t *component.Tower) types.EntityID {
	t.ID = ecs.NewEntity()
	ecs.Towers[t.ID] = t
	ecs.towerOrder = append(ecs.towerOrder, t.ID)
	return t.ID
}

func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.Projectiles[p.ID] = p
	ecs.projectileOrder = append(ecs.projectileOrder, p.ID)
	return p.ID
}

// EnemyList returns a snapshot of enemies in spawn order. Добавления во время
// обхода снимка в него не попадают.
func (ecs *ECS) EnemyList() []*component.Enemy {
	list := make([]*component.Enemy, 0, len(ecs.enemyOrder))
	for _, id := range ecs.enemyOrder {
		if e := ecs.Enemies[id]; e != nil && !e.Removed {
			list = append(list, e)
		}
	}
	return list
}

func (ecs *ECS) TowerList() []*component.Tower {
	list := make([]*component.Tower, 0, len(ecs.towerOrder))
	for _, id := range ecs.towerOrder {
		if t := ecs.Towers[id]; t != nil && !t.Removed {
			list = append(list, t)
		}
	}
	return list
}

func (ecs *ECS) ProjectileList() []*component.Projectile {
	list := make([]*component.Projectile, 0, len(ecs.projectileOrder))
	for _, id := range ecs.projectileOrder {
		if p := ecs.Projectiles[id]; p != nil && !p.Removed {
			list = append(list, p)
		}
	}
	return list
}

// Enemy resolves a handle. Удалённые сущности не возвращаются.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies[id]
	if !ok || e.Removed {
		return nil, false
	}
	return e, true
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.Towers[id]
	if !ok || t.Removed {
		return nil, false
	}
	return t, true
}

// EnemyCount is the number of enemies not marked for removal.
func (ecs *ECS) EnemyCount() int {
	n := 0
	for _, id := range ecs.enemyOrder {
		if !ecs.Enemies[id].Removed {
			n++
		}
	}
	return n
}

// CompactEnemies drops every enemy marked Removed.
func (ecs *ECS) CompactEnemies() {
	kept := ecs.enemyOrder[:0]
	for _, id := range ecs.enemyOrder {
		if ecs.Enemies[id].Removed {
			delete(ecs.Enemies, id)
			continue
		}
		kept = append(kept, id)
	}
	ecs.enemyOrder = kept
}

func (ecs *ECS) CompactTowers() {
	kept := ecs.towerOrder[:0]
	for _, id := range ecs.towerOrder {
		if ecs.Towers[id].Removed {
			delete(ecs.Towers, id)
			continue
		}
		kept = append(kept, id)
	}
	ecs.towerOrder = kept
}

func (ecs *ECS) CompactProjectiles() {
	kept := ecs.projectileOrder[:0]
	for _, id := range ecs.projectileOrder {
		if ecs.Projectiles[id].Removed {
			delete(ecs.Projectiles, id)
			continue
		}
		kept = append(kept, id)
	}
	ecs.projectileOrder = kept
}
