package component

import (
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
	"gym-guardian/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enemyAt(id types.EntityID, x, y float64) *Enemy {
	e := NewEnemy(defs.EnemyNormal, nil)
	e.ID = id
	e.Pos = utils.Vec2{X: x, Y: y}
	return e
}

func TestNewTower_CenterAndStats(t *testing.T) {
	tower := NewTower(defs.TowerTreadmill, defs.Cell{X: 2, Y: 1}, 32)

	assert.Equal(t, utils.Vec2{X: 80, Y: 48}, tower.Center)
	assert.Equal(t, 1, tower.Level)
	assert.Equal(t, 100, tower.Spent)
	assert.Equal(t, 10.0, tower.Damage)
	assert.Equal(t, 150.0, tower.Range)
	assert.Equal(t, 1000.0, tower.FireRate)
}

func TestTowerFireRateGating(t *testing.T) {
	tower := NewTower(defs.TowerTreadmill, defs.Cell{X: 0, Y: 0}, 32)
	tower.ID = 1
	enemies := []*Enemy{enemyAt(7, 50, 16)}

	tower.Retarget(enemies, 0)
	require.True(t, tower.CanFire)
	p := tower.Shoot(enemies, 0)
	require.NotNil(t, p)
	assert.Equal(t, types.EntityID(7), p.TargetID)
	assert.Equal(t, types.EntityID(1), p.OwnerID)
	assert.Equal(t, tower.Center, p.Origin)

	tower.Retarget(enemies, 999)
	assert.False(t, tower.CanFire)
	assert.Equal(t, types.EntityID(7), tower.Target)
	assert.Nil(t, tower.Shoot(enemies, 999))

	tower.Retarget(enemies, 1000)
	assert.True(t, tower.CanFire)
	assert.NotNil(t, tower.Shoot(enemies, 1000))
	assert.Equal(t, 2, tower.ShotsFired)
}

func TestTowerTargeting(t *testing.T) {
	tower := NewTower(defs.TowerTreadmill, defs.Cell{X: 0, Y: 0}, 32)

	t.Run("nearest wins, first found breaks ties", func(t *testing.T) {
		enemies := []*Enemy{
			enemyAt(1, 116, 16),
			enemyAt(2, 16, 66),
			enemyAt(3, 66, 16),
		}
		tower.Retarget(enemies, 0)
		assert.Equal(t, types.EntityID(2), tower.Target)
	})

	t.Run("out of range and dead are ignored", func(t *testing.T) {
		far := enemyAt(1, 500, 16)
		dead := enemyAt(2, 20, 16)
		dead.Health = 0
		leaked := enemyAt(3, 30, 16)
		leaked.ReachedEnd = true

		tower.Retarget([]*Enemy{far, dead, leaked}, 0)
		assert.Zero(t, tower.Target)
		assert.False(t, tower.CanFire)
	})

	t.Run("range boundary is inclusive", func(t *testing.T) {
		tower.Retarget([]*Enemy{enemyAt(4, 166, 16)}, 0)
		assert.Equal(t, types.EntityID(4), tower.Target)
	})
}

func TestTowerDeactivation(t *testing.T) {
	tower := NewTower(defs.TowerTreadmill, defs.Cell{X: 0, Y: 0}, 32)
	enemies := []*Enemy{enemyAt(1, 40, 16)}

	tower.Deactivate(config.DefaultDeactivation, 0)
	tower.Retarget(enemies, 100)
	assert.Zero(t, tower.Target)
	assert.Nil(t, tower.Shoot(enemies, 100))

	tower.Retarget(enemies, config.DefaultDeactivation)
	assert.False(t, tower.Deactivated)
	assert.Equal(t, types.EntityID(1), tower.Target)

	tower.Deactivate(config.DefaultDeactivation, 6000)
	tower.Reactivate()
	assert.False(t, tower.Deactivated)
}

func TestTowerBuffs(t *testing.T) {
	tower := NewTower(defs.TowerTreadmill, defs.Cell{X: 0, Y: 0}, 32)

	tower.ApplyBuff(defs.BuffDamage, 1.5, 1000, 0)
	tower.ApplyBuff(defs.EffectKind("coach"), 2, 2000, 0)
	assert.InDelta(t, 30.0, tower.Damage, 1e-9)

	tower.ApplyBuff(defs.BuffHaste, 2, 500, 0)
	assert.InDelta(t, 30.0, tower.Damage, 1e-9, "haste не влияет на урон")
	assert.Equal(t, 500.0, tower.FireRate)

	tower.UpdateBuffs(500)
	assert.Equal(t, 1000.0, tower.FireRate)

	tower.UpdateBuffs(1000)
	assert.InDelta(t, 20.0, tower.Damage, 1e-9)

	tower.ApplyBuff(defs.BuffDamage, 0.5, 1000, 1000)
	tower.ClearDebuffs()
	assert.False(t, tower.Buffs.Has(defs.BuffDamage))
	assert.True(t, tower.Buffs.Has(defs.EffectKind("coach")))
	assert.InDelta(t, 20.0, tower.Damage, 1e-9)
}

func TestTowerUpgrade(t *testing.T) {
	tower := NewTower(defs.TowerTreadmill, defs.Cell{X: 0, Y: 0}, 32)

	require.True(t, tower.Upgrade())
	assert.Equal(t, 2, tower.Level)
	assert.InDelta(t, 15.0, tower.Damage, 1e-9)
	assert.InDelta(t, 165.0, tower.Range, 1e-9)
	assert.InDelta(t, 900.0, tower.FireRate, 1e-9)

	for tower.Level < config.MaxTowerLevel {
		require.True(t, tower.Upgrade())
	}
	assert.False(t, tower.Upgrade())
	assert.Equal(t, config.MaxTowerLevel, tower.Level)
	assert.GreaterOrEqual(t, tower.FireRate, config.MinFireRateMillis)
}

func TestProjectileStateIsFinal(t *testing.T) {
	p := &Projectile{}
	assert.False(t, p.Terminal())

	p.MarkHit()
	p.MarkMissed()
	assert.True(t, p.HitTarget())
	assert.False(t, p.Missed())

	q := &Projectile{}
	q.MarkMissed()
	q.MarkHit()
	assert.True(t, q.Missed())
}

func TestPowerUpWindows(t *testing.T) {
	p := &PowerUp{ActiveUntil: 100, ReadyAt: 300}

	assert.True(t, p.Active(99))
	assert.False(t, p.Active(100))
	assert.True(t, p.CoolingDown(299))
	assert.Equal(t, 200.0, p.CooldownLeft(100))
	assert.Zero(t, p.CooldownLeft(300))
}
