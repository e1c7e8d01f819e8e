package system

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/entity"
	"gym-guardian/internal/event"
	"gym-guardian/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCenter = utils.Vec2{X: 500, Y: 300}

func newPowerUpFixture() (*entity.ECS, *PowerUpSystem, *event.Recorder) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &event.Recorder{}
	d.Subscribe(rec, event.PowerUpActivated)
	return ecs, NewPowerUpSystem(ecs, d, testCenter), rec
}

func TestPreWorkout_HasteAndCooldown(t *testing.T) {
	ecs, s, rec := newPowerUpFixture()
	tower := component.NewTower(defs.TowerTreadmill, defs.Cell{X: 1, Y: 1}, 32)
	ecs.AddTower(tower)

	require.True(t, s.Activate(defs.PowerUpPreWorkout, 0))
	assert.Equal(t, config.StartingGold-150, ecs.Session.Gold)
	assert.Equal(t, 500.0, tower.FireRate)
	assert.Equal(t, 10.0, tower.Damage)
	assert.Equal(t, 1, rec.Count(event.PowerUpActivated))

	assert.False(t, s.Activate(defs.PowerUpPreWorkout, 100), "ещё активен")
	assert.False(t, s.Activate(defs.PowerUpPreWorkout, config.PowerUpActiveMillis), "перезарядка")
	assert.Equal(t, config.StartingGold-150, ecs.Session.Gold)

	tower.UpdateBuffs(config.PowerUpActiveMillis)
	assert.Equal(t, 1000.0, tower.FireRate)

	require.True(t, s.Activate(defs.PowerUpPreWorkout, 30000))
	assert.Equal(t, config.StartingGold-300, ecs.Session.Gold)
}

func TestActivate_Rejections(t *testing.T) {
	t.Run("unaffordable", func(t *testing.T) {
		ecs, s, rec := newPowerUpFixture()
		ecs.Session.Gold = 50
		assert.False(t, s.Activate(defs.PowerUpCheatMeal, 0))
		assert.Equal(t, 50, ecs.Session.Gold)
		assert.Zero(t, ecs.PowerUps[defs.PowerUpCheatMeal].ReadyAt)
		assert.Zero(t, rec.Count(event.PowerUpActivated))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, s, _ := newPowerUpFixture()
		assert.False(t, s.Activate(defs.PowerUpKind("nap"), 0))
	})

	t.Run("game over", func(t *testing.T) {
		ecs, s, _ := newPowerUpFixture()
		ecs.Session.GameOver = true
		assert.False(t, s.Activate(defs.PowerUpPepTalk, 0))
		assert.Equal(t, config.StartingGold, ecs.Session.Gold)
	})
}

func TestCheatMeal_DamagesAreaAndHalvesReward(t *testing.T) {
	ecs, s, _ := newPowerUpFixture()
	near := addEnemy(ecs, defs.EnemyNormal, testCenter.X+100, testCenter.Y)
	tank := addEnemy(ecs, defs.EnemyBoss, testCenter.X, testCenter.Y)
	far := addEnemy(ecs, defs.EnemyNormal, testCenter.X+400, testCenter.Y)

	require.True(t, s.Activate(defs.PowerUpCheatMeal, 0))
	assert.Equal(t, -100.0, near.Health)
	assert.Equal(t, 10, near.Reward)
	assert.Equal(t, 300.0, tank.Health)
	assert.Equal(t, 50, tank.Reward)
	assert.Equal(t, 100.0, far.Health)
	assert.Equal(t, 20, far.Reward)

	d := event.NewDispatcher()
	NewLifecycleSystem(ecs, d).ReapEnemies()
	assert.Equal(t, config.StartingGold-200+10, ecs.Session.Gold)
	assert.Equal(t, 2, ecs.EnemyCount())
}

func TestPepTalkAndWaterBreak(t *testing.T) {
	ecs, s, _ := newPowerUpFixture()
	tower := component.NewTower(defs.TowerYoga, defs.Cell{X: 3, Y: 3}, 32)
	ecs.AddTower(tower)
	tower.Deactivate(config.DefaultDeactivation, 0)
	tower.ApplyBuff(defs.BuffDamage, 0.5, 60000, 0)

	require.True(t, s.Activate(defs.PowerUpPepTalk, 0))
	assert.False(t, tower.Deactivated)
	assert.True(t, tower.Buffs.Has(defs.BuffDamage), "Pep Talk не снимает дебаффы")

	tower.Deactivate(config.DefaultDeactivation, 100)
	require.True(t, s.Activate(defs.PowerUpWaterBreak, 100))
	assert.False(t, tower.Deactivated)
	assert.False(t, tower.Buffs.Has(defs.BuffDamage))
	assert.Equal(t, 40.0, tower.Damage)
	assert.Equal(t, config.StartingGold-100-125, ecs.Session.Gold)
}
