package system

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/entity"
	"gym-guardian/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEnemy(ecs *entity.ECS, kind defs.EnemyKind, x, y float64) *component.Enemy {
	e := component.NewEnemy(kind, nil)
	e.Pos = utils.Vec2{X: x, Y: y}
	ecs.AddEnemy(e)
	return e
}

func strike(t *testing.T, kind defs.TowerKind) defs.ProjectileProfile {
	t.Helper()
	def, ok := defs.Tower(kind)
	require.True(t, ok)
	return def.Strike
}

// runUntilTerminal advances p until it resolves, at most limit ticks.
func runUntilTerminal(s *ProjectileSystem, ecs *entity.ECS, p *component.Projectile, limit int) int {
	ticks := 0
	for !p.Terminal() && ticks < limit {
		ticks++
		s.Advance(p, ecs.EnemyList(), float64(ticks)*config.StepMillis)
	}
	return ticks
}

func TestSplashDamage(t *testing.T) {
	tests := []struct {
		name             string
		distance, radius float64
		expected         float64
	}{
		{"center", 0, 80, 35},
		{"half radius", 40, 80, 17.5},
		{"edge", 80, 80, 0},
		{"outside", 120, 80, 0},
		{"zero radius", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SplashDamage(35, tt.distance, tt.radius), 1e-9)
		})
	}
}

func TestSplash_FalloffAccumulates(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	tank := addEnemy(ecs, defs.EnemyTank, 100, 100)
	profile := defs.ProjectileProfile{Behavior: defs.StrikeSplash, Speed: 5, Radius: 5, SplashRadius: 80}

	for _, x := range []float64{100, 140, 180} {
		p := &component.Projectile{Damage: 35, Profile: profile, Pos: utils.Vec2{X: x, Y: 100}}
		s.splash(p, ecs.EnemyList(), 0)
	}
	assert.InDelta(t, 147.5, tank.Health, 1e-9)
}

func TestSplash_Knockback(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	center := addEnemy(ecs, defs.EnemyTank, 0, 0)
	side := addEnemy(ecs, defs.EnemyTank, 50, 0)

	p := &component.Projectile{Damage: 35, Profile: strike(t, defs.TowerKettlebell)}
	s.splash(p, ecs.EnemyList(), 0)

	assert.InDelta(t, 165.0, center.Health, 1e-9)
	assert.Equal(t, utils.Vec2{}, center.Pos, "в точке удара отталкивания нет")
	assert.InDelta(t, 182.5, side.Health, 1e-9)
	assert.InDelta(t, 60.0, side.Pos.X, 1e-9)
	assert.InDelta(t, 0.0, side.Pos.Y, 1e-9)
}

func TestFly_SingleTargetHitAppliesSlow(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	tower := component.NewTower(defs.TowerTreadmill, defs.Cell{X: 0, Y: 0}, 32)
	ecs.AddTower(tower)
	enemy := addEnemy(ecs, defs.EnemyNormal, 116, 16)

	p := component.NewProjectile(tower, enemy)
	ecs.AddProjectile(p)
	ticks := runUntilTerminal(s, ecs, p, 100)

	require.True(t, p.HitTarget())
	assert.Equal(t, 18, ticks)
	assert.InDelta(t, 90.0, enemy.Health, 1e-9)
	assert.Equal(t, 1.0, enemy.Speed)
	assert.InDelta(t, 10.0, tower.DamageDealt, 1e-9)

	// Терминальный снаряд больше не действует
	s.Advance(p, ecs.EnemyList(), 1000)
	assert.InDelta(t, 90.0, enemy.Health, 1e-9)
}

func TestFly_SplashHitsNeighbours(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	target := addEnemy(ecs, defs.EnemyNormal, 200, 100)
	neighbour := addEnemy(ecs, defs.EnemyNormal, 235, 100)
	far := addEnemy(ecs, defs.EnemyNormal, 400, 100)

	p := &component.Projectile{
		TargetID: target.ID,
		Damage:   25,
		Profile:  strike(t, defs.TowerProtein),
		Pos:      utils.Vec2{X: 195, Y: 100},
	}
	s.Advance(p, ecs.EnemyList(), 0)

	require.True(t, p.HitTarget())
	assert.InDelta(t, 100-25*(1-5.0/80), target.Health, 1e-9)
	assert.InDelta(t, 87.5, neighbour.Health, 1e-9)
	assert.Equal(t, 100.0, far.Health)
}

func TestFly_MissesWhenTargetGone(t *testing.T) {
	t.Run("dead", func(t *testing.T) {
		ecs := entity.NewECS()
		s := NewProjectileSystem(ecs)
		enemy := addEnemy(ecs, defs.EnemyNormal, 100, 0)
		enemy.Health = 0

		p := &component.Projectile{TargetID: enemy.ID, Damage: 10, Profile: strike(t, defs.TowerTreadmill)}
		s.Advance(p, ecs.EnemyList(), 0)
		assert.True(t, p.Missed())
		assert.Equal(t, 0.0, enemy.Health)
	})

	t.Run("removed", func(t *testing.T) {
		ecs := entity.NewECS()
		s := NewProjectileSystem(ecs)
		enemy := addEnemy(ecs, defs.EnemyNormal, 100, 0)
		enemy.Removed = true
		ecs.CompactEnemies()

		p := &component.Projectile{TargetID: enemy.ID, Damage: 10, Profile: strike(t, defs.TowerTreadmill)}
		s.Advance(p, ecs.EnemyList(), 0)
		assert.True(t, p.Missed())
	})

	t.Run("unknown behavior", func(t *testing.T) {
		ecs := entity.NewECS()
		s := NewProjectileSystem(ecs)
		p := &component.Projectile{Profile: defs.ProjectileProfile{Behavior: "boomerang"}}
		s.Advance(p, nil, 0)
		assert.True(t, p.Missed())
	})
}

func TestBeam_PiercesCorridorInOneTick(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	target := addEnemy(ecs, defs.EnemyNormal, 100, 0)
	pierced := addEnemy(ecs, defs.EnemyNormal, 150, 5)
	behind := addEnemy(ecs, defs.EnemyNormal, -50, 0)
	aside := addEnemy(ecs, defs.EnemyNormal, 100, 20)
	beyond := addEnemy(ecs, defs.EnemyNormal, 250, 0)

	p := &component.Projectile{
		Kind:     defs.TowerSpin,
		TargetID: target.ID,
		Damage:   8,
		Profile:  strike(t, defs.TowerSpin),
	}
	s.Advance(p, ecs.EnemyList(), 500)

	require.True(t, p.HitTarget())
	assert.Equal(t, 92.0, target.Health)
	assert.Equal(t, 92.0, pierced.Health)
	assert.Equal(t, 100.0, behind.Health)
	assert.Equal(t, 100.0, aside.Health)
	assert.Equal(t, 100.0, beyond.Health)
	assert.Equal(t, target.Pos, p.BeamEnd)

	require.Len(t, ecs.BeamFlashes, 1)
	assert.Equal(t, 500+config.BeamFlashDuration, ecs.BeamFlashes[0].ExpiresAt)

	s.Advance(p, ecs.EnemyList(), 520)
	assert.Equal(t, 92.0, target.Health)
	assert.Len(t, ecs.BeamFlashes, 1)

	v := NewVisualEffectSystem(ecs)
	v.Update(500 + config.BeamFlashDuration)
	assert.Empty(t, ecs.BeamFlashes)
}

func TestBeam_NoHitsMisses(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	target := addEnemy(ecs, defs.EnemyNormal, 250, 0)

	p := &component.Projectile{TargetID: target.ID, Damage: 8, Profile: strike(t, defs.TowerSpin)}
	s.Advance(p, ecs.EnemyList(), 0)

	assert.True(t, p.Missed())
	assert.Equal(t, 100.0, target.Health)
	assert.Empty(t, ecs.BeamFlashes)
}

func TestMelee(t *testing.T) {
	t.Run("punches within range", func(t *testing.T) {
		ecs := entity.NewECS()
		s := NewProjectileSystem(ecs)
		enemy := addEnemy(ecs, defs.EnemyNormal, 30, 0)

		p := &component.Projectile{TargetID: enemy.ID, Damage: 15, Profile: strike(t, defs.TowerHIIT)}
		ticks := runUntilTerminal(s, ecs, p, 100)

		require.True(t, p.HitTarget())
		assert.Equal(t, 3, ticks)
		assert.Equal(t, 85.0, enemy.Health)
	})

	t.Run("gives up beyond max chase", func(t *testing.T) {
		ecs := entity.NewECS()
		s := NewProjectileSystem(ecs)
		enemy := addEnemy(ecs, defs.EnemyNormal, 500, 0)

		p := &component.Projectile{TargetID: enemy.ID, Damage: 15, Profile: strike(t, defs.TowerHIIT)}
		ticks := runUntilTerminal(s, ecs, p, 100)

		require.True(t, p.Missed())
		assert.Equal(t, 34, ticks)
		assert.Greater(t, p.Pos.Dist(p.Origin), 200.0)
		assert.Equal(t, 100.0, enemy.Health)
	})
}

func TestApplyDamage_KillCountedOnce(t *testing.T) {
	ecs := entity.NewECS()
	tower := component.NewTower(defs.TowerTreadmill, defs.Cell{}, 32)
	ecs.AddTower(tower)
	enemy := addEnemy(ecs, defs.EnemyNormal, 0, 0)
	enemy.Health = 10

	assert.True(t, ApplyDamage(ecs, enemy, 10, tower.ID))
	assert.False(t, ApplyDamage(ecs, enemy, 10, tower.ID))
	assert.Equal(t, 1, tower.EnemiesKilled)
	assert.InDelta(t, 20.0, tower.DamageDealt, 1e-9)

	// Башня-владелец могла быть продана
	assert.NotPanics(t, func() { ApplyDamage(ecs, enemy, 5, 999) })
}

func TestProjectileSystemUpdate_AdvancesAll(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs)
	enemy := addEnemy(ecs, defs.EnemyNormal, 100, 0)
	a := &component.Projectile{TargetID: enemy.ID, Damage: 10, Profile: strike(t, defs.TowerTreadmill)}
	b := &component.Projectile{TargetID: enemy.ID, Damage: 10, Profile: strike(t, defs.TowerTreadmill)}
	ecs.AddProjectile(a)
	ecs.AddProjectile(b)

	s.Update(0)
	assert.InDelta(t, 5.0, a.Pos.X, 1e-9)
	assert.InDelta(t, 5.0, b.Pos.X, 1e-9)
}
