// internal/system/wave.go
package system

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/entity"
	"gym-guardian/internal/event"
	"gym-guardian/internal/utils"
	"log"
)

// WaveSystem — контроллер волн: idle → spawning → draining → idle.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	path            component.Path
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, path component.Path) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		path:            path,
	}
}

// StartWave arms the current wave. Возвращает false, если волна уже идёт
// или игра окончена.
func (s *WaveSystem) StartWave(now float64) bool {
	wave := s.ecs.Wave
	if wave.InProgress() || s.ecs.Session.GameOver {
		return false
	}

	wave.Phase = component.WaveSpawning
	wave.Total = defs.EnemiesForWave(wave.Number, config.EnemiesPerWave)
	wave.Spawned = 0
	wave.BurstLeft = 0
	wave.Pattern = s.SelectPattern(wave.Number)
	wave.NextSpawnAt = now + s.SpawnDelay(wave)

	log.Printf("Волна %d началась: %d врагов, паттерн %s", wave.Number, wave.Total, wave.Pattern)
	s.eventDispatcher.Emit(event.WaveStarted, wave.Number)
	return true
}

// SelectPattern makes the single per-wave pattern draw.
func (s *WaveSystem) SelectPattern(waveNumber int) defs.SpawnPattern {
	return s.rng.ChoosePattern(defs.PatternTable(waveNumber))
}

// SpawnDelay returns the delay in ms before the next spawn of wave.
// Для cluster меняет счётчик серии.
func (s *WaveSystem) SpawnDelay(wave *component.Wave) float64 {
	switch wave.Pattern {
	case defs.PatternCluster:
		if wave.BurstLeft > 0 {
			return float64(s.rng.IntRange(200, 400))
		}
		wave.BurstLeft = defs.ClusterSize(wave.Number)
		return float64(s.rng.IntRange(2500, 3500))
	case defs.PatternRush:
		return float64(s.rng.IntRange(300, 700))
	default:
		base := 2000 - wave.Number*100
		if base < 1000 {
			base = 1000
		}
		return float64(base + s.rng.IntRange(-200, 200))
	}
}

// Update spawns at most one enemy when the spawn deadline has passed.
func (s *WaveSystem) Update(now float64) {
	wave := s.ecs.Wave
	if wave.Phase != component.WaveSpawning || now < wave.NextSpawnAt {
		return
	}

	s.spawnEnemy(wave)
	if wave.Pattern == defs.PatternCluster && wave.BurstLeft > 0 {
		wave.BurstLeft--
	}
	if wave.Spawned >= wave.Total {
		wave.Phase = component.WaveDraining
		return
	}
	wave.NextSpawnAt = now + s.SpawnDelay(wave)
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	kind := defs.EnemyForSpawn(wave.Number, wave.Spawned, wave.Total)
	enemy := component.NewEnemy(kind, s.path)
	s.ecs.AddEnemy(enemy)
	wave.Spawned++
	s.eventDispatcher.Emit(event.EnemySpawned, event.EnemyInfo{ID: enemy.ID, Kind: kind, Reward: enemy.Reward})
}

// CheckCompletion closes a drained wave once no enemies remain. Номер волны
// растёт ровно один раз за волну.
func (s *WaveSystem) CheckCompletion() bool {
	wave := s.ecs.Wave
	if wave.Phase != component.WaveDraining || s.ecs.EnemyCount() > 0 {
		return false
	}
	finished := wave.Number
	wave.Number++
	wave.Phase = component.WaveIdle
	log.Printf("Волна %d завершена", finished)
	s.eventDispatcher.Emit(event.WaveEnded, finished)
	return true
}
