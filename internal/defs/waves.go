// internal/defs/waves.go
package defs

// PatternEntry is one weighted option in a spawn-pattern table.
type PatternEntry struct {
	Pattern SpawnPattern
	Weight  int
}

// PatternTable returns the weighted pattern options for a wave number.
// Одна случайная выборка из таблицы делается на всю волну.
func PatternTable(wave int) []PatternEntry {
	switch {
	case wave <= 2:
		return []PatternEntry{{PatternNormal, 100}}
	case wave <= 5:
		return []PatternEntry{{PatternNormal, 70}, {PatternCluster, 30}}
	default:
		return []PatternEntry{{PatternNormal, 50}, {PatternCluster, 40}, {PatternRush, 10}}
	}
}

// EnemyForSpawn picks the enemy kind for spawn index idx (0-based) of a wave
// with total enemies. Variety starts at wave 3.
func EnemyForSpawn(wave, idx, total int) EnemyKind {
	if wave < 3 {
		return EnemyNormal
	}
	switch {
	case idx == total-1:
		return EnemyBoss
	case wave >= 5 && idx%5 == 0:
		return EnemyTank
	case idx%3 == 0:
		return EnemyFast
	}
	return EnemyNormal
}

// EnemiesForWave is the total number of enemies in a wave.
func EnemiesForWave(wave, perWave int) int {
	return wave * perWave
}

// ClusterSize is the burst length for the cluster pattern.
func ClusterSize(wave int) int {
	size := 2 + wave/2
	if size > 5 {
		size = 5
	}
	return size
}
