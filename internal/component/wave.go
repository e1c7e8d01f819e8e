package component

import "gym-guardian/internal/defs"

// WavePhase — состояние контроллера волн.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveDraining
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	}
	return "idle"
}

// Wave holds the spawn scheduler state.
type Wave struct {
	Number      int // номер текущей (или следующей) волны, с 1
	Phase       WavePhase
	Pattern     defs.SpawnPattern
	Total       int
	Spawned     int
	NextSpawnAt float64 // мс
	BurstLeft   int     // оставшиеся спавны текущей серии (cluster)
}

// InProgress reports whether the wave has started and not yet completed.
func (w *Wave) InProgress() bool {
	return w.Phase != WaveIdle
}
