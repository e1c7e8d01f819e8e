// internal/interfaces/game_context.go
package interfaces

// GameContext управляет темпом симуляции.
type GameContext interface {
	Update(deltaSeconds float64) int
	CycleSpeed() int
	TogglePause()
	IsPaused() bool
	IsGameOver() bool
}
