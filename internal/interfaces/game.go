package interfaces

import (
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
)

// Game — намерения игрока, которые слой ввода передаёт симуляции.
// Каждое возвращает false, если действие отклонено без изменений.
type Game interface {
	PlaceTower(kind defs.TowerKind, cell defs.Cell) (types.EntityID, bool)
	SelectTower(id types.EntityID) bool
	SelectCell(cell defs.Cell) (types.EntityID, bool)
	ClearSelection()
	SellTower(id types.EntityID) bool
	UpgradeTower(id types.EntityID) bool
	DeactivateTower(id types.EntityID) bool
	ReactivateTower(id types.EntityID) bool
	StartWave() bool
	ActivatePowerUp(kind defs.PowerUpKind) bool
}
