// internal/app/tower_management.go
package app

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/config"
	"gym-guardian/internal/defs"
	"gym-guardian/internal/event"
	"gym-guardian/internal/types"
)

// PlaceTower attempts to place a tower of kind on cell. Клетка вне поля, на
// маршруте или занятая, а также нехватка золота отклоняются без изменений.
func (g *Game) PlaceTower(kind defs.TowerKind, cell defs.Cell) (types.EntityID, bool) {
	if !g.canPlaceTower(kind, cell) {
		return 0, false
	}
	def, _ := defs.Tower(kind)

	tower := component.NewTower(kind, cell, g.GridSize)
	id := g.ECS.AddTower(tower)
	g.occupied[cell] = id
	g.ECS.Session.Gold -= def.Cost

	g.EventDispatcher.Emit(event.TowerPlaced, id)
	return id, true
}

func (g *Game) canPlaceTower(kind defs.TowerKind, cell defs.Cell) bool {
	def, ok := defs.Tower(kind)
	if !ok || !g.InGrid(cell) || g.pathCells[cell] {
		return false
	}
	if _, taken := g.occupied[cell]; taken {
		return false
	}
	return g.ECS.Session.Gold >= def.Cost
}

// CanAfford reports whether the player has gold for a tower of kind.
func (g *Game) CanAfford(kind defs.TowerKind) bool {
	def, ok := defs.Tower(kind)
	return ok && g.ECS.Session.Gold >= def.Cost
}

// TowerAt возвращает башню на указанной клетке, если она существует.
func (g *Game) TowerAt(cell defs.Cell) (*component.Tower, bool) {
	id, ok := g.occupied[cell]
	if !ok {
		return nil, false
	}
	return g.ECS.Tower(id)
}

// SellTower refunds half of the gold spent on the tower and frees its cell.
func (g *Game) SellTower(id types.EntityID) bool {
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return false
	}
	g.ECS.Session.Gold += tower.Spent / 2
	tower.Removed = true
	delete(g.occupied, tower.Cell)
	if g.selectedTower == id {
		g.selectedTower = 0
	}
	g.ECS.CompactTowers()

	g.EventDispatcher.Emit(event.TowerSold, id)
	return true
}

// UpgradeCost is the gold needed to raise a tower of kind by one level.
func UpgradeCost(kind defs.TowerKind) int {
	def, _ := defs.Tower(kind)
	return def.Cost / 2
}

// UpgradeTower spends gold to raise the tower one level.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	tower, ok := g.ECS.Tower(id)
	if !ok || tower.Level >= config.MaxTowerLevel {
		return false
	}
	cost := UpgradeCost(tower.Kind)
	if g.ECS.Session.Gold < cost {
		return false
	}
	tower.Upgrade()
	tower.Spent += cost
	g.ECS.Session.Gold -= cost

	g.EventDispatcher.Emit(event.TowerUpgraded, id)
	return true
}

// SelectTower делает башню выбранной, снимая выделение с предыдущей.
func (g *Game) SelectTower(id types.EntityID) bool {
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return false
	}
	g.ClearSelection()
	tower.Selected = true
	g.selectedTower = id
	return true
}

// SelectCell selects the tower on cell, or clears the selection when the cell is empty.
func (g *Game) SelectCell(cell defs.Cell) (types.EntityID, bool) {
	tower, ok := g.TowerAt(cell)
	if !ok {
		g.ClearSelection()
		return 0, false
	}
	g.SelectTower(tower.ID)
	return tower.ID, true
}

func (g *Game) ClearSelection() {
	if tower, ok := g.ECS.Tower(g.selectedTower); ok {
		tower.Selected = false
	}
	g.selectedTower = 0
}

func (g *Game) SelectedTower() (*component.Tower, bool) {
	return g.ECS.Tower(g.selectedTower)
}

// DeactivateTower disables the tower for the default deactivation period.
func (g *Game) DeactivateTower(id types.EntityID) bool {
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return false
	}
	tower.Deactivate(config.DefaultDeactivation, g.Now())
	return true
}

func (g *Game) ReactivateTower(id types.EntityID) bool {
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return false
	}
	tower.Reactivate()
	return true
}

// StartWave begins the next enemy wave.
func (g *Game) StartWave() bool {
	return g.WaveSystem.StartWave(g.Now())
}

func (g *Game) ActivatePowerUp(kind defs.PowerUpKind) bool {
	return g.PowerUpSystem.Activate(kind, g.Now())
}
