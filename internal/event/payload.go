package event

import (
	"gym-guardian/internal/defs"
	"gym-guardian/internal/types"
)

// EnemyInfo — данные события о враге.
type EnemyInfo struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	Reward int
}
