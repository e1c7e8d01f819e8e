package component

import (
	"gym-guardian/internal/defs"
	"gym-guardian/internal/utils"
)

// BeamFlash — визуальный след мгновенного луча, живёт до ExpiresAt.
type BeamFlash struct {
	Kind      defs.TowerKind
	From, To  utils.Vec2
	ExpiresAt float64
}
