package system

import (
	"gym-guardian/internal/component"
	"gym-guardian/internal/entity"
)

// VisualEffectSystem удаляет отработавшие вспышки лучей.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(now float64) {
	kept := make([]*component.BeamFlash, 0, len(s.ecs.BeamFlashes))
	for _, flash := range s.ecs.BeamFlashes {
		if now < flash.ExpiresAt {
			kept = append(kept, flash)
		}
	}
	s.ecs.BeamFlashes = kept
}
