// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Kind     TowerKind         `json:"kind"`
	Name     string            `json:"name"`
	Cost     int               `json:"cost"`
	Damage   float64           `json:"damage"`
	Range    float64           `json:"range"`
	FireRate float64           `json:"fire_rate"` // Миллисекунды между выстрелами
	Strike   ProjectileProfile `json:"strike"`
	Visuals  Visuals           `json:"visuals"`
	Special  string            `json:"special"`
}

// ProjectileProfile is the per-type attack profile copied into every
// projectile the tower launches.
type ProjectileProfile struct {
	Behavior     StrikeBehavior `json:"behavior"`
	Speed        float64        `json:"speed"`  // пикселей за шаг
	Radius       float64        `json:"radius"` // контактный радиус снаряда
	SplashRadius float64        `json:"splash_radius,omitempty"`
	Knockback    float64        `json:"knockback,omitempty"`
	PunchRange   float64        `json:"punch_range,omitempty"`
	MaxChase     float64        `json:"max_chase,omitempty"`
	BeamWidth    float64        `json:"beam_width,omitempty"`
	BeamRange    float64        `json:"beam_range,omitempty"`
	Effects      []EffectSpec   `json:"effects,omitempty"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	StrikeColor  color.RGBA `json:"strike_color"`
	RadiusFactor float64    `json:"radius_factor,omitempty"`
}

// TowerLibrary is the library of all tower definitions, keyed by kind.
var TowerLibrary map[TowerKind]TowerDefinition

// Tower returns the definition for kind.
func Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := TowerLibrary[kind]
	return def, ok
}
