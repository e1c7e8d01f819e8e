package defs

import "image/color"

// PowerUpDefinition describes a purchasable player ability.
type PowerUpDefinition struct {
	Kind        PowerUpKind `json:"kind"`
	Name        string      `json:"name"`
	Key         string      `json:"key"`
	Cost        int         `json:"cost"`
	Cooldown    float64     `json:"cooldown"` // мс
	Description string      `json:"description"`
	Color       color.RGBA  `json:"color"`
}

// PowerUpLibrary is the library of all power-up definitions, keyed by kind.
var PowerUpLibrary map[PowerUpKind]PowerUpDefinition
