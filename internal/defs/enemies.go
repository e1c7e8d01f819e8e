// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind    EnemyKind `json:"kind"`
	Name    string    `json:"name"`
	Health  float64   `json:"health"`
	Speed   float64   `json:"speed"` // пикселей за шаг
	Radius  float64   `json:"radius"`
	Reward  int       `json:"reward"`
	Visuals Visuals   `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by kind.
var EnemyLibrary map[EnemyKind]EnemyDefinition

// Enemy returns the definition for kind.
func Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := EnemyLibrary[kind]
	return def, ok
}
