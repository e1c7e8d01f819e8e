// internal/defs/types.go
package defs

// TowerKind is the closed set of tower types.
type TowerKind string

const (
	TowerTreadmill  TowerKind = "treadmill"
	TowerProtein    TowerKind = "protein"
	TowerYoga       TowerKind = "yoga"
	TowerKettlebell TowerKind = "kettlebell"
	TowerHIIT       TowerKind = "hiit"
	TowerSpin       TowerKind = "spin"
)

// AllTowerKinds lists tower kinds in tower-bar order.
var AllTowerKinds = []TowerKind{
	TowerTreadmill, TowerProtein, TowerYoga, TowerKettlebell, TowerHIIT, TowerSpin,
}

// StrikeBehavior describes how a projectile resolves once launched.
type StrikeBehavior string

const (
	StrikeSingle StrikeBehavior = "single" // летит к цели, урон одной цели
	StrikeSplash StrikeBehavior = "splash" // летит к цели, урон по области с затуханием
	StrikeMelee  StrikeBehavior = "melee"  // тренер бежит за целью
	StrikeBeam   StrikeBehavior = "beam"   // мгновенный пробивающий луч
)

// Valid reports whether b is one of the known behaviors.
func (b StrikeBehavior) Valid() bool {
	switch b {
	case StrikeSingle, StrikeSplash, StrikeMelee, StrikeBeam:
		return true
	}
	return false
}

// EnemyKind is the closed set of enemy types.
type EnemyKind string

const (
	EnemyNormal EnemyKind = "normal"
	EnemyFast   EnemyKind = "fast"
	EnemyTank   EnemyKind = "tank"
	EnemyBoss   EnemyKind = "boss"
)

var AllEnemyKinds = []EnemyKind{EnemyNormal, EnemyFast, EnemyTank, EnemyBoss}

// EffectKind keys timed effects on enemies (slow) and towers (buffs).
type EffectKind string

const (
	EffectSlow EffectKind = "slow"
	BuffDamage EffectKind = "damage"
	BuffHaste  EffectKind = "haste" // делит интервал стрельбы, на урон не влияет
)

// EffectSpec is an on-hit payload: install Kind with Amount for Duration ms.
type EffectSpec struct {
	Kind     EffectKind `json:"kind"`
	Amount   float64    `json:"amount"`
	Duration float64    `json:"duration"`
}

// SpawnPattern selects how spawn delays are drawn during a wave.
type SpawnPattern string

const (
	PatternNormal  SpawnPattern = "normal"
	PatternCluster SpawnPattern = "cluster"
	PatternRush    SpawnPattern = "rush"
)

// PowerUpKind is the closed set of player power-ups.
type PowerUpKind string

const (
	PowerUpPreWorkout PowerUpKind = "pre_workout"
	PowerUpCheatMeal  PowerUpKind = "cheat_meal"
	PowerUpPepTalk    PowerUpKind = "pep_talk"
	PowerUpWaterBreak PowerUpKind = "water_break"
)

var AllPowerUpKinds = []PowerUpKind{
	PowerUpPreWorkout, PowerUpCheatMeal, PowerUpPepTalk, PowerUpWaterBreak,
}
