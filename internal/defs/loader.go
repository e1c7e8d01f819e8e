// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var embedded embed.FS

const (
	towersFile   = "towers.json"
	enemiesFile  = "enemies.json"
	powerUpsFile = "powerups.json"
)

func init() {
	if err := LoadEmbedded(); err != nil {
		panic(err)
	}
}

// LoadEmbedded populates the libraries from the definitions compiled into the binary.
func LoadEmbedded() error {
	read := func(name string) ([]byte, error) {
		return embedded.ReadFile("data/" + name)
	}
	return load(read)
}

// LoadDefinitions reads towers.json, enemies.json and powerups.json from dir
// and replaces the libraries. Отсутствующий файл берётся из встроенных данных.
func LoadDefinitions(dir string) error {
	read := func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return embedded.ReadFile("data/" + name)
		}
		return data, err
	}
	if err := load(read); err != nil {
		return err
	}
	log.Printf("Loaded %d tower, %d enemy and %d power-up definitions from %s",
		len(TowerLibrary), len(EnemyLibrary), len(PowerUpLibrary), dir)
	return nil
}

func load(read func(name string) ([]byte, error)) error {
	towers, err := decodeTowers(read)
	if err != nil {
		return err
	}
	enemies, err := decodeEnemies(read)
	if err != nil {
		return err
	}
	powerUps, err := decodePowerUps(read)
	if err != nil {
		return err
	}
	TowerLibrary = towers
	EnemyLibrary = enemies
	PowerUpLibrary = powerUps
	return nil
}

func decodeTowers(read func(string) ([]byte, error)) (map[TowerKind]TowerDefinition, error) {
	file, err := read(towersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	var list []TowerDefinition
	if err := json.Unmarshal(file, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	lib := make(map[TowerKind]TowerDefinition, len(list))
	for _, def := range list {
		lib[def.Kind] = def
	}
	for _, kind := range AllTowerKinds {
		def, ok := lib[kind]
		if !ok {
			return nil, fmt.Errorf("tower definition %q is missing", kind)
		}
		if err := validateTower(def); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func validateTower(def TowerDefinition) error {
	if def.Damage <= 0 || def.Range <= 0 || def.FireRate <= 0 || def.Cost <= 0 {
		return fmt.Errorf("tower %q: damage, range, fire_rate and cost must be positive", def.Kind)
	}
	if !def.Strike.Behavior.Valid() {
		return fmt.Errorf("tower %q: unknown strike behavior %q", def.Kind, def.Strike.Behavior)
	}
	switch def.Strike.Behavior {
	case StrikeSplash:
		if def.Strike.SplashRadius <= 0 {
			return fmt.Errorf("tower %q: splash_radius must be positive", def.Kind)
		}
	case StrikeMelee:
		if def.Strike.PunchRange <= 0 || def.Strike.MaxChase <= 0 {
			return fmt.Errorf("tower %q: punch_range and max_chase must be positive", def.Kind)
		}
	case StrikeBeam:
		if def.Strike.BeamWidth <= 0 || def.Strike.BeamRange <= 0 {
			return fmt.Errorf("tower %q: beam_width and beam_range must be positive", def.Kind)
		}
	case StrikeSingle:
	}
	return nil
}

func decodeEnemies(read func(string) ([]byte, error)) (map[EnemyKind]EnemyDefinition, error) {
	file, err := read(enemiesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	var list []EnemyDefinition
	if err := json.Unmarshal(file, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	lib := make(map[EnemyKind]EnemyDefinition, len(list))
	for _, def := range list {
		lib[def.Kind] = def
	}
	for _, kind := range AllEnemyKinds {
		def, ok := lib[kind]
		if !ok {
			return nil, fmt.Errorf("enemy definition %q is missing", kind)
		}
		if def.Health <= 0 || def.Speed <= 0 || def.Radius <= 0 {
			return nil, fmt.Errorf("enemy %q: health, speed and radius must be positive", kind)
		}
	}
	return lib, nil
}

func decodePowerUps(read func(string) ([]byte, error)) (map[PowerUpKind]PowerUpDefinition, error) {
	file, err := read(powerUpsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read power-up definitions file: %w", err)
	}
	var list []PowerUpDefinition
	if err := json.Unmarshal(file, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal power-up definitions: %w", err)
	}
	lib := make(map[PowerUpKind]PowerUpDefinition, len(list))
	for _, def := range list {
		lib[def.Kind] = def
	}
	for _, kind := range AllPowerUpKinds {
		if _, ok := lib[kind]; !ok {
			return nil, fmt.Errorf("power-up definition %q is missing", kind)
		}
	}
	return lib, nil
}
