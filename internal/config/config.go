// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1280
	ScreenHeight  = 720
	UIWidth       = 250                   // Ширина боковой панели
	GameWidth     = ScreenWidth - UIWidth // Ширина игрового поля
	GameHeight    = ScreenHeight
	DefaultGrid   = 32 // Размер клетки, если путь пуст
	MaxDeltaTime  = 0.06
	ClickCooldown = 100 // мс между кликами

	StartingGold   = 650
	StartingLives  = 10
	EnemiesPerWave = 5

	// Фиксированный шаг симуляции в миллисекундах (60 шагов в секунду).
	StepMillis       = 1000.0 / 60.0
	MaxStepsPerFrame = 8

	DefaultDeactivation = 5000.0 // мс
	BeamFlashDuration   = 120.0  // мс

	MaxTowerLevel     = 5
	UpgradeDamageMul  = 1.5
	UpgradeRangeMul   = 1.1
	UpgradeFireMul    = 0.9
	MinFireRateMillis = 100.0

	PowerUpActiveMillis = 10000.0
	CheatMealRadius     = 300.0
	CheatMealDamage     = 200.0

	PauseButtonX    = GameWidth + 160
	SpeedButtonX    = GameWidth + 195
	IndicatorX      = GameWidth + 228
	SpeedButtonY    = 30
	SpeedButtonSize = 10.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 20, 255}
	FieldColor       = color.RGBA{0, 40, 0, 255}
	GridLineColor    = color.RGBA{40, 40, 40, 255}
	PathStartColor   = color.RGBA{60, 60, 80, 255}
	PathEndColor     = color.RGBA{0, 0, 0, 255}
	SidebarColor     = color.RGBA{40, 40, 40, 255}
	PanelColor       = color.RGBA{60, 60, 60, 255}
	ButtonColor      = color.RGBA{60, 60, 60, 255}
	ButtonActive     = color.RGBA{80, 80, 80, 255}
	ButtonDisabled   = color.RGBA{40, 40, 40, 255}
	GoldColor        = color.RGBA{255, 215, 0, 255}
	LivesColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{200, 200, 200, 255}
	HealthBackColor  = color.RGBA{200, 0, 0, 255}
	HealthFillColor  = color.RGBA{0, 200, 0, 255}
	SelectionColor   = color.RGBA{255, 255, 255, 255}
	TrainerHeadColor = color.RGBA{255, 192, 203, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
