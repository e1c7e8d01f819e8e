package event

const (
	WaveStarted      EventType = "WaveStarted"      // Data: номер волны
	WaveEnded        EventType = "WaveEnded"        // Data: номер завершённой волны
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemyInfo
	EnemyKilled      EventType = "EnemyKilled"      // Data: EnemyInfo
	EnemyLeaked      EventType = "EnemyLeaked"      // Data: EnemyInfo
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
	TowerSold        EventType = "TowerSold"        // Data: types.EntityID
	TowerUpgraded    EventType = "TowerUpgraded"    // Data: types.EntityID
	PowerUpActivated EventType = "PowerUpActivated" // Data: defs.PowerUpKind
	GameOver         EventType = "GameOver"
)
