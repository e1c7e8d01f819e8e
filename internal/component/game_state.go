package component

import "gym-guardian/internal/config"

// Session — экономика и счёт текущей партии.
type Session struct {
	Gold     int
	Lives    int
	Kills    int
	Leaks    int
	GameOver bool
}

func NewSession() *Session {
	return &Session{
		Gold:  config.StartingGold,
		Lives: config.StartingLives,
	}
}
