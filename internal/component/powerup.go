package component

import "gym-guardian/internal/defs"

// PowerUp tracks the activation window and cooldown of one power-up.
type PowerUp struct {
	Kind        defs.PowerUpKind
	ActiveUntil float64
	ReadyAt     float64
}

func (p *PowerUp) Active(now float64) bool { return now < p.ActiveUntil }

func (p *PowerUp) CoolingDown(now float64) bool { return now < p.ReadyAt }

// CooldownLeft is the remaining cooldown in ms, zero when ready.
func (p *PowerUp) CooldownLeft(now float64) float64 {
	if now >= p.ReadyAt {
		return 0
	}
	return p.ReadyAt - now
}
