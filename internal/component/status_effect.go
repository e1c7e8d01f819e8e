package component

import (
	"gym-guardian/internal/defs"
	"sort"
)

// TimedEffect is an active effect with its magnitude and absolute expiry (ms).
type TimedEffect struct {
	Magnitude float64
	ExpiresAt float64
}

// StatusEffects tracks timed effects keyed by kind. Re-applying a kind
// overwrites its magnitude and expiry, it never stacks.
type StatusEffects struct {
	active map[defs.EffectKind]TimedEffect
}

// Apply installs kind with magnitude until now+duration.
func (s *StatusEffects) Apply(kind defs.EffectKind, magnitude, duration, now float64) {
	if s.active == nil {
		s.active = make(map[defs.EffectKind]TimedEffect)
	}
	s.active[kind] = TimedEffect{Magnitude: magnitude, ExpiresAt: now + duration}
}

// Get returns the active effect of kind.
func (s *StatusEffects) Get(kind defs.EffectKind) (TimedEffect, bool) {
	e, ok := s.active[kind]
	return e, ok
}

// Has reports whether kind is active.
func (s *StatusEffects) Has(kind defs.EffectKind) bool {
	_, ok := s.active[kind]
	return ok
}

// Remove drops kind without waiting for its expiry.
func (s *StatusEffects) Remove(kind defs.EffectKind) {
	delete(s.active, kind)
}

// Len is the number of active effects.
func (s *StatusEffects) Len() int {
	return len(s.active)
}

// Expire removes every effect whose expiry is at or before now and returns
// the removed kinds in sorted order.
func (s *StatusEffects) Expire(now float64) []defs.EffectKind {
	var expired []defs.EffectKind
	for kind, e := range s.active {
		if now >= e.ExpiresAt {
			expired = append(expired, kind)
		}
	}
	for _, kind := range expired {
		delete(s.active, kind)
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}

// Kinds returns the active kinds in sorted order.
func (s *StatusEffects) Kinds() []defs.EffectKind {
	kinds := make([]defs.EffectKind, 0, len(s.active))
	for kind := range s.active {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
