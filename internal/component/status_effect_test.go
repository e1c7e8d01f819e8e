package component

import (
	"gym-guardian/internal/defs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEffects_ReapplyOverwrites(t *testing.T) {
	var s StatusEffects
	s.Apply(defs.EffectSlow, 0.5, 3000, 0)
	s.Apply(defs.EffectSlow, 0.3, 2000, 500)

	e, ok := s.Get(defs.EffectSlow)
	require.True(t, ok)
	assert.Equal(t, 0.3, e.Magnitude)
	assert.Equal(t, 2500.0, e.ExpiresAt)
	assert.Equal(t, 1, s.Len())
}

func TestStatusEffects_ExpireAtBoundary(t *testing.T) {
	var s StatusEffects
	s.Apply(defs.BuffHaste, 2, 1000, 0)
	s.Apply(defs.BuffDamage, 1.5, 2000, 0)

	assert.Empty(t, s.Expire(999))
	assert.Equal(t, []defs.EffectKind{defs.BuffHaste}, s.Expire(1000))
	assert.False(t, s.Has(defs.BuffHaste))
	assert.True(t, s.Has(defs.BuffDamage))
}

func TestStatusEffects_KindsSorted(t *testing.T) {
	var s StatusEffects
	s.Apply(defs.EffectSlow, 0.5, 10, 0)
	s.Apply(defs.BuffDamage, 1.5, 10, 0)
	s.Apply(defs.BuffHaste, 2, 10, 0)

	assert.Equal(t, []defs.EffectKind{defs.BuffDamage, defs.BuffHaste, defs.EffectSlow}, s.Kinds())

	s.Remove(defs.BuffHaste)
	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []defs.EffectKind{defs.BuffDamage, defs.EffectSlow}, s.Expire(10))
}

func TestStatusEffects_ZeroValueIsUsable(t *testing.T) {
	var s StatusEffects
	assert.False(t, s.Has(defs.EffectSlow))
	assert.Empty(t, s.Expire(100))
	assert.Empty(t, s.Kinds())
}
