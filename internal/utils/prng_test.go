package utils

import (
	"gym-guardian/internal/defs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNG_SeedIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestPRNG_IntRangeInclusive(t *testing.T) {
	rng := NewPRNGService(5)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := rng.IntRange(-2, 2)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 7, rng.IntRange(7, 7))
	assert.Equal(t, 7, rng.IntRange(7, 3))
}

func TestPRNG_ChoosePattern(t *testing.T) {
	rng := NewPRNGService(1)

	assert.Equal(t, defs.PatternNormal, rng.ChoosePattern(nil))
	assert.Equal(t, defs.PatternRush, rng.ChoosePattern([]defs.PatternEntry{{Pattern: defs.PatternRush, Weight: 0}}))
	assert.Equal(t, defs.PatternCluster, rng.ChoosePattern([]defs.PatternEntry{
		{Pattern: defs.PatternNormal, Weight: 0},
		{Pattern: defs.PatternCluster, Weight: 10},
	}))
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Len())
	assert.InDelta(t, 1.0, v.Normalize().Len(), 1e-9)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.Equal(t, 0.0, v.Cross(v))
	assert.Equal(t, 25.0, v.Dot(v))
	assert.Equal(t, 5.0, Vec2{}.Dist(v))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.0, Clamp01(-1))
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
}
