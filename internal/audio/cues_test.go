package audio

import (
	"gym-guardian/internal/event"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads s to the end and returns the number of samples and the peak amplitude.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event event.EventType
		cue   Cue
	}{
		{event.EnemyKilled, CueKill},
		{event.EnemyLeaked, CueLeak},
		{event.WaveStarted, CueWaveStart},
		{event.WaveEnded, CueWaveEnd},
		{event.TowerPlaced, CueTowerPlaced},
		{event.TowerUpgraded, CueTowerPlaced},
		{event.PowerUpActivated, CuePowerUp},
		{event.GameOver, CueGameOver},
	}
	for _, tt := range tests {
		cue, ok := CueFor(tt.event)
		require.True(t, ok, tt.event)
		assert.Equal(t, tt.cue, cue)
	}

	_, ok := CueFor(event.TowerSold)
	assert.False(t, ok)
}

func TestStreamer_IsFinite(t *testing.T) {
	total, peak := drain(Streamer(CueTowerPlaced))
	assert.Equal(t, sampleRate.N(50*time.Millisecond), total)
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, 0.2+1e-9)

	total, _ = drain(Streamer(CueKill))
	assert.Equal(t, sampleRate.N(40*time.Millisecond)+sampleRate.N(60*time.Millisecond), total)

	for cue := CueKill; cue <= CueGameOver; cue++ {
		total, _ := drain(Streamer(cue))
		assert.Positive(t, total, "cue %d", cue)
	}

	total, _ = drain(Streamer(Cue(99)))
	assert.Zero(t, total)
}

func TestToneGenerator_FadeIn(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440)
	buf := make([][2]float64, 4)
	n, ok := g.Stream(buf)

	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.Zero(t, buf[0][0], "огибающая начинается с нуля")
	assert.Equal(t, buf[1][0], buf[1][1])
	assert.NoError(t, g.Err())
}

func TestSoundCues_IgnoredWithoutSpeaker(t *testing.T) {
	cues := NewSoundCues(0.6)
	d := event.NewDispatcher()
	cues.Subscribe(d)

	d.Emit(event.EnemyKilled, nil)
	d.Emit(event.WaveStarted, 1)
	assert.Zero(t, cues.Played())

	cues.SetMuted(true)
	assert.True(t, cues.Muted())
	cues.SetMuted(false)
	assert.False(t, cues.Muted())

	assert.NotPanics(t, cues.Close)
}
