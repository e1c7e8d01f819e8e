package audio

import (
	"fmt"
	"gym-guardian/internal/event"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short synthesized sound bound to a simulation event.
type Cue int

const (
	CueKill Cue = iota
	CueLeak
	CueWaveStart
	CueWaveEnd
	CueTowerPlaced
	CuePowerUp
	CueGameOver
)

// CueFor maps an event type to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.EnemyKilled:
		return CueKill, true
	case event.EnemyLeaked:
		return CueLeak, true
	case event.WaveStarted:
		return CueWaveStart, true
	case event.WaveEnded:
		return CueWaveEnd, true
	case event.TowerPlaced, event.TowerUpgraded:
		return CueTowerPlaced, true
	case event.PowerUpActivated:
		return CuePowerUp, true
	case event.GameOver:
		return CueGameOver, true
	}
	return 0, false
}

// Streamer builds a fresh finite streamer for cue.
func Streamer(cue Cue) beep.Streamer {
	switch cue {
	case CueKill:
		return beep.Seq(tone(880, 40*time.Millisecond), tone(1320, 60*time.Millisecond))
	case CueLeak:
		return tone(110, 200*time.Millisecond)
	case CueWaveStart:
		return beep.Seq(tone(392, 120*time.Millisecond), tone(523, 180*time.Millisecond))
	case CueWaveEnd:
		return beep.Seq(tone(523, 100*time.Millisecond), tone(659, 100*time.Millisecond), tone(784, 160*time.Millisecond))
	case CueTowerPlaced:
		return tone(440, 50*time.Millisecond)
	case CuePowerUp:
		return beep.Seq(tone(660, 60*time.Millisecond), tone(990, 90*time.Millisecond))
	case CueGameOver:
		return beep.Seq(tone(330, 250*time.Millisecond), tone(220, 250*time.Millisecond), tone(110, 400*time.Millisecond))
	}
	return beep.Silence(0)
}

func tone(freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq))
}

// ToneGenerator generates a sine tone with a short fade-in.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) + 0.1*math.Sin(2*math.Pi*g.freq*2*t)
		envelope := math.Min(t/0.005, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SoundCues plays a cue for every subscribed simulation event.
// Без инициализации динамика события молча игнорируются.
type SoundCues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      int
}

func NewSoundCues(volume float64) *SoundCues {
	return &SoundCues{mixer: &beep.Mixer{}, volume: volume}
}

// Subscribe registers the cues on every event type that has a sound.
func (c *SoundCues) Subscribe(d *event.Dispatcher) {
	d.Subscribe(c,
		event.EnemyKilled, event.EnemyLeaked, event.WaveStarted, event.WaveEnded,
		event.TowerPlaced, event.TowerUpgraded, event.PowerUpActivated, event.GameOver)
}

// Init opens the speaker.
func (c *SoundCues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

func (c *SoundCues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

func (c *SoundCues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Played is the number of cues sent to the speaker.
func (c *SoundCues) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// OnEvent реализует интерфейс event.Listener.
func (c *SoundCues) OnEvent(e event.Event) {
	cue, ok := CueFor(e.Type)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized || c.muted {
		return
	}

	s := &effects.Volume{Streamer: Streamer(cue), Base: 2, Silent: c.volume <= 0}
	if !s.Silent {
		s.Volume = math.Log2(c.volume)
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
	c.played++
}

// Close stops playback and releases the speaker.
func (c *SoundCues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
