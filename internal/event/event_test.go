package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_OrderAndTypes(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Subscribe(ListenerFunc(func(e Event) { calls = append(calls, "a:"+string(e.Type)) }), WaveStarted, WaveEnded)
	d.Subscribe(ListenerFunc(func(e Event) { calls = append(calls, "b:"+string(e.Type)) }), WaveStarted)

	d.Emit(WaveStarted, 1)
	d.Emit(WaveEnded, 1)
	d.Emit(GameOver, nil)

	assert.Equal(t, []string{"a:WaveStarted", "b:WaveStarted", "a:WaveEnded"}, calls)
}

func TestRecorder(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.Subscribe(rec, EnemyKilled, EnemyLeaked)

	d.Emit(EnemyKilled, EnemyInfo{ID: 3, Reward: 20})
	d.Emit(EnemyKilled, EnemyInfo{ID: 4})
	d.Emit(EnemyLeaked, EnemyInfo{ID: 5})
	d.Emit(TowerPlaced, nil)

	assert.Equal(t, 2, rec.Count(EnemyKilled))
	assert.Equal(t, 1, rec.Count(EnemyLeaked))
	require.Len(t, rec.Events, 3)
	assert.Equal(t, EnemyInfo{ID: 3, Reward: 20}, rec.Events[0].Data)
}
