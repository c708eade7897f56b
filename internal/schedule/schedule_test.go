package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct{ n int }

func TestReal_DeliversAfterDelay(t *testing.T) {
	task, cmd := NewReal().Schedule(5*time.Millisecond, pingMsg{1})
	require.NotNil(t, cmd)
	assert.True(t, task.Pending())

	assert.Equal(t, pingMsg{1}, cmd())
	assert.False(t, task.Pending())
}

func TestReal_CancelBeforeDelivery(t *testing.T) {
	task, cmd := NewReal().Schedule(time.Hour, pingMsg{1})

	done := make(chan any, 1)
	go func() { done <- cmd() }()

	task.Cancel()
	task.Cancel()

	select {
	case got := <-done:
		assert.Nil(t, got)
	case <-time.After(time.Second):
		t.Fatal("cancelled command did not return")
	}
	assert.False(t, task.Pending())
}

func TestReal_CancelAfterDeliveryIsNoop(t *testing.T) {
	task, cmd := NewReal().Schedule(time.Millisecond, pingMsg{2})
	assert.Equal(t, pingMsg{2}, cmd())
	assert.NotPanics(t, task.Cancel)
}

func TestManual_DeliversInDueOrder(t *testing.T) {
	m := NewManual()
	m.Schedule(300*time.Millisecond, pingMsg{3})
	m.Schedule(100*time.Millisecond, pingMsg{1})
	m.Schedule(100*time.Millisecond, pingMsg{2})

	assert.Empty(t, m.Advance(50*time.Millisecond))
	assert.Equal(t, []any{pingMsg{1}, pingMsg{2}}, toAny(m.Advance(50*time.Millisecond)))
	assert.Equal(t, 1, m.PendingCount())
	assert.Equal(t, []any{pingMsg{3}}, toAny(m.Advance(time.Second)))
	assert.Equal(t, 0, m.PendingCount())
	assert.Equal(t, 1100*time.Millisecond, m.Now())
}

func TestManual_CancelledTasksNeverFire(t *testing.T) {
	m := NewManual()
	task, cmd := m.Schedule(time.Second, pingMsg{1})
	assert.Nil(t, cmd)

	task.Cancel()
	assert.Empty(t, m.Advance(2*time.Second))
	assert.Equal(t, 0, m.PendingCount())
}

func TestManual_FiresOnce(t *testing.T) {
	m := NewManual()
	task, _ := m.Schedule(time.Second, pingMsg{1})

	assert.Len(t, m.Advance(time.Second), 1)
	assert.False(t, task.Pending())
	assert.Empty(t, m.Advance(time.Second))
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
