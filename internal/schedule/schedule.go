// Package schedule turns deferred work into Bubble Tea commands that can be
// cancelled.
//
// tea.Tick cannot be called off once issued, so a superseded tick still
// arrives and every receiver has to recognise it as stale. A Task instead
// owns a cancel channel: once cancelled, its command resolves to a nil
// message and nothing is delivered.
package schedule

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Task is a handle to one scheduled delivery.
type Task interface {
	// Cancel prevents delivery. Safe to call any number of times, including
	// after the message was delivered.
	Cancel()
	// Pending reports whether the message is still due to be delivered.
	Pending() bool
}

// Scheduler schedules msg to be delivered after d. The returned command must
// be handed to the Bubble Tea runtime; it may be nil for schedulers that
// deliver by other means (see Manual).
type Scheduler interface {
	Schedule(d time.Duration, msg tea.Msg) (Task, tea.Cmd)
}

// Real is the timer-backed Scheduler used by the running program.
type Real struct{}

// NewReal returns the production scheduler.
func NewReal() Real { return Real{} }

type realTask struct {
	stop chan struct{}

	mu      sync.Mutex
	done    bool
	stopped bool
}

func (t *realTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.done {
		return
	}
	t.stopped = true
	close(t.stop)
}

func (t *realTask) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped && !t.done
}

// finish marks the task delivered unless it was cancelled first.
func (t *realTask) finish() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.done = true
	return true
}

// Schedule implements Scheduler.
func (Real) Schedule(d time.Duration, msg tea.Msg) (Task, tea.Cmd) {
	t := &realTask{stop: make(chan struct{})}
	cmd := func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			if t.finish() {
				return msg
			}
			return nil
		case <-t.stop:
			return nil
		}
	}
	return t, cmd
}
