package schedule

import (
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Manual is a Scheduler driven by a virtual clock. Nothing is delivered until
// Advance is called, which makes timing behaviour testable without sleeping.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	seq       int
	due       time.Duration
	msg       tea.Msg
	cancelled bool
	fired     bool
}

func (t *manualTask) Cancel()       { t.cancelled = true }
func (t *manualTask) Pending() bool { return !t.cancelled && !t.fired }

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements Scheduler. The returned command is always nil.
func (m *Manual) Schedule(d time.Duration, msg tea.Msg) (Task, tea.Cmd) {
	m.seq++
	t := &manualTask{seq: m.seq, due: m.now + d, msg: msg}
	m.tasks = append(m.tasks, t)
	return t, nil
}

// Advance moves the clock forward by d and returns the messages of every
// uncancelled task that became due, ordered by due time then schedule order.
func (m *Manual) Advance(d time.Duration) []tea.Msg {
	m.now += d

	var due []*manualTask
	for _, t := range m.tasks {
		if t.Pending() && t.due <= m.now {
			due = append(due, t)
		}
	}
	slices.SortStableFunc(due, func(a, b *manualTask) int {
		if a.due != b.due {
			if a.due < b.due {
				return -1
			}
			return 1
		}
		return a.seq - b.seq
	})

	msgs := make([]tea.Msg, 0, len(due))
	for _, t := range due {
		t.fired = true
		msgs = append(msgs, t.msg)
	}
	m.compact()
	return msgs
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// PendingCount returns the number of tasks still waiting to be delivered.
func (m *Manual) PendingCount() int {
	n := 0
	for _, t := range m.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (m *Manual) compact() {
	m.tasks = slices.DeleteFunc(m.tasks, func(t *manualTask) bool { return !t.Pending() })
}
