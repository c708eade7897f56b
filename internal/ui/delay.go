package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/saasboard/internal/schedule"
)

// delayDoneMsg is delivered when a page's simulated request finishes.
type delayDoneMsg struct {
	Owner string
	ID    int
}

// delay tracks one cancellable simulated request for a page. Starting a new
// one cancels the previous; only the latest ID is honored.
type delay struct {
	owner string
	sched schedule.Scheduler
	task  schedule.Task
	id    int
}

func newDelay(owner string, sched schedule.Scheduler) delay {
	return delay{owner: owner, sched: sched}
}

func (d *delay) start(dur time.Duration) tea.Cmd {
	d.cancel()
	d.id++
	task, cmd := d.sched.Schedule(dur, delayDoneMsg{Owner: d.owner, ID: d.id})
	d.task = task
	return cmd
}

func (d *delay) cancel() {
	if d.task != nil {
		d.task.Cancel()
		d.task = nil
	}
}

func (d *delay) pending() bool {
	return d.task != nil && d.task.Pending()
}

// done reports whether msg completes the current request, and clears it.
func (d *delay) done(msg tea.Msg) bool {
	m, ok := msg.(delayDoneMsg)
	if !ok || m.Owner != d.owner || d.task == nil || m.ID != d.id {
		return false
	}
	d.task = nil
	return true
}
