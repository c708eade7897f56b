package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/schedule"
)

// ToastKind is the severity of a toast.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastInfo
)

func (k ToastKind) String() string {
	switch k {
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	default:
		return "info"
	}
}

// Icon returns the glyph shown before the message.
func (k ToastKind) Icon() string {
	switch k {
	case ToastSuccess:
		return "✓"
	case ToastError:
		return "✕"
	default:
		return "ℹ"
	}
}

func (k ToastKind) color() lipgloss.Style {
	switch k {
	case ToastSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case ToastError:
		return lipgloss.NewStyle().Foreground(ColorError)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// ToastExpiredMsg is delivered when an auto-dismiss timer fires.
type ToastExpiredMsg struct {
	ID int
}

// ToastState is a snapshot of what the toast is showing.
type ToastState struct {
	Message string
	Kind    ToastKind
	Visible bool
}

// Toast shows one transient message at a time. Each Show replaces the
// previous message and restarts the dismiss timer; there is never more than
// one pending timer and a hidden toast has none.
type Toast struct {
	sched    schedule.Scheduler
	duration time.Duration

	state ToastState

	task   schedule.Task
	taskID int
	seq    int

	// mirror is called for every Show; the app uses it for desktop
	// notifications.
	mirror func(message string, kind ToastKind) tea.Cmd

	closeBtn Rect
}

// NewToast returns a hidden toast. A duration of zero or less disables
// auto-dismiss.
func NewToast(sched schedule.Scheduler, duration time.Duration) *Toast {
	return &Toast{sched: sched, duration: duration}
}

// SetDuration changes the auto-dismiss delay for subsequent Show calls.
func (t *Toast) SetDuration(d time.Duration) {
	t.duration = d
}

// Duration returns the auto-dismiss delay.
func (t *Toast) Duration() time.Duration {
	return t.duration
}

// SetMirror installs fn to be called on every Show. Pass nil to remove it.
func (t *Toast) SetMirror(fn func(message string, kind ToastKind) tea.Cmd) {
	t.mirror = fn
}

// Show replaces the current message and restarts the timer.
func (t *Toast) Show(message string, kind ToastKind) tea.Cmd {
	t.cancelPending()
	t.state = ToastState{Message: message, Kind: kind, Visible: true}

	var cmds []tea.Cmd
	if t.duration > 0 {
		t.seq++
		t.taskID = t.seq
		task, cmd := t.sched.Schedule(t.duration, ToastExpiredMsg{ID: t.taskID})
		t.task = task
		cmds = append(cmds, cmd)
	}
	logger.WithComponent("toast").Debug("toast shown", "kind", kind, "id", t.taskID, "after", t.duration)

	if t.mirror != nil {
		cmds = append(cmds, t.mirror(message, kind))
	}
	return tea.Batch(cmds...)
}

// Hide dismisses the toast and cancels its timer.
func (t *Toast) Hide() {
	t.cancelPending()
	t.state.Visible = false
}

func (t *Toast) cancelPending() {
	if t.task != nil {
		t.task.Cancel()
		t.task = nil
	}
}

// Update handles timer expiry. Messages for a superseded timer are ignored.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ToastExpiredMsg); ok {
		if t.task != nil && m.ID == t.taskID {
			t.task = nil
			t.state.Visible = false
			logger.WithComponent("toast").Debug("toast expired", "id", m.ID)
		}
	}
	return nil
}

// State returns the current content and visibility.
func (t *Toast) State() ToastState {
	return t.state
}

// IsVisible reports whether the toast is showing.
func (t *Toast) IsVisible() bool {
	return t.state.Visible
}

// HasPendingTimer reports whether an auto-dismiss is scheduled.
func (t *Toast) HasPendingTimer() bool {
	return t.task != nil && t.task.Pending()
}

// HandleClick dismisses the toast when (x, y) hits the close control. It
// reports whether the click was consumed.
func (t *Toast) HandleClick(x, y int) bool {
	if !t.state.Visible || !t.closeBtn.Contains(x, y) {
		return false
	}
	t.Hide()
	return true
}

// View renders the toast for a screen of the given width, anchored to the
// top right below the header. It records the close control position.
func (t *Toast) View(screenWidth int) (box string, x, y int) {
	if !t.state.Visible {
		t.closeBtn = Rect{}
		return "", 0, 0
	}

	textWidth := min(ToastWidth, max(screenWidth-ToastStyle.GetHorizontalFrameSize()-6, 8))
	kind := t.state.Kind
	icon := kind.color().Bold(true).Render(kind.Icon())
	msgWidth := textWidth - 4
	message := runewidth.Truncate(t.state.Message, msgWidth, "…")
	message = runewidth.FillRight(message, msgWidth)
	closeCtl := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("✕")

	line := icon + " " + message + " " + closeCtl
	box = ToastStyle.BorderForeground(kind.color().GetForeground()).Render(line)

	w := lipgloss.Width(box)
	x = max(screenWidth-w-1, 0)
	y = HeaderHeight
	closeX := x + w - ToastStyle.GetBorderRightSize() - ToastStyle.GetPaddingRight() - 1
	closeY := y + ToastStyle.GetBorderTopSize() + ToastStyle.GetPaddingTop()
	t.closeBtn = Rect{X: closeX - 1, Y: closeY, W: 2, H: 1}
	return box, x, y
}
