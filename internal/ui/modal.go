package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/keys"
)

// ModalVariant selects the confirm button treatment.
type ModalVariant int

const (
	ModalDefault ModalVariant = iota
	ModalDanger
)

// ModalState is the open/closed state of a ConfirmModal.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

type modalTarget int

const (
	targetNone modalTarget = iota
	targetBackdrop
	targetContent
	targetCancel
	targetConfirm
)

// ConfirmModal is a two-button confirmation dialog that traps focus while
// open and gives it back on close.
//
// Opening registers an Escape listener with the FocusManager; every path
// out of the open state removes it again, so a closed modal never leaves a
// listener behind.
type ConfirmModal struct {
	Title        string
	Body         string
	ConfirmLabel string
	CancelLabel  string
	Variant      ModalVariant

	focus          *FocusManager
	state          ModalState
	restore        FocusID
	removeListener func()
	onConfirm      func() tea.Cmd

	// press target of the mouse gesture in progress
	pressed modalTarget

	// hit regions from the last View
	box, cancelBtn, confirmBtn Rect
}

// NewConfirmModal returns a closed modal.
func NewConfirmModal(focus *FocusManager, title, body string) *ConfirmModal {
	return &ConfirmModal{
		Title:        title,
		Body:         body,
		ConfirmLabel: "Confirm",
		CancelLabel:  "Cancel",
		focus:        focus,
	}
}

// IsOpen reports whether the modal is showing.
func (m *ConfirmModal) IsOpen() bool {
	return m.state == ModalOpen
}

// State returns the current state.
func (m *ConfirmModal) State() ModalState {
	return m.state
}

// Open shows the modal. onConfirm runs when the user confirms; it may be
// nil. Opening an open modal does nothing.
func (m *ConfirmModal) Open(onConfirm func() tea.Cmd) {
	if m.state == ModalOpen {
		return
	}
	m.state = ModalOpen
	m.onConfirm = onConfirm
	m.pressed = targetNone
	m.restore = m.focus.Current()
	m.focus.Focus(FocusModal)
	m.removeListener = m.focus.AddKeyListener(func(msg tea.KeyPressMsg) (bool, tea.Cmd) {
		if msg.String() != keys.Escape {
			return false, nil
		}
		m.Close()
		return true, nil
	})
}

// Close hides the modal and restores the focus captured by Open. Closing a
// closed modal does nothing.
func (m *ConfirmModal) Close() {
	if m.state != ModalOpen {
		return
	}
	m.teardown()
}

// Confirm closes the modal and then runs the confirmation effect, so the
// effect sees the modal closed and the previous focus restored. It returns
// the effect's command.
func (m *ConfirmModal) Confirm() tea.Cmd {
	if m.state != ModalOpen {
		return nil
	}
	fn := m.onConfirm
	m.teardown()
	if fn == nil {
		return nil
	}
	return fn()
}

func (m *ConfirmModal) teardown() {
	if m.removeListener != nil {
		m.removeListener()
		m.removeListener = nil
	}
	m.state = ModalClosed
	m.onConfirm = nil
	m.pressed = targetNone
	m.focus.Focus(m.restore)
}

// HandleKey implements the focus trap. Escape is handled by the listener
// registered in Open.
func (m *ConfirmModal) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.state != ModalOpen {
		return nil
	}
	switch msg.String() {
	case keys.Tab, keys.Right:
		m.cycle(1)
	case keys.ShiftTab, keys.Left:
		m.cycle(-1)
	case keys.Enter, keys.Space:
		switch m.focus.Current() {
		case FocusModalCancel:
			m.Close()
		case FocusModalConfirm:
			return m.Confirm()
		}
	}
	return nil
}

func (m *ConfirmModal) cycle(dir int) {
	switch m.focus.Current() {
	case FocusModalCancel:
		m.focus.Focus(FocusModalConfirm)
	case FocusModalConfirm:
		m.focus.Focus(FocusModalCancel)
	default:
		if dir > 0 {
			m.focus.Focus(FocusModalCancel)
		} else {
			m.focus.Focus(FocusModalConfirm)
		}
	}
}

// HandleMouse resolves clicks against the regions of the last View. The
// backdrop closes the modal only when both the press and the release land
// on it, so a drag that starts inside the dialog never dismisses it.
func (m *ConfirmModal) HandleMouse(msg tea.Msg) tea.Cmd {
	if m.state != ModalOpen {
		return nil
	}
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			m.pressed = m.hit(msg.X, msg.Y)
		}
	case tea.MouseReleaseMsg:
		pressed := m.pressed
		m.pressed = targetNone
		released := m.hit(msg.X, msg.Y)
		if pressed != released {
			return nil
		}
		switch released {
		case targetBackdrop, targetCancel:
			m.Close()
		case targetConfirm:
			return m.Confirm()
		}
	}
	return nil
}

func (m *ConfirmModal) hit(x, y int) modalTarget {
	switch {
	case m.cancelBtn.Contains(x, y):
		return targetCancel
	case m.confirmBtn.Contains(x, y):
		return targetConfirm
	case m.box.Contains(x, y):
		return targetContent
	default:
		return targetBackdrop
	}
}

// Bounds returns the dialog box from the last View.
func (m *ConfirmModal) Bounds() Rect {
	return m.box
}

// View renders the dialog centered on a screen of the given size and records
// the hit regions. The caller composites it over the dimmed page.
func (m *ConfirmModal) View(screenWidth, screenHeight int) (box string, x, y int) {
	if m.state != ModalOpen {
		return "", 0, 0
	}

	textWidth := min(ModalWidth, max(screenWidth-ModalStyle.GetHorizontalFrameSize()-2, 10))
	title := ModalTitleStyle.Width(textWidth).Render(m.Title)
	body := ModalTextStyle.Width(textWidth).Render(m.Body)

	cancelStyle, confirmStyle := ButtonStyle, ButtonStyle
	if m.Variant == ModalDanger {
		confirmStyle = ButtonDangerStyle
	}
	switch m.focus.Current() {
	case FocusModalCancel:
		cancelStyle = ButtonFocusedStyle
	case FocusModalConfirm:
		if m.Variant != ModalDanger {
			confirmStyle = ButtonFocusedStyle
		}
		confirmStyle = confirmStyle.Underline(true)
	}
	cancel := cancelStyle.Render(m.CancelLabel)
	confirm := confirmStyle.Render(m.ConfirmLabel)
	gap := "  "
	buttons := cancel + gap + confirm
	buttons = lipgloss.PlaceHorizontal(textWidth, lipgloss.Right, buttons)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", buttons)
	box = ModalStyle.Render(content)

	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x = max((screenWidth-w)/2, 0)
	y = max((screenHeight-h)/2, 0)
	m.box = Rect{X: x, Y: y, W: w, H: h}

	contentX := x + ModalStyle.GetBorderLeftSize() + ModalStyle.GetPaddingLeft()
	contentY := y + ModalStyle.GetBorderTopSize() + ModalStyle.GetPaddingTop()
	rowY := contentY + lipgloss.Height(title) + 1 + lipgloss.Height(body) + 1
	cw, fw := lipgloss.Width(cancel), lipgloss.Width(confirm)
	startX := contentX + textWidth - (cw + len(gap) + fw)
	m.cancelBtn = Rect{X: startX, Y: rowY, W: cw, H: 1}
	m.confirmBtn = Rect{X: startX + cw + len(gap), Y: rowY, W: fw, H: 1}

	return box, x, y
}
