package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/saasboard/internal/notification"
	"github.com/zhubert/saasboard/internal/ui"
)

// ShowToast displays a toast and returns the command that dismisses it.
func (m *Model) ShowToast(text string, kind ui.ToastKind) tea.Cmd {
	return m.toast.Show(text, kind)
}

// ShowToastSuccess displays a success toast
func (m *Model) ShowToastSuccess(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastSuccess)
}

// ShowToastError displays an error toast
func (m *Model) ShowToastError(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastError)
}

// ShowToastInfo displays an info toast
func (m *Model) ShowToastInfo(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastInfo)
}

// mirrorToast sends the toast as a desktop notification when push
// notifications are enabled.
func (m *Model) mirrorToast(text string, kind ui.ToastKind) tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	return func() tea.Msg {
		_ = notification.Toast(kind.String(), text)
		return nil
	}
}
