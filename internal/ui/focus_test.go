package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/zhubert/saasboard/internal/keys"
)

func TestFocusManager_Focus(t *testing.T) {
	f := NewFocusManager(FocusMain)
	assert.Equal(t, FocusMain, f.Current())

	f.Focus(FocusSidebar)
	assert.True(t, f.Is(FocusSidebar))
	assert.False(t, f.Is(FocusMain))
}

func TestFocusManager_DispatchNewestFirst(t *testing.T) {
	f := NewFocusManager(FocusMain)
	var order []string

	f.AddKeyListener(func(tea.KeyPressMsg) (bool, tea.Cmd) {
		order = append(order, "first")
		return true, nil
	})
	remove := f.AddKeyListener(func(msg tea.KeyPressMsg) (bool, tea.Cmd) {
		order = append(order, "second")
		return msg.String() == keys.Escape, nil
	})

	handled, _ := f.Dispatch(keys.Press(keys.Escape))
	assert.True(t, handled)
	assert.Equal(t, []string{"second"}, order)

	order = nil
	f.Dispatch(keys.Press("x"))
	assert.Equal(t, []string{"second", "first"}, order)

	remove()
	remove()
	assert.Equal(t, 1, f.ListenerCount())
}

func TestFocusManager_DispatchWithoutListeners(t *testing.T) {
	f := NewFocusManager(FocusNone)
	handled, cmd := f.Dispatch(keys.Press(keys.Enter))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}
