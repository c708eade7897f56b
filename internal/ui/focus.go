package ui

import tea "charm.land/bubbletea/v2"

// FocusID names a focusable element.
type FocusID string

const (
	FocusNone         FocusID = ""
	FocusMenuButton   FocusID = "menu-button"
	FocusSidebar      FocusID = "sidebar"
	FocusMain         FocusID = "main"
	FocusSearch       FocusID = "search"
	FocusTable        FocusID = "table"
	FocusForm         FocusID = "form"
	FocusModal        FocusID = "modal"
	FocusModalCancel  FocusID = "modal-cancel"
	FocusModalConfirm FocusID = "modal-confirm"
)

// KeyListener receives key presses before the focused component does. It
// reports whether it consumed the key.
type KeyListener func(msg tea.KeyPressMsg) (handled bool, cmd tea.Cmd)

type keyListener struct {
	id int
	fn KeyListener
}

// FocusManager tracks which element has keyboard focus and holds the stack
// of global key listeners. The most recently added listener runs first.
type FocusManager struct {
	current   FocusID
	listeners []keyListener
	next      int
}

// NewFocusManager returns a manager focused on initial.
func NewFocusManager(initial FocusID) *FocusManager {
	return &FocusManager{current: initial}
}

// Focus moves focus to id.
func (f *FocusManager) Focus(id FocusID) {
	f.current = id
}

// Current returns the focused element.
func (f *FocusManager) Current() FocusID {
	return f.current
}

// Is reports whether id is focused.
func (f *FocusManager) Is(id FocusID) bool {
	return f.current == id
}

// AddKeyListener pushes fn and returns a function that removes it. Removing
// twice is harmless.
func (f *FocusManager) AddKeyListener(fn KeyListener) (remove func()) {
	f.next++
	id := f.next
	f.listeners = append(f.listeners, keyListener{id: id, fn: fn})
	return func() {
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch offers msg to the listeners, newest first, and stops at the first
// one that handles it.
func (f *FocusManager) Dispatch(msg tea.KeyPressMsg) (handled bool, cmd tea.Cmd) {
	ls := append([]keyListener(nil), f.listeners...)
	for i := len(ls) - 1; i >= 0; i-- {
		if ok, cmd := ls[i].fn(msg); ok {
			return true, cmd
		}
	}
	return false, nil
}

// ListenerCount returns the number of registered listeners.
func (f *FocusManager) ListenerCount() int {
	return len(f.listeners)
}
