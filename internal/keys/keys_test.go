package keys

import "testing"

// TestKeyStringValues verifies that all key constants produce the expected
// string representations. This acts as a safety net if Bubble Tea ever changes
// its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Escape", Escape, "esc"},

		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlB", CtrlB, "ctrl+b"},
		{"CtrlS", CtrlS, "ctrl+s"},
		{"CtrlT", CtrlT, "ctrl+t"},
		{"CtrlL", CtrlL, "ctrl+l"},
		{"CtrlE", CtrlE, "ctrl+e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestPress_RoundTrips(t *testing.T) {
	for _, key := range []string{Up, Down, Enter, Tab, ShiftTab, Escape, CtrlB, CtrlT, "y", "/", "1"} {
		if got := Press(key).String(); got != key {
			t.Errorf("Press(%q).String() = %q", key, got)
		}
	}
}
