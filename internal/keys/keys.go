// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "q", "y", "/" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlB = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String() // "ctrl+b"
	CtrlS = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String() // "ctrl+s"
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l"
	CtrlE = (tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}).String() // "ctrl+e"
)

// Press builds the key press message for key, which may be one of the
// constants above or a single printable character. It is mostly useful in
// tests that drive models directly.
func Press(key string) tea.KeyPressMsg {
	switch key {
	case Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case CtrlB:
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case CtrlE:
		return tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	}
	r := []rune(key)
	if len(r) == 1 {
		return tea.KeyPressMsg{Code: r[0], Text: key}
	}
	return tea.KeyPressMsg{Text: key}
}
