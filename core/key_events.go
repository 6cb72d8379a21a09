package core

import (
	"fmt"
	"strings"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[KeyCode]string{
	KeyUnknown:   "Unknown",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
}

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent represents a keyboard input event. Printable keys carry a Rune;
// special keys carry a Key.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

func (k KeyEvent) Shift() bool { return k.Modifiers&ModShift != 0 }

func (k KeyEvent) Ctrl() bool { return k.Modifiers&ModCtrl != 0 }

func (k KeyEvent) Alt() bool { return k.Modifiers&ModAlt != 0 }

// typed reports whether the event inserts its rune as text.
func (k KeyEvent) typed() bool {
	return k.Rune != 0 && k.Key == KeyUnknown && !k.Ctrl() && !k.Alt()
}

func (k KeyEvent) String() string {
	var parts []string

	if k.Ctrl() {
		parts = append(parts, "Ctrl")
	}
	if k.Alt() {
		parts = append(parts, "Alt")
	}
	if k.Shift() {
		parts = append(parts, "Shift")
	}

	switch {
	case k.Key != KeyUnknown:
		name, ok := keyNames[k.Key]
		if !ok {
			name = fmt.Sprintf("SpecialKey(%d)", k.Key)
		}
		parts = append(parts, name)
	case k.Rune != 0:
		parts = append(parts, string(k.Rune))
	default:
		parts = append(parts, keyNames[KeyUnknown])
	}

	return strings.Join(parts, "+")
}
