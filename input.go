package editsurface

// Key represents a keyboard key the surface reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	KeyA
	KeyC
	KeyV
	KeyX
)

// KeyEvent is a single key press delivered to the surface while it holds
// input focus. Repeats are delivered as additional presses.
type KeyEvent struct {
	Key Key

	// Modifiers
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool // Command on macOS, Super elsewhere
}

// IsShortcut reports whether the event is the platform shortcut for key,
// that is key pressed with Ctrl or Meta held.
func (e KeyEvent) IsShortcut(key Key) bool {
	return e.Key == key && (e.Ctrl || e.Meta)
}

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyLeft:      "ArrowLeft",
	KeyRight:     "ArrowRight",
	KeyUp:        "ArrowUp",
	KeyDown:      "ArrowDown",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyX:         "x",
}

// String returns the key name in the form used by DOM KeyboardEvent.key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}
