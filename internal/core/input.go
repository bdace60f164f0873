package core

// PointerKind identifies a pointer event delivered to the active scene.
type PointerKind int

const (
	PointerDown PointerKind = iota // Button pressed
	PointerMove                    // Motion, with or without a button held
	PointerUp                      // Button released
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer event in world coordinates.
// The platform maps terminal mouse cells to world units one to one.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Down builds a PointerDown event.
func Down(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerDown, X: x, Y: y}
}

// Move builds a PointerMove event.
func Move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y}
}

// Up builds a PointerUp event.
func Up(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerUp, X: x, Y: y}
}

// Action represents a semantic keyboard action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - activate the focused "Play Next" button
	ActionQuit           // Q, Ctrl+C - exit the session
	ActionHelp           // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
