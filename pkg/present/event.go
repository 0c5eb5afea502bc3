package present

// EventKind classifies input events delivered by a Surface.
type EventKind int

const (
	// Other is any event the presenter does not act on.
	Other EventKind = iota
	// Quit is a request to close the window.
	Quit
	// KeyDown is a key press.
	KeyDown
)

// Key identifies a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Event is one input event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Terminates reports whether e ends the presentation.
func (e Event) Terminates() bool {
	switch e.Kind {
	case Quit:
		return true
	case KeyDown:
		return e.Key == KeyEscape
	default:
		return false
	}
}
