package keyboard

// Kind distinguishes key presses from releases.
type Kind uint8

const (
	KeyDown Kind = iota + 1
	KeyUp
)

// String returns "down" or "up".
func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a single key transition together with the modifiers held when
// it happened.
type Event struct {
	Kind      Kind
	Key       Key
	Modifiers Modifier
}

// Down builds a key-down event.
func Down(key Key, mods Modifier) Event {
	return Event{Kind: KeyDown, Key: key, Modifiers: mods}
}

// Up builds a key-up event.
func Up(key Key, mods Modifier) Event {
	return Event{Kind: KeyUp, Key: key, Modifiers: mods}
}

// String renders the event in script syntax, e.g. "down Ctrl+V".
func (e Event) String() string {
	if e.Modifiers.IsEmpty() || e.Key.IsModifier() {
		return e.Kind.String() + " " + e.Key.String()
	}
	return e.Kind.String() + " " + e.Modifiers.String() + "+" + e.Key.String()
}
