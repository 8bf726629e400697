package editor

// Key classifies an input event.
type Key int

const (
	KeyOther Key = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEscape
	// KeyCommitRule commits the input buffer as a rule (Ctrl+R).
	KeyCommitRule
	// KeyInterrupt terminates from any mode (Ctrl+C).
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyCommitRule:
		return "commit-rule"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// Event is a single key press. Rune is only meaningful for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// RuneEvent is shorthand for a character key press.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent is shorthand for a non-character key press.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}
