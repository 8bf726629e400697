package editor

// Render lists the stack entries oldest first, then the input buffer, then
// the mode name.
func Render(st State) []string {
	entries := st.Entries()
	lines := make([]string, 0, len(entries)+2)
	for _, entry := range entries {
		lines = append(lines, entry.String())
	}
	lines = append(lines, st.input, st.mode.String())
	return lines
}

// Frame is what a Display draws for one state.
type Frame struct {
	// Lines is the Render output.
	Lines []string
	// Stack is how many leading Lines are stack entries.
	Stack int
	// Status is optional feedback shown below the mode line.
	Status string
}

// Compose renders st into a Frame.
func Compose(st State) Frame {
	return Frame{
		Lines:  Render(st),
		Stack:  st.Len(),
		Status: st.status,
	}
}

// InputLine returns the line holding the input buffer.
func (f Frame) InputLine() string {
	return f.Lines[f.Stack]
}

// ModeLine returns the line holding the mode name.
func (f Frame) ModeLine() string {
	return f.Lines[f.Stack+1]
}
