// Package editor implements the modal stack editor: its state, the reducer
// that advances it one key at a time, the renderer, and the run loop that
// connects them to a display.
package editor

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/csheth/stackedit/internal/lang"
)

// Mode selects which handler receives keys.
type Mode int

const (
	ModeNavigation Mode = iota
	ModeInsertion
	ModeTerminated
)

func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "NAVIGATION"
	case ModeInsertion:
		return "INSERTION"
	case ModeTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// ParseMode accepts mode names case-insensitively, plus "normal" and
// "insert".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "navigation", "normal":
		return ModeNavigation, nil
	case "insertion", "insert":
		return ModeInsertion, nil
	case "terminated":
		return ModeTerminated, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

// Entry is a stack element: either a TermEntry or a RuleEntry.
type Entry interface {
	fmt.Stringer
	entry()
}

// TermEntry holds a term that can take part in a combine.
type TermEntry struct {
	Term lang.Term
}

// RuleEntry holds a rule. Rules are only stored and displayed.
type RuleEntry struct {
	Rule lang.Rule
}

func (TermEntry) entry() {}
func (RuleEntry) entry() {}

func (e TermEntry) String() string { return e.Term.String() }
func (e RuleEntry) String() string { return e.Rule.String() }

// State is an editor snapshot. Values are never modified after creation;
// every transition returns a new State, and the stack list shares structure
// with its predecessors.
type State struct {
	mode   Mode
	input  string
	stack  *immutable.List[Entry]
	status string
}

// New returns a state in the given mode with entries pushed oldest first.
func New(mode Mode, entries ...Entry) State {
	return State{mode: mode, stack: immutable.NewList(entries...)}
}

func (s State) Mode() Mode { return s.mode }

func (s State) Input() string { return s.input }

// Status is the transient feedback line left by the last handled key.
func (s State) Status() string { return s.status }

// Len reports the number of stack entries.
func (s State) Len() int {
	if s.stack == nil {
		return 0
	}
	return s.stack.Len()
}

// Entries returns the stack oldest first. The slice is a fresh copy.
func (s State) Entries() []Entry {
	entries := make([]Entry, 0, s.Len())
	if s.stack == nil {
		return entries
	}
	itr := s.stack.Iterator()
	for !itr.Done() {
		_, entry := itr.Next()
		entries = append(entries, entry)
	}
	return entries
}

// Top returns the most recently pushed entry.
func (s State) Top() (Entry, bool) {
	n := s.Len()
	if n == 0 {
		return nil, false
	}
	return s.stack.Get(n - 1), true
}

func (s State) list() *immutable.List[Entry] {
	if s.stack == nil {
		return immutable.NewList[Entry]()
	}
	return s.stack
}

func (s State) withMode(mode Mode) State {
	s.mode = mode
	s.status = ""
	return s
}

func (s State) withInput(input string) State {
	s.input = input
	s.status = ""
	return s
}

func (s State) withStatus(status string) State {
	s.status = status
	return s
}

func (s State) push(entry Entry) State {
	s.stack = s.list().Append(entry)
	return s
}

// pop returns the state without its top entry. ok is false on an empty stack.
func (s State) pop() (State, Entry, bool) {
	n := s.Len()
	if n == 0 {
		return s, nil, false
	}
	top := s.stack.Get(n - 1)
	s.stack = s.stack.Slice(0, n-1)
	return s, top, true
}
