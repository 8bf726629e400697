package editor

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/csheth/stackedit/internal/lang"
)

const (
	statusCombineShort = "combine needs two entries on the stack"
	statusCombineRule  = "combine only applies terms, not rules"
)

// Reducer advances a State by one event. The parse functions are the only
// collaborators it calls.
type Reducer struct {
	ParseTerm func(string) (lang.Term, error)
	ParseRule func(string) (lang.Rule, error)
}

// DefaultReducer reads input with the lang package.
var DefaultReducer = Reducer{
	ParseTerm: lang.ReadTerm,
	ParseRule: lang.ReadRule,
}

// Reduce applies ev to st with the DefaultReducer.
func Reduce(st State, ev Event) State {
	return DefaultReducer.Reduce(st, ev)
}

// Reduce returns the state that follows st after ev. It never fails;
// events that mean nothing in the current mode return st unchanged.
func (r Reducer) Reduce(st State, ev Event) State {
	switch ev.Key {
	case KeyEscape:
		return st.withMode(ModeNavigation)
	case KeyInterrupt:
		return st.withMode(ModeTerminated)
	}

	switch st.mode {
	case ModeNavigation:
		return r.navigate(st, ev)
	case ModeInsertion:
		return r.insert(st, ev)
	default:
		return st
	}
}

func (r Reducer) navigate(st State, ev Event) State {
	if ev.Key != KeyRune {
		return st
	}
	switch ev.Rune {
	case 'i':
		return st.withMode(ModeInsertion)
	case 'q':
		return st.withMode(ModeTerminated)
	case 'a':
		return combine(st)
	default:
		return st
	}
}

// combine pops the top two entries and pushes their application, with the
// top entry as the function. Unless both entries are terms the original
// stack is kept whole.
func combine(st State) State {
	working, first, ok := st.pop()
	if !ok {
		return st.withStatus(statusCombineShort)
	}
	working, second, ok := working.pop()
	if !ok {
		return st.withStatus(statusCombineShort)
	}

	fn, ok := termOf(first)
	if !ok {
		return st.withStatus(statusCombineRule)
	}
	arg, ok := termOf(second)
	if !ok {
		return st.withStatus(statusCombineRule)
	}
	return working.push(TermEntry{Term: lang.Apply(fn, arg)}).withStatus("")
}

func termOf(entry Entry) (lang.Term, bool) {
	switch e := entry.(type) {
	case TermEntry:
		return e.Term, true
	case RuleEntry:
		return nil, false
	default:
		panic(fmt.Sprintf("editor: unhandled stack entry %T", entry))
	}
}

func (r Reducer) insert(st State, ev Event) State {
	switch ev.Key {
	case KeyRune:
		if !unicode.IsPrint(ev.Rune) {
			return st
		}
		return st.withInput(st.input + string(ev.Rune))
	case KeyBackspace:
		if st.input == "" {
			return st.withStatus("")
		}
		_, size := utf8.DecodeLastRuneInString(st.input)
		return st.withInput(st.input[:len(st.input)-size])
	case KeyEnter:
		term, err := r.ParseTerm(st.input)
		if err != nil {
			return st.withStatus(err.Error())
		}
		return st.push(TermEntry{Term: term}).withInput("")
	case KeyCommitRule:
		rule, err := r.ParseRule(st.input)
		if err != nil {
			return st.withStatus(err.Error())
		}
		return st.push(RuleEntry{Rule: rule}).withInput("")
	default:
		return st
	}
}
