package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/stackedit/internal/editor"
)

func TestKeyEvents(t *testing.T) {
	keys := newKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []editor.Event
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'λ'}}, []editor.Event{editor.RuneEvent('λ')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []editor.Event{editor.RuneEvent('a'), editor.RuneEvent('b')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []editor.Event{editor.RuneEvent(' ')}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []editor.Event{editor.KeyEvent(editor.KeyEscape)}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []editor.Event{editor.KeyEvent(editor.KeyEnter)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []editor.Event{editor.KeyEvent(editor.KeyBackspace)}},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, []editor.Event{editor.KeyEvent(editor.KeyCommitRule)}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []editor.Event{editor.KeyEvent(editor.KeyInterrupt)}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, []editor.Event{editor.KeyEvent(editor.KeyOther)}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, []editor.Event{editor.KeyEvent(editor.KeyOther)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.events(tc.msg); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("events mismatch: got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestShortHelpFollowsMode(t *testing.T) {
	keys := newKeyMap()
	nav := keys.forMode(editor.ModeNavigation).ShortHelp()
	if len(nav) != 3 || nav[0].Help().Key != "i" {
		t.Fatalf("navigation help: %+v", nav)
	}
	ins := keys.forMode(editor.ModeInsertion).ShortHelp()
	if len(ins) != 4 || ins[0].Help().Key != "enter" {
		t.Fatalf("insertion help: %+v", ins)
	}
	if got := keys.forMode(editor.ModeTerminated).ShortHelp(); got != nil {
		t.Fatalf("terminated help should be empty: %+v", got)
	}
}
