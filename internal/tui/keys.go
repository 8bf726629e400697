package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/stackedit/internal/editor"
)

type keyMap struct {
	mode editor.Mode

	Insert     key.Binding
	Combine    key.Binding
	Quit       key.Binding
	Escape     key.Binding
	Commit     key.Binding
	CommitRule key.Binding
	Delete     key.Binding
	Interrupt  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Insert:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Combine:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply top two")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "navigate")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "push term")),
		CommitRule: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "push rule")),
		Delete:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Interrupt:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	}
}

// forMode returns a copy whose help lists the keys that act in mode.
func (k keyMap) forMode(mode editor.Mode) keyMap {
	k.mode = mode
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case editor.ModeNavigation:
		return []key.Binding{k.Insert, k.Combine, k.Quit}
	case editor.ModeInsertion:
		return []key.Binding{k.Commit, k.CommitRule, k.Delete, k.Escape}
	default:
		return nil
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.Combine, k.Quit},
		{k.Commit, k.CommitRule, k.Delete},
		{k.Escape, k.Interrupt},
	}
}

// events translates a key message into editor events. Pasted text arrives
// as one message carrying several runes.
func (k keyMap) events(msg tea.KeyMsg) []editor.Event {
	switch {
	case key.Matches(msg, k.Escape):
		return []editor.Event{editor.KeyEvent(editor.KeyEscape)}
	case key.Matches(msg, k.Interrupt):
		return []editor.Event{editor.KeyEvent(editor.KeyInterrupt)}
	case key.Matches(msg, k.Commit):
		return []editor.Event{editor.KeyEvent(editor.KeyEnter)}
	case key.Matches(msg, k.CommitRule):
		return []editor.Event{editor.KeyEvent(editor.KeyCommitRule)}
	case key.Matches(msg, k.Delete):
		return []editor.Event{editor.KeyEvent(editor.KeyBackspace)}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []editor.Event{editor.RuneEvent(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			break
		}
		events := make([]editor.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, editor.RuneEvent(r))
		}
		if len(events) > 0 {
			return events
		}
	}
	return []editor.Event{editor.KeyEvent(editor.KeyOther)}
}
