// Package tui runs the stack editor as a bubbletea program. It feeds key
// messages through the same reducer as the tcell run loop and builds its
// view from the same renderer.
package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/stackedit/internal/editor"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Initial   editor.State
	Reducer   *editor.Reducer
	Highlight bool
	Theme     string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Reducer == nil {
		config.Reducer = &editor.DefaultReducer
	}
	return &model{
		config: config,
		state:  config.Initial,
		keys:   newKeyMap(),
		help:   help.New(),
		layout: newPageLayout(),
	}
}

type model struct {
	config Config
	state  editor.State
	keys   keyMap
	help   help.Model
	layout pageLayout
	events int
}

// State exposes the editor state of a model returned by New, for callers
// that need the result after the program exits.
func State(m tea.Model) (editor.State, bool) {
	mm, ok := m.(*model)
	if !ok {
		return editor.State{}, false
	}
	return mm.state, true
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		for _, ev := range m.keys.events(msg) {
			m.events++
			m.state = m.config.Reducer.Reduce(m.state, ev)
			if m.state.Mode() == editor.ModeTerminated {
				log.Printf("[tui] terminated after %d events (entries=%d)", m.events, m.state.Len())
				return m, tea.Quit
			}
		}
		return m, nil
	}
	return m, nil
}
