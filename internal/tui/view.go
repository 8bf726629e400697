package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/stackedit/internal/editor"
	"github.com/csheth/stackedit/internal/highlight"
)

var (
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	inputStyle     = lipgloss.NewStyle().Bold(true)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	insertBarStyle = statusBarStyle.Copy().Background(lipgloss.Color("#ffd166"))
	viewStyle      = lipgloss.NewStyle().PaddingLeft(1)
)

func (m *model) View() string {
	frame := editor.Compose(m.state)
	lines := make([]string, 0, len(frame.Lines)+3)

	first, hidden := m.layout.visible(frame.Stack)
	if hidden > 0 {
		lines = append(lines, helperStyle.Render(fmt.Sprintf("↑ %d older entries", hidden)))
	}
	for _, line := range frame.Lines[first:frame.Stack] {
		lines = append(lines, m.stackLine(line))
	}
	lines = append(lines, inputStyle.Render(m.clip(frame.InputLine())))
	lines = append(lines, m.modeBar(frame.ModeLine()))
	if frame.Status != "" {
		lines = append(lines, errorStyle.Render(m.clip(frame.Status)))
	}
	lines = append(lines, m.help.View(m.keys.forMode(m.state.Mode())))
	return viewStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) clip(line string) string {
	return truncate.StringWithTail(line, uint(m.layout.lineWidth), "…")
}

func (m *model) stackLine(line string) string {
	line = m.clip(line)
	if !m.config.Highlight {
		return line
	}
	return highlight.ANSI(line, m.config.Theme)
}

func (m *model) modeBar(name string) string {
	if m.state.Mode() == editor.ModeInsertion {
		return insertBarStyle.Render(name)
	}
	return statusBarStyle.Render(name)
}
