// Package screen is the tcell-backed editor display: it owns raw mode and
// the alternate screen, turns terminal keys into editor events and paints
// frames line by line.
package screen

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/stackedit/internal/editor"
	"github.com/csheth/stackedit/internal/highlight"
)

const (
	eventBuffer = 100
	ellipsis    = "…"
)

var (
	modeStyle   = tcell.StyleDefault.Reverse(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	inputStyle  = tcell.StyleDefault.Bold(true)
)

// Options configure a Screen.
type Options struct {
	// Highlight colours stack entries.
	Highlight bool
	// Theme names the chroma style used when Highlight is set.
	Theme string
}

// Screen implements editor.Display on a tcell.Screen.
type Screen struct {
	screen tcell.Screen
	opts   Options

	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	last    editor.Frame
	hasLast bool
}

var _ editor.Display = (*Screen)(nil)

// New opens the controlling terminal.
func New(opts Options) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(s, opts), nil
}

// NewWithScreen wraps an existing tcell screen, such as a simulation screen.
func NewWithScreen(s tcell.Screen, opts Options) *Screen {
	return &Screen{
		screen: s,
		opts:   opts,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
}

// Acquire switches the terminal to raw mode on the alternate screen and
// starts reading events.
func (s *Screen) Acquire() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	go s.readEvents()
	return nil
}

func (s *Screen) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Release restores the terminal. Calling it more than once is harmless.
func (s *Screen) Release() error {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
	return nil
}

// Poll waits up to timeout for a key. Resizes repaint the last frame and
// report no event.
func (s *Screen) Poll(timeout time.Duration) (editor.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return convertKey(ev), true, nil
			case *tcell.EventResize:
				s.screen.Sync()
				if s.hasLast {
					s.paint(s.last)
				}
				return editor.Event{}, false, nil
			}
		case <-timer.C:
			return editor.Event{}, false, nil
		}
	}
}

func convertKey(ev *tcell.EventKey) editor.Event {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return editor.KeyEvent(editor.KeyOther)
		}
		return editor.RuneEvent(ev.Rune())
	case tcell.KeyEscape:
		return editor.KeyEvent(editor.KeyEscape)
	case tcell.KeyEnter:
		return editor.KeyEvent(editor.KeyEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.KeyEvent(editor.KeyBackspace)
	case tcell.KeyCtrlR:
		return editor.KeyEvent(editor.KeyCommitRule)
	case tcell.KeyCtrlC:
		return editor.KeyEvent(editor.KeyInterrupt)
	default:
		return editor.KeyEvent(editor.KeyOther)
	}
}

// Draw paints frame and remembers it for resize repaints.
func (s *Screen) Draw(frame editor.Frame) error {
	s.last = frame
	s.hasLast = true
	s.paint(frame)
	return nil
}

func (s *Screen) paint(frame editor.Frame) {
	s.screen.Clear()
	width, height := s.screen.Size()
	for y, row := range layout(frame, height) {
		s.drawRow(y, width, row)
	}
	s.screen.Show()
}

type rowKind int

const (
	rowEntry rowKind = iota
	rowInput
	rowMode
	rowStatus
)

type row struct {
	kind rowKind
	text string
}

// layout orders the frame into rows and drops the oldest stack entries when
// the screen is too short for all of them.
func layout(frame editor.Frame, height int) []row {
	rows := make([]row, 0, len(frame.Lines)+1)
	for i, line := range frame.Lines {
		kind := rowEntry
		switch {
		case i == frame.Stack:
			kind = rowInput
		case i > frame.Stack:
			kind = rowMode
		}
		rows = append(rows, row{kind: kind, text: line})
	}
	if frame.Status != "" {
		rows = append(rows, row{kind: rowStatus, text: frame.Status})
	}
	if height > 0 && len(rows) > height {
		drop := len(rows) - height
		if drop > frame.Stack {
			drop = frame.Stack
		}
		rows = rows[drop:]
		if len(rows) > height {
			rows = rows[:height]
		}
	}
	return rows
}

func (s *Screen) drawRow(y, width int, r row) {
	if width <= 0 {
		return
	}
	text := truncate.StringWithTail(r.text, uint(width), ellipsis)
	switch r.kind {
	case rowEntry:
		if !s.opts.Highlight {
			s.drawText(0, y, width, text, tcell.StyleDefault)
			return
		}
		x := 0
		for _, span := range highlight.Spans(text, s.opts.Theme) {
			style := tcell.StyleDefault.Bold(span.Bold)
			if span.HasColour {
				style = style.Foreground(tcell.NewHexColor(int32(span.Colour)))
			}
			x = s.drawText(x, y, width, span.Text, style)
		}
	case rowInput:
		s.drawText(0, y, width, text, inputStyle)
	case rowMode:
		s.drawText(0, y, width, text, modeStyle)
	case rowStatus:
		s.drawText(0, y, width, text, statusStyle)
	}
}

// drawText writes text from column x and returns the column after it.
func (s *Screen) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}
