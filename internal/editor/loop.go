package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// DefaultPollInterval bounds each wait for input.
const DefaultPollInterval = 50 * time.Millisecond

// Display owns the terminal for the duration of a run.
type Display interface {
	// Acquire takes exclusive control of the terminal.
	Acquire() error
	// Release hands the terminal back. It is called once on every exit path
	// after a successful Acquire.
	Release() error
	// Poll waits up to timeout for the next key. ok is false when nothing
	// arrived in time.
	Poll(timeout time.Duration) (ev Event, ok bool, err error)
	// Draw replaces the screen contents with frame.
	Draw(frame Frame) error
}

// Options tune Run. Zero values select the defaults.
type Options struct {
	PollInterval time.Duration
	Reducer      *Reducer
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Reducer == nil {
		o.Reducer = &DefaultReducer
	}
	return o
}

// Run drives the editor on display until the state reaches ModeTerminated
// or ctx is done, and returns the last state. The display is released on
// every path once acquired.
func Run(ctx context.Context, display Display, st State, opts Options) (final State, err error) {
	opts = opts.withDefaults()
	if err := display.Acquire(); err != nil {
		return st, fmt.Errorf("acquire display: %w", err)
	}
	defer func() {
		if releaseErr := display.Release(); releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("release display: %w", releaseErr))
		}
	}()

	log.Printf("[loop] started (mode=%s, entries=%d, poll=%s)", st.Mode(), st.Len(), opts.PollInterval)
	if err := display.Draw(Compose(st)); err != nil {
		return st, fmt.Errorf("draw: %w", err)
	}

	events := 0
	for st.Mode() != ModeTerminated {
		if err := ctx.Err(); err != nil {
			log.Printf("[loop] stopped by context after %d events: %v", events, err)
			return st, nil
		}
		ev, ok, err := display.Poll(opts.PollInterval)
		if err != nil {
			return st, fmt.Errorf("poll: %w", err)
		}
		if !ok {
			continue
		}
		events++
		next := opts.Reducer.Reduce(st, ev)
		if err := display.Draw(Compose(next)); err != nil {
			return next, fmt.Errorf("draw: %w", err)
		}
		st = next
	}
	log.Printf("[loop] terminated after %d events (entries=%d)", events, st.Len())
	return st, nil
}
