package tuitest

import (
	"bytes"
	"io"
)

// reply pairs a terminal query with the answer a real terminal would send.
type reply struct {
	query  []byte
	answer []byte
}

// Answers for the queries bubbletea/termenv and tcell emit at startup.
var replies = []reply{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
	{[]byte("\x1b[c"), []byte("\x1b[?62;22c")},
}

const (
	responderTail = 64
	responderMax  = 256
)

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, responderMax/2)}
}

func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerOne() {
	}
	// Keep a tail so queries split across reads are still seen.
	if len(tr.buf) > responderMax {
		tr.buf = tr.buf[len(tr.buf)-responderTail:]
	}
}

// answerOne replies to the earliest pending query, if any.
func (tr *terminalResponder) answerOne() bool {
	best, bestIdx := -1, -1
	for i, r := range replies {
		idx := bytes.Index(tr.buf, r.query)
		if idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = i, idx
		}
	}
	if best < 0 {
		return false
	}
	tr.buf = tr.buf[bestIdx+len(replies[best].query):]
	_, _ = tr.w.Write(replies[best].answer)
	return true
}
