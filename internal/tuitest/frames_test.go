package tuitest

import (
	"bytes"
	"testing"
	"time"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst\r\nline  \r\n\x1b[2J\x1b[1;31msecond\x1b[0m\r\n\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %+v", len(frames), frames)
	}
	if frames[0].Plain != "first\nline" {
		t.Fatalf("first frame: %q", frames[0].Plain)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	last, ok := rec.FinalFrame()
	if !ok || last.Plain != "second" {
		t.Fatalf("final frame: %q ok=%v", last.Plain, ok)
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b]11;?\x07\x1b(B\x1b[?25l\x1b[38;5;81mλx\x1b[0m x\x1b="
	if got := StripANSI(in); got != "λx x" {
		t.Fatalf("strip: got %q", got)
	}
}

func TestFinalFrameEmpty(t *testing.T) {
	var rec *Recording
	if _, ok := rec.FinalFrame(); ok {
		t.Fatal("nil recording has no frames")
	}
	if rec.Text() != "" {
		t.Fatal("nil recording has no text")
	}
}

func TestResponderAnswersInOrder(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("junk\x1b]11;?\x07more\x1b["))
	tr.Process([]byte("6n"))
	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("responses: got %q want %q", out.String(), want)
	}
}

func TestScriptFlattens(t *testing.T) {
	steps := Script(Type("ab"), Wait(time.Second), Press(KeyEnter))
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	if string(steps[1].Input) != "b" || steps[2].Delay != time.Second || !bytes.Equal(steps[3].Input, KeyEnter) {
		t.Fatalf("unexpected script: %+v", steps)
	}
}
