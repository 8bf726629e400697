package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen repaint with escape sequences removed in Plain.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	frameSeparator = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiPattern     = regexp.MustCompile(`\x1b\[[0-9;?<>=]*[ -/]*[@-~]`)
	oscPattern     = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
	charsetPattern = regexp.MustCompile(`\x1b[()][0-9A-Za-z]`)
	escPattern     = regexp.MustCompile(`\x1b[=>78]`)
)

func parseFrames(raw []byte) []Frame {
	cleaned := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range frameSeparator.Split(cleaned, -1) {
		segment = strings.Trim(segment, "\x00")
		plain := normalizeLines(StripANSI(segment))
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	return frames
}

// FinalFrame returns the last captured frame. The second return value is false
// when no frames were recorded.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Text is the whole recording with escape sequences removed. Renderers that
// position the cursor per cell never emit whole lines, so tests that only
// care whether something was shown should search this instead of frames.
func (r *Recording) Text() string {
	if r == nil {
		return ""
	}
	return StripANSI(strings.ReplaceAll(string(r.Raw), "\r", ""))
}

// StripANSI removes CSI, OSC and charset escape sequences.
func StripANSI(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	s = charsetPattern.ReplaceAllString(s, "")
	s = escPattern.ReplaceAllString(s, "")
	s = strings.NewReplacer("\x0f", "", "\x0e", "").Replace(s)
	return s
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
