package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one normalized terminal paint: the raw ANSI segment and the
// same text with control sequences stripped.
type Frame struct {
	ANSI  string
	Plain string
}

var (
	frameSeparator = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiPattern     = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern     = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
)

func parseFrames(raw []byte) []Frame {
	cleaned := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range frameSeparator.Split(cleaned, -1) {
		segment = strings.TrimPrefix(strings.Trim(segment, "\x00"), "\x1b[H")
		plain := strings.TrimRight(stripANSI(segment), " \n")
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{ANSI: segment, Plain: plain})
	}
	if len(frames) == 0 && len(cleaned) > 0 {
		frames = append(frames, Frame{ANSI: cleaned, Plain: stripANSI(cleaned)})
	}
	return frames
}

// FinalFrame returns the last captured frame, or false if nothing was
// painted.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// AnyFrameContains reports whether some frame's plain text contains want.
func (r *Recording) AnyFrameContains(want string) bool {
	for _, f := range r.Frames {
		if strings.Contains(f.Plain, want) {
			return true
		}
	}
	return false
}

func stripANSI(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\x0f", "")
	return strings.ReplaceAll(s, "\x0e", "")
}
