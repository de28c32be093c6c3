// Package tuitest drives the compiled simulator binary inside a pseudo
// terminal, replaying scripted button keys and recording every frame the
// program paints. Integration tests assert against the captured frames.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 100
	defaultHeight  = 32
	defaultTimeout = 10 * time.Second
)

// Button key sequences understood by the simulator. Left and right are the
// terminal arrow keys; Both is the space bar.
var (
	KeyLeft  = []byte("\x1b[D")
	KeyRight = []byte("\x1b[C")
	KeyBoth  = []byte{' '}
	KeyReset = []byte{'r'}
	KeyQuit  = []byte{'q'}
)

// Step is one scripted interaction: wait Delay, then write Keys to the
// terminal. Either field may be zero.
type Step struct {
	Delay time.Duration
	Keys  []byte
}

// Press waits for the simulated button hold to elapse and then sends keys.
// The pause keeps scripted events from landing inside the previous press
// window.
func Press(keys []byte) Step {
	return Step{Delay: 250 * time.Millisecond, Keys: keys}
}

// Wait inserts a pause without input.
func Wait(d time.Duration) Step {
	return Step{Delay: d}
}

// Config describes the program under test and the script to replay.
type Config struct {
	Command []string
	Dir     string
	Env     []string
	Width   int
	Height  int
	Script  []Step
	Timeout time.Duration
}

// Recording is everything the program wrote to the terminal, raw and
// parsed into frames.
type Recording struct {
	Raw    []byte
	Frames []Frame
}

// Run spawns the command in a PTY, replays the script, and waits for a
// clean exit. The script is expected to end with a quit key.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	winsize := &pty.Winsize{Rows: dim(cfg.Height, defaultHeight), Cols: dim(cfg.Width, defaultWidth)}
	ptmx, err := pty.StartWithSize(cmd, winsize)
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var output bytes.Buffer
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		answer := newQueryAnswerer(ptmx)
		buf := make([]byte, 4096)
		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				answer.Process(buf[:n])
				output.Write(buf[:n])
			}
			if readErr != nil {
				return
			}
		}
	}()

	for _, step := range cfg.Script {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: script interrupted: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Keys) > 0 {
			if _, err := ptmx.Write(step.Keys); err != nil {
				return nil, fmt.Errorf("tuitest: write keys: %w", err)
			}
		}
	}

	waitErr := make(chan error, 1)
	go func() { waitErr <- cmd.Wait() }()
	select {
	case err := <-waitErr:
		if err != nil {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for exit: %w", ctx.Err())
	}

	_ = ptmx.Close()
	<-drained

	raw := output.Bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw)}, nil
}

func dim(v, fallback int) uint16 {
	if v <= 0 {
		v = fallback
	}
	return uint16(v)
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

// queryAnswerer replies to the terminal capability queries bubbletea and
// lipgloss emit on startup, so the program does not stall waiting for a
// real terminal.
type queryAnswerer struct {
	w   io.Writer
	buf []byte
}

func newQueryAnswerer(w io.Writer) *queryAnswerer {
	return &queryAnswerer{w: w}
}

var queryReplies = []struct{ query, reply []byte }{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

func (qa *queryAnswerer) Process(chunk []byte) {
	qa.buf = append(qa.buf, chunk...)
	for found := true; found; {
		found = false
		for _, qr := range queryReplies {
			if idx := bytes.Index(qa.buf, qr.query); idx >= 0 {
				qa.buf = qa.buf[idx+len(qr.query):]
				_, _ = qa.w.Write(qr.reply)
				found = true
			}
		}
	}
	// Keep only a tail for sequences split across reads.
	if len(qa.buf) > 256 {
		qa.buf = qa.buf[len(qa.buf)-64:]
	}
}
