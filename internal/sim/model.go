// Package sim hosts the prompt engine inside a bubbletea program: it
// renders the two-button device screen as a terminal mock, translates key
// presses into button events, and steps the engine's sessions one event
// at a time.
package sim

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"promptpager/internal/device"
	"promptpager/internal/menu"
	"promptpager/internal/prompt"
	"promptpager/internal/scroller"
)

type stage int

const (
	stageMenu stage = iota
	stageScroll
	stageConfirm
	stageDone
)

type action int

const (
	actionSingleRow action = iota
	actionThreeRows
	actionConfirm
	actionQuit
)

// pressHold is how long a simulated button stays pressed before the
// release event fires, long enough to see the press indicator.
const pressHold = 120 * time.Millisecond

const maxTraceLines = 200

type buttonReleaseMsg struct {
	ev device.ButtonEvent
}

// Model is the simulator's bubbletea model.
type Model struct {
	cfg      Config
	display  *Display
	producer prompt.Producer
	logger   *slog.Logger

	ring    *menu.Ring[action]
	sess    *scroller.Session
	confirm *scroller.ConfirmSession
	stage   stage
	outcome scroller.Outcome
	runErr  error

	trace    viewport.Model
	traceLog []string
	width    int
	height   int
}

// New builds the simulator model. The prompt content comes from the
// configured file when set, otherwise from the built-in demo producer.
func New(cfg Config) (*Model, error) {
	producer := DemoProducer()
	if cfg.Prompt.File != "" {
		text, err := LoadPrompt(cfg.Prompt.File)
		if err != nil {
			return nil, err
		}
		producer = TextProducer(text)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	display := NewDisplay()
	items := []menu.Item[action]{
		{Label: "Single row", Result: actionSingleRow},
		{Label: "Three rows", Result: actionThreeRows},
		{Label: "Final confirm", Result: actionConfirm},
		{Label: "Quit", Result: actionQuit},
	}
	// The configured rows-per-page picks which layout the menu opens on.
	if cfg.Prompt.Rows == 3 {
		items[0], items[1] = items[1], items[0]
	}
	ring := menu.NewRing(items...)
	menu.Show(display, ring)

	trace := viewport.New(48, 8)

	return &Model{
		cfg:      cfg,
		display:  display,
		producer: producer,
		logger:   logger,
		ring:     ring,
		trace:    trace,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return watchConfigCmd()
}

func watchConfigCmd() tea.Cmd {
	return func() tea.Msg {
		return configReloadMsg{cfg: <-configChangeChan}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trace.Width = min(msg.Width-4, 60)
		m.trace.Height = max(4, min(10, msg.Height-14))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case buttonReleaseMsg:
		return m, m.feed(msg.ev)
	case configReloadMsg:
		m.cfg = msg.cfg
		return m, watchConfigCmd()
	}
	return m, nil
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left":
		return m, tea.Batch(m.feed(device.EventLeftPress), releaseAfterHold(device.EventLeftRelease))
	case "right":
		return m, tea.Batch(m.feed(device.EventRightPress), releaseAfterHold(device.EventRightRelease))
	case " ", "enter":
		return m, m.feed(device.EventBothRelease)
	case "r":
		m.reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.trace, cmd = m.trace.Update(key)
	return m, cmd
}

func releaseAfterHold(ev device.ButtonEvent) tea.Cmd {
	return tea.Tick(pressHold, func(time.Time) tea.Msg {
		return buttonReleaseMsg{ev: ev}
	})
}

// feed steps whichever session is active with one button event.
func (m *Model) feed(ev device.ButtonEvent) tea.Cmd {
	m.logEvent(ev)
	switch m.stage {
	case stageMenu:
		act, ok := menu.HandleEvent[action](m.ring, ev)
		if !ok {
			menu.Show(m.display, m.ring)
			return nil
		}
		return m.startAction(act)
	case stageScroll:
		outcome, done, err := m.sess.Handle(ev)
		if err != nil {
			m.finish(scroller.Rejected, err)
			return nil
		}
		if !done {
			return nil
		}
		if outcome == scroller.Accepted {
			m.startConfirm()
		} else {
			m.finish(scroller.Rejected, nil)
		}
	case stageConfirm:
		if outcome, done := m.confirm.Handle(ev); done {
			m.finish(outcome, nil)
		}
	}
	return nil
}

func (m *Model) startAction(act action) tea.Cmd {
	switch act {
	case actionQuit:
		return tea.Quit
	case actionConfirm:
		m.startConfirm()
		return nil
	}

	rows := 1
	if act == actionThreeRows {
		rows = 3
	}
	s := scroller.New(scroller.Config{
		Display:     m.display,
		Title:       m.cfg.Prompt.Title,
		Contents:    m.producer,
		RowCapacity: m.cfg.UI.RowWidth,
		Logger:      m.logger,
	})
	sess, err := s.Begin(rows, m.cfg.Prompt.ShowIndex)
	if err != nil {
		m.finish(scroller.Rejected, err)
		return nil
	}
	m.sess = sess
	m.stage = stageScroll
	return nil
}

func (m *Model) startConfirm() {
	m.confirm = scroller.BeginConfirm(m.display,
		[]string{m.cfg.Prompt.Title, "ready to sign"}, "Confirm", "Reject")
	m.stage = stageConfirm
}

func (m *Model) finish(outcome scroller.Outcome, err error) {
	m.outcome = outcome
	m.runErr = err
	m.stage = stageDone
	m.sess = nil
	m.confirm = nil

	m.display.Clear()
	if outcome == scroller.Accepted {
		m.display.DrawIcon(device.IconCheck, device.LocationTop)
		m.display.DrawLabel("Accepted", device.LocationMiddle)
	} else {
		m.display.DrawIcon(device.IconCross, device.LocationTop)
		m.display.DrawLabel("Rejected", device.LocationMiddle)
	}
}

func (m *Model) reset() {
	m.stage = stageMenu
	m.sess = nil
	m.confirm = nil
	m.runErr = nil
	menu.Show(m.display, m.ring)
}

func (m *Model) logEvent(ev device.ButtonEvent) {
	if ev == device.EventNone {
		return
	}
	line := fmt.Sprintf("%3d  %s", len(m.traceLog)+1, ev)
	m.traceLog = append(m.traceLog, line)
	if len(m.traceLog) > maxTraceLines {
		m.traceLog = m.traceLog[len(m.traceLog)-maxTraceLines:]
	}
	m.trace.SetContent(strings.Join(m.traceLog, "\n"))
	m.trace.GotoBottom()
}
