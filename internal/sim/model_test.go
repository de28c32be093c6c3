package sim

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"promptpager/internal/device"
	"promptpager/internal/prompt"
	"promptpager/internal/scroller"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	var cfg Config
	normalizeConfig(&cfg)
	cfg.Prompt.Title = "TX"
	cfg.Prompt.ShowIndex = true
	cfg.UI.Accent = "#ff8c00"

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func frameText(m *Model) string {
	return strings.Join(m.display.Lines(m.cfg.UI.RowWidth), "\n")
}

func TestModelStartsAtMenu(t *testing.T) {
	m := newTestModel(t)
	if m.stage != stageMenu {
		t.Fatalf("stage = %v, want menu", m.stage)
	}
	if !strings.Contains(frameText(m), "Single row") {
		t.Fatalf("menu label missing from frame:\n%s", frameText(m))
	}
}

func TestMenuSelectionStartsScroller(t *testing.T) {
	m := newTestModel(t)
	m.feed(device.EventBothRelease) // select "Single row"
	if m.stage != stageScroll {
		t.Fatalf("stage = %v, want scroll", m.stage)
	}
	if m.sess == nil || m.sess.Page() != 0 {
		t.Fatal("scroller session not begun at page 0")
	}
	if !strings.Contains(frameText(m), "TX (1/") {
		t.Fatalf("indexed title missing from frame:\n%s", frameText(m))
	}
}

func TestScrollAcceptChainsIntoConfirmation(t *testing.T) {
	m := newTestModel(t)
	m.feed(device.EventBothRelease)
	pages := m.sess.PageCount()
	for i := 0; i < pages; i++ {
		m.feed(device.EventRightRelease)
	}
	if m.stage != stageConfirm {
		t.Fatalf("stage = %v, want confirm after paging past the last screen", m.stage)
	}

	// Walk to the accept screen and consent.
	m.feed(device.EventRightRelease)
	m.feed(device.EventBothRelease)
	if m.stage != stageDone || m.outcome != scroller.Accepted {
		t.Fatalf("stage=%v outcome=%v, want done/accepted", m.stage, m.outcome)
	}
	if !strings.Contains(frameText(m), "Accepted") {
		t.Fatalf("outcome screen missing:\n%s", frameText(m))
	}
}

func TestScrollBothButtonsRejects(t *testing.T) {
	m := newTestModel(t)
	m.feed(device.EventBothRelease)
	m.feed(device.EventRightRelease)
	m.feed(device.EventBothRelease)
	if m.stage != stageDone || m.outcome != scroller.Rejected {
		t.Fatalf("stage=%v outcome=%v, want done/rejected", m.stage, m.outcome)
	}
}

func TestResetReturnsToMenu(t *testing.T) {
	m := newTestModel(t)
	m.feed(device.EventBothRelease)
	m.feed(device.EventBothRelease) // reject
	m.reset()
	if m.stage != stageMenu {
		t.Fatalf("stage = %v after reset", m.stage)
	}
	if !strings.Contains(frameText(m), "Single row") {
		t.Fatalf("menu not redrawn after reset:\n%s", frameText(m))
	}
}

func TestArrowKeyEmitsPressThenScheduledRelease(t *testing.T) {
	m := newTestModel(t)
	m.feed(device.EventBothRelease) // into the scroller

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("arrow key should schedule a release")
	}
	if len(m.traceLog) == 0 || !strings.Contains(m.traceLog[len(m.traceLog)-1], "right-press") {
		t.Fatalf("press event not fed synchronously: %v", m.traceLog)
	}
	page := m.sess.Page()

	_, _ = m.Update(buttonReleaseMsg{ev: device.EventRightRelease})
	if m.sess.Page() != page+1 {
		t.Fatalf("release did not advance page: %d -> %d", page, m.sess.Page())
	}
}

func TestConfiguredRowsPreselectThreeRowLayout(t *testing.T) {
	var cfg Config
	normalizeConfig(&cfg)
	cfg.Prompt.Title = "TX"
	cfg.Prompt.Rows = 3

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if !strings.Contains(frameText(m), "Three rows") {
		t.Fatalf("menu does not open on the configured layout:\n%s", frameText(m))
	}

	m.feed(device.EventBothRelease)
	if m.stage != stageScroll {
		t.Fatalf("stage = %v, want scroll", m.stage)
	}
	if m.display.rows[1] == "" {
		t.Fatal("second content row empty, layout is not three rows")
	}
}

func TestConfiguredRowWidthSetsRowCapacity(t *testing.T) {
	var cfg Config
	normalizeConfig(&cfg)
	cfg.Prompt.Title = "TX"
	cfg.UI.RowWidth = 8

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.feed(device.EventBothRelease) // menu: Single row

	total, err := prompt.Measure(DemoProducer())
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if want := prompt.PageCount(total, 8, 1); m.sess.PageCount() != want {
		t.Fatalf("page count = %d, want %d for 8-char rows", m.sess.PageCount(), want)
	}
	if m.display.rows[0] != "Transfer" {
		t.Fatalf("first row = %q, want the first 8 content bytes", m.display.rows[0])
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}
